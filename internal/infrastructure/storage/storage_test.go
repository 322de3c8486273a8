package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario-api/internal/infrastructure/memory"
	"github.com/jhoicas/agro-inventario-api/internal/infrastructure/storage"
	"github.com/jhoicas/agro-inventario-api/pkg/config"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
)

func TestOpen_MemoriaConCatalogoDemo(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}

	b, err := storage.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer b.Close()

	p, err := b.Repos.Products.GetByID(context.Background(), memory.DemoProductUreaID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "URE-46", p.Code)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}

	_, err := storage.Open(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}
