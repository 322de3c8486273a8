package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
	"github.com/jhoicas/agro-inventario-api/internal/domain/entity"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
	"github.com/jhoicas/agro-inventario-api/internal/infrastructure/memory"
)

func demoEntry(id string, qty int, date time.Time) *entity.Entry {
	return &entity.Entry{
		ID:         id,
		ProductID:  memory.DemoProductUreaID,
		SupplierID: memory.DemoSupplierID,
		BranchID:   memory.DemoBranchCentralID,
		Quantity:   qty,
		EntryDate:  date,
		Status:     entity.EntryStatusActive,
	}
}

func TestRun_CommitPublicaCambios(t *testing.T) {
	store := memory.NewDemo()
	ctx := context.Background()

	err := store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Entries.Create(ctx, demoEntry("e1", 10, time.Now()))
	})
	require.NoError(t, err)

	got, err := store.Repositories().Entries.GetByID(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 10, got.Quantity)
}

func TestRun_ErrorDescartaCambios(t *testing.T) {
	store := memory.NewDemo()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Run(ctx, func(repos repository.Repositories) error {
		require.NoError(t, repos.Entries.Create(ctx, demoEntry("e1", 10, time.Now())))
		require.NoError(t, repos.Stock.Create(ctx, &entity.Stock{
			ID: "s1", ProductID: memory.DemoProductUreaID, BranchID: memory.DemoBranchCentralID, Quantity: 10,
		}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Repositories().Entries.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, got, "la entrada no debe persistir tras el rollback")

	stock, err := store.Repositories().Stock.List(ctx, repository.StockFilter{})
	require.NoError(t, err)
	assert.Empty(t, stock)
}

func TestRun_ContextoCancelado(t *testing.T) {
	store := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Run(ctx, func(repository.Repositories) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestEntryRepo_CreateValidaReferencias(t *testing.T) {
	store := memory.NewDemo()
	ctx := context.Background()

	e := demoEntry("e1", 5, time.Now())
	e.SupplierID = "no-existe"
	err := store.Repositories().Entries.Create(ctx, e)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockRepo_ParUnico(t *testing.T) {
	store := memory.NewDemo()
	ctx := context.Background()
	repo := store.Repositories().Stock

	row := &entity.Stock{ID: "s1", ProductID: memory.DemoProductUreaID, BranchID: memory.DemoBranchCentralID, Quantity: 1}
	require.NoError(t, repo.Create(ctx, row))

	dup := *row
	dup.ID = "s2"
	require.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrDuplicate)
}

func TestEntryRepo_ListBusquedaSinMayusculas(t *testing.T) {
	store := memory.NewDemo()
	ctx := context.Background()
	repos := store.Repositories()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	a := demoEntry("a", 10, base)
	a.Invoice = "FAC-001"
	b := demoEntry("b", 80, base.Add(time.Hour))
	b.ProductID = memory.DemoProductNPKID
	b.Memo = "Lote de temporada"
	require.NoError(t, repos.Entries.Create(ctx, a))
	require.NoError(t, repos.Entries.Create(ctx, b))

	list, total, err := repos.Entries.List(ctx, repository.EntryFilter{Search: "urea", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "Urea 46%", list[0].Product.Name)

	list, total, err = repos.Entries.List(ctx, repository.EntryFilter{Search: "TEMPORADA", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "b", list[0].ID)

	list, total, err = repos.Entries.List(ctx, repository.EntryFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "b", list[0].ID, "orden por fecha de entrada descendente")

	list, _, err = repos.Entries.List(ctx, repository.EntryFilter{Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, list)
}
