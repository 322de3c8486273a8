package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/agro-inventario-api/internal/domain"
)

func TestMapEntryWriteError(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
	}

	assert.ErrorIs(t, mapEntryWriteError("insert", wrap(codeUniqueViolation)), domain.ErrDuplicate)
	assert.ErrorIs(t, mapEntryWriteError("insert", wrap(codeForeignKeyViolation)), domain.ErrInvalidInput)
	assert.ErrorIs(t, mapEntryWriteError("insert", wrap(codeInvalidText)), domain.ErrInvalidInput)
	assert.ErrorIs(t, mapEntryWriteError("insert", wrap(codeCheckViolation)), domain.ErrInvalidInput)

	other := errors.New("conexión cerrada")
	err := mapEntryWriteError("insert stock entry", other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "insert stock entry")
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% urea\_46 \\`, escapeLike(`100% urea_46 \`))
	assert.Equal(t, "npk", escapeLike("npk"))
}
