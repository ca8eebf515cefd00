package repository

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CashMovementRepository libro de movimientos de caja (solo inserción).
type CashMovementRepository interface {
	Create(ctx context.Context, movement *entity.CashMovement) error
	List(ctx context.Context, limit, offset int) ([]*entity.CashMovement, error)
}

// BalanceRepository fila única de saldo.
type BalanceRepository interface {
	// Get devuelve nil, nil si el saldo no fue inicializado.
	Get(ctx context.Context) (*entity.Balance, error)
	// Apply ajusta saldo/ingresos/egresos según el tipo. Retorna domain.ErrNotFound si la fila no existe.
	Apply(ctx context.Context, movementType string, amount decimal.Decimal) error
}
