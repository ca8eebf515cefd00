package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var (
	_ repository.CashMovementRepository = (*CashMovementRepo)(nil)
	_ repository.BalanceRepository      = (*BalanceRepo)(nil)
)

// CashMovementRepo libro de movimientos de caja.
type CashMovementRepo struct {
	q Querier
}

// NewCashMovementRepository construye el adaptador de movimientos.
func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

// Create inserta el movimiento y asigna su ID.
func (r *CashMovementRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	query := `
		INSERT INTO movimientos_bodega (descripcion, monto, tipo, fecha)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, m.Description, m.Amount, m.Type, m.Date).Scan(&m.ID); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List movimientos más recientes primero.
func (r *CashMovementRepo) List(ctx context.Context, limit, offset int) ([]*entity.CashMovement, error) {
	query := `
		SELECT id, descripcion, monto, tipo, fecha
		FROM movimientos_bodega
		ORDER BY fecha DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		if err := rows.Scan(&m.ID, &m.Description, &m.Amount, &m.Type, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// BalanceRepo fila única (id = 1) de saldo_bodega.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador de saldo.
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get lee el saldo; nil, nil si la fila no existe.
func (r *BalanceRepo) Get(ctx context.Context) (*entity.Balance, error) {
	var b entity.Balance
	err := r.q.QueryRow(ctx, `SELECT saldo, ingresos, egresos FROM saldo_bodega WHERE id = 1`).
		Scan(&b.Saldo, &b.Ingresos, &b.Egresos)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// Apply actualiza saldo e ingresos o egresos en una sola sentencia.
func (r *BalanceRepo) Apply(ctx context.Context, movementType string, amount decimal.Decimal) error {
	var query string
	switch movementType {
	case entity.MovementTypeIngreso:
		query = `UPDATE saldo_bodega SET saldo = saldo + $1, ingresos = ingresos + $1 WHERE id = 1`
	case entity.MovementTypeEgreso:
		query = `UPDATE saldo_bodega SET saldo = saldo - $1, egresos = egresos + $1 WHERE id = 1`
	default:
		return domain.Validation("Tipo de movimiento inválido")
	}
	tag, err := r.q.Exec(ctx, query, amount)
	if err != nil {
		return fmt.Errorf("apply balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Información de saldo no encontrada")
	}
	return nil
}
