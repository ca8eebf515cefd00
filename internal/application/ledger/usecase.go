package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// LedgerUseCase libro de caja de la bodega: movimientos (ingreso/egreso) y saldo.
type LedgerUseCase struct {
	txRunner repository.TxRunner
	now      func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner repository.TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, now: time.Now}
}

// RecordMovement inserta el movimiento y ajusta el saldo en la misma transacción.
// ingreso: saldo += monto, ingresos += monto. egreso: saldo -= monto, egresos += monto.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) error {
	description := strings.TrimSpace(in.Description)
	movementType := strings.ToLower(strings.TrimSpace(in.Type))
	if description == "" {
		return domain.Validation("Debe proporcionar una descripción")
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return domain.Validation("El monto debe ser mayor a cero")
	}
	if movementType != entity.MovementTypeIngreso && movementType != entity.MovementTypeEgreso {
		return domain.Validation(`El tipo debe ser "ingreso" o "egreso"`)
	}

	return uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		mov := &entity.CashMovement{
			Description: description,
			Amount:      in.Amount,
			Type:        movementType,
			Date:        uc.now(),
		}
		if err := tx.Movements().Create(ctx, mov); err != nil {
			return err
		}
		return tx.Balance().Apply(ctx, movementType, in.Amount)
	})
}

// GetBalance saldo, ingresos y egresos acumulados.
func (uc *LedgerUseCase) GetBalance(ctx context.Context) (*dto.BalanceResponse, error) {
	var out *dto.BalanceResponse
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		b, err := tx.Balance().Get(ctx)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.NotFound("Información de saldo no encontrada")
		}
		out = &dto.BalanceResponse{Saldo: b.Saldo, Ingresos: b.Ingresos, Egresos: b.Egresos}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMovements movimientos más recientes primero.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	var list []*entity.CashMovement
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		var err error
		list, err = tx.Movements().List(ctx, page.Limit, page.Offset)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{
		Movements: make([]dto.MovementResponse, 0, len(list)),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range list {
		out.Movements = append(out.Movements, dto.MovementResponse{
			ID:          m.ID,
			Description: m.Description,
			Amount:      m.Amount,
			Type:        m.Type,
			Date:        m.Date,
		})
	}
	return out, nil
}
