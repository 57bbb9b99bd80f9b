package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
	"github.com/stockflow/stockflow-api/internal/domain/stock"
)

// UseCase es el libro de movimientos de stock: crea, edita y borra movimientos
// manteniendo el stock del producto consistente con el historial. Cada
// operación de escritura corre en una transacción (TxRunner) con la fila del
// producto bloqueada (SELECT FOR UPDATE) y la cantidad releída dentro de la tx.
type UseCase struct {
	txRunner TxRunner
	// repos atados al pool, solo para lecturas fuera de transacción
	movements repository.MovementRepository
	products  repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movements repository.MovementRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movements: movements, products: products}
}

func validateMovementInput(kind string, quantity int) error {
	if !entity.ValidMovementKind(kind) {
		return domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// Create registra un movimiento nuevo y ajusta el stock del producto en la
// misma transacción. ENTRY suma; EXIT resta y falla con ErrInsufficientStock
// si excede el disponible.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if err := validateMovementInput(in.Kind, in.Quantity); err != nil {
		return nil, err
	}
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.Movement{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Quantity:  in.Quantity,
		ProductID: in.ProductID,
		Note:      in.Note,
		Date:      time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		newQty, err := stock.Apply(product.Quantity, in.Kind, in.Quantity)
		if err != nil {
			return err
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}
		mov.ProductName = product.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Update edita un movimiento en dos fases: revierte el efecto del movimiento
// original sobre su producto y aplica el nuevo kind/quantity sobre el producto
// destino (que puede ser otro). Ambos ajustes de stock y la reescritura del
// movimiento se confirman en una sola transacción. La fecha original se conserva.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	if err := validateMovementInput(in.Kind, in.Quantity); err != nil {
		return nil, err
	}

	var updated *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}

		targetID := mov.ProductID
		if in.ProductID != nil && *in.ProductID != "" {
			targetID = *in.ProductID
		}

		if targetID == mov.ProductID {
			product, err := productRepo.GetForUpdate(mov.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			reverted, err := stock.Revert(product.Quantity, mov.Kind, mov.Quantity)
			if err != nil {
				return err
			}
			newQty, err := stock.Apply(reverted, in.Kind, in.Quantity)
			if err != nil {
				return err
			}
			if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
				return err
			}
			mov.ProductName = product.Name
		} else {
			source, target, err := lockPair(productRepo, mov.ProductID, targetID)
			if err != nil {
				return err
			}
			sourceQty, err := stock.Revert(source.Quantity, mov.Kind, mov.Quantity)
			if err != nil {
				return err
			}
			targetQty, err := stock.Apply(target.Quantity, in.Kind, in.Quantity)
			if err != nil {
				return err
			}
			if err := productRepo.UpdateQuantity(source.ID, sourceQty); err != nil {
				return err
			}
			if err := productRepo.UpdateQuantity(target.ID, targetQty); err != nil {
				return err
			}
			mov.ProductName = target.Name
		}

		mov.Kind = in.Kind
		mov.Quantity = in.Quantity
		mov.ProductID = targetID
		if in.Note != nil {
			mov.Note = *in.Note
		}
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		updated = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(updated), nil
}

// lockPair bloquea dos filas de producto en orden estable por ID para que dos
// ediciones cruzadas no se bloqueen mutuamente.
func lockPair(productRepo repository.ProductRepository, sourceID, targetID string) (source, target *entity.Product, err error) {
	first, second := sourceID, targetID
	if second < first {
		first, second = second, first
	}
	for _, pid := range []string{first, second} {
		p, err := productRepo.GetForUpdate(pid)
		if err != nil {
			return nil, nil, err
		}
		if p == nil {
			return nil, nil, domain.ErrProductNotFound
		}
		if pid == sourceID {
			source = p
		} else {
			target = p
		}
	}
	return source, target, nil
}

// Delete borra un movimiento revirtiendo su efecto sobre el stock. Borrar un
// ENTRY cuyo stock ya se consumió falla con ErrInvalidReversal y no muta nada.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}
		product, err := productRepo.GetForUpdate(mov.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		newQty, err := stock.Revert(product.Quantity, mov.Kind, mov.Quantity)
		if err != nil {
			return err
		}
		if err := movRepo.Delete(mov.ID); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(product.ID, newQty)
	})
}

// Get devuelve un movimiento por ID con el nombre del producto resuelto.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.MovementResponse, error) {
	mov, err := uc.movements.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrMovementNotFound
	}
	return toMovementResponse(mov), nil
}

// List devuelve todos los movimientos ordenados por fecha descendente.
func (uc *UseCase) List(ctx context.Context) ([]dto.MovementResponse, error) {
	list, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return items, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		Kind:        m.Kind,
		Quantity:    m.Quantity,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Note:        m.Note,
		Date:        m.Date,
	}
}
