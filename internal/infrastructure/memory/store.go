// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con semántica transaccional por snapshot. Permite ejercitar los
// casos de uso y los handlers HTTP sin PostgreSQL; lo usan los tests.
package memory

import (
	"context"
	"sort"

	"github.com/stockflow/stockflow-api/internal/application/ledger"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// Store almacén en memoria. Los mapas son exportados para que los tests
// siembren y verifiquen estado directamente.
type Store struct {
	Products   map[string]*entity.Product
	Movements  map[string]*entity.Movement
	Categories map[string]*entity.Category
	Cards      map[string]*entity.KanbanCard
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		Products:   make(map[string]*entity.Product),
		Movements:  make(map[string]*entity.Movement),
		Categories: make(map[string]*entity.Category),
		Cards:      make(map[string]*entity.KanbanCard),
	}
}

func (s *Store) clone() *Store {
	c := NewStore()
	for id, p := range s.Products {
		cp := *p
		c.Products[id] = &cp
	}
	for id, m := range s.Movements {
		cm := *m
		c.Movements[id] = &cm
	}
	for id, cat := range s.Categories {
		cc := *cat
		c.Categories[id] = &cc
	}
	for id, card := range s.Cards {
		cc := *card
		c.Cards[id] = &cc
	}
	return c
}

// ProductRepo devuelve el adaptador de productos.
func (s *Store) ProductRepo() repository.ProductRepository { return &productRepo{s: s} }

// MovementRepo devuelve el adaptador de movimientos.
func (s *Store) MovementRepo() repository.MovementRepository { return &movementRepo{s: s} }

// CategoryRepo devuelve el adaptador de categorías.
func (s *Store) CategoryRepo() repository.CategoryRepository { return &categoryRepo{s: s} }

// KanbanCardRepo devuelve el adaptador del tablero.
func (s *Store) KanbanCardRepo() repository.KanbanCardRepository { return &kanbanCardRepo{s: s} }

// ReportRepo devuelve el adaptador de reportes.
func (s *Store) ReportRepo() repository.ReportRepository { return &reportRepo{s: s} }

// TxRunner devuelve un runner que emula Commit/Rollback: toma un snapshot del
// almacén y lo restaura completo si fn falla.
func (s *Store) TxRunner() ledger.TxRunner { return &txRunner{s: s} }

type txRunner struct{ s *Store }

func (r *txRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	snapshot := r.s.clone()
	if err := fn(&movementRepo{s: r.s}, &productRepo{s: r.s}); err != nil {
		*r.s = *snapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.Products[p.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	if c, ok := r.s.Categories[cp.CategoryID]; ok {
		cp.CategoryName = c.Name
	}
	return &cp, nil
}

// GetForUpdate equivale a GetByID: no hay filas que bloquear en memoria.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.Products[p.ID] = &cp
	return nil
}

func (r *productRepo) UpdateQuantity(productID string, quantity int) error {
	p, ok := r.s.Products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *productRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.Products))
	for id := range r.s.Products {
		p, _ := r.GetByID(id)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete imita la FK RESTRICT: falla si el producto tiene movimientos.
func (r *productRepo) Delete(id string) error {
	for _, m := range r.s.Movements {
		if m.ProductID == id {
			return domain.ErrProductInUse
		}
	}
	delete(r.s.Products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

type movementRepo struct{ s *Store }

func (r *movementRepo) Create(m *entity.Movement) error {
	cm := *m
	r.s.Movements[m.ID] = &cm
	return nil
}

func (r *movementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.s.Movements[id]
	if !ok {
		return nil, nil
	}
	cm := *m
	if p, ok := r.s.Products[cm.ProductID]; ok {
		cm.ProductName = p.Name
	}
	return &cm, nil
}

func (r *movementRepo) Update(m *entity.Movement) error {
	cm := *m
	r.s.Movements[m.ID] = &cm
	return nil
}

func (r *movementRepo) Delete(id string) error {
	delete(r.s.Movements, id)
	return nil
}

func (r *movementRepo) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.s.Movements))
	for id := range r.s.Movements {
		m, _ := r.GetByID(id)
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

type categoryRepo struct{ s *Store }

func (r *categoryRepo) Create(c *entity.Category) error {
	cc := *c
	r.s.Categories[c.ID] = &cc
	return nil
}

func (r *categoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.s.Categories[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *categoryRepo) Update(c *entity.Category) error {
	cc := *c
	r.s.Categories[c.ID] = &cc
	return nil
}

func (r *categoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.s.Categories))
	for _, c := range r.s.Categories {
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete imita la FK RESTRICT: falla si la categoría tiene productos.
func (r *categoryRepo) Delete(id string) error {
	for _, p := range r.s.Products {
		if p.CategoryID == id {
			return domain.ErrCategoryInUse
		}
	}
	delete(r.s.Categories, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

type reportRepo struct{ s *Store }

func (r *reportRepo) GetStockSummary(_ context.Context) (*repository.StockSummaryResult, error) {
	res := &repository.StockSummaryResult{
		TotalProducts:   len(r.s.Products),
		TotalCategories: len(r.s.Categories),
		TotalMovements:  len(r.s.Movements),
	}
	for _, m := range r.s.Movements {
		if m.Kind == entity.MovementKindEntry {
			res.EntryCount++
		} else {
			res.ExitCount++
		}
	}
	for _, p := range r.s.Products {
		if p.Quantity == 0 {
			res.ZeroStockCount++
		}
	}
	return res, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablero kanban
// ──────────────────────────────────────────────────────────────────────────────

type kanbanCardRepo struct{ s *Store }

func (r *kanbanCardRepo) Create(c *entity.KanbanCard) error {
	cc := *c
	r.s.Cards[c.ID] = &cc
	return nil
}

func (r *kanbanCardRepo) GetByID(id string) (*entity.KanbanCard, error) {
	c, ok := r.s.Cards[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *kanbanCardRepo) Update(c *entity.KanbanCard) error {
	cc := *c
	r.s.Cards[c.ID] = &cc
	return nil
}

func (r *kanbanCardRepo) Delete(id string) error {
	delete(r.s.Cards, id)
	return nil
}

func (r *kanbanCardRepo) List() ([]*entity.KanbanCard, error) {
	out := make([]*entity.KanbanCard, 0, len(r.s.Cards))
	for _, c := range r.s.Cards {
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}
