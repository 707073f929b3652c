package ledger_test

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jcastro/llantera-api/internal/domain/entity"
	"github.com/jcastro/llantera-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos del motor.
// El fakeTxRunner emula la semántica transaccional real: un mutex por
// transacción (serializa como el lock de fila) y un snapshot que se restaura
// si fn devuelve error (rollback).
// ──────────────────────────────────────────────────────────────────────────────

var errStorageFailure = errors.New("fallo de almacenamiento simulado")

type fakeStore struct {
	mu        sync.Mutex
	barcodes  map[string]*entity.Barcode // clave: código
	movements []*entity.Movement

	// failOnCreate hace fallar el N-ésimo Create de movimientos (base 1).
	// 0 = nunca falla.
	failOnCreate int
	createCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{barcodes: map[string]*entity.Barcode{}}
}

func (s *fakeStore) addBarcode(code string, stock int) *entity.Barcode {
	b := &entity.Barcode{
		ID:        uuid.New().String(),
		Code:      code,
		ProductID: uuid.New().String(),
		Stock:     stock,
	}
	s.barcodes[code] = b
	return b
}

func (s *fakeStore) stockOf(code string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.barcodes[code]; ok {
		return b.Stock
	}
	return -1
}

// ledgerSum devuelve sum(entradas) - sum(salidas) de un código.
func (s *fakeStore) ledgerSum(code string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, m := range s.movements {
		if m.Barcode != code {
			continue
		}
		if m.Kind == entity.MovementInbound {
			total += m.Quantity
		} else {
			total -= m.Quantity
		}
	}
	return total
}

func (s *fakeStore) movementsOf(code string) []*entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []*entity.Movement
	for _, m := range s.movements {
		if m.Barcode == code {
			list = append(list, m)
		}
	}
	return list
}

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	barcodeRepo repository.BarcodeRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Snapshot para emular rollback completo.
	snapshot := make(map[string]*entity.Barcode, len(s.barcodes))
	for code, b := range s.barcodes {
		cp := *b
		snapshot[code] = &cp
	}
	movCount := len(s.movements)

	if err := fn(&fakeBarcodeRepo{s}, &fakeMovementRepo{s}); err != nil {
		s.barcodes = snapshot
		s.movements = s.movements[:movCount]
		return err
	}
	return nil
}

// fakeBarcodeRepo implementa repository.BarcodeRepository sobre el store.
// Los métodos administrativos no los usa el motor y quedan mínimos.
type fakeBarcodeRepo struct {
	store *fakeStore
}

func (r *fakeBarcodeRepo) GetByCode(code string) (*entity.Barcode, error) {
	if b, ok := r.store.barcodes[code]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBarcodeRepo) GetByCodeForUpdate(code string) (*entity.Barcode, error) {
	return r.GetByCode(code)
}

func (r *fakeBarcodeRepo) UpdateStock(id string, stock int, kind string) error {
	for _, b := range r.store.barcodes {
		if b.ID == id {
			b.Stock = stock
			return nil
		}
	}
	return errors.New("código no encontrado")
}

func (r *fakeBarcodeRepo) Create(b *entity.Barcode) error { return nil }

func (r *fakeBarcodeRepo) GetByID(id string) (*entity.Barcode, error) { return nil, nil }

func (r *fakeBarcodeRepo) FindByCodeWithProduct(code string) (*repository.BarcodeListItem, error) {
	return nil, nil
}

func (r *fakeBarcodeRepo) List(f repository.BarcodeFilter, limit, offset int) ([]*repository.BarcodeListItem, int, error) {
	return nil, 0, nil
}

func (r *fakeBarcodeRepo) Update(b *entity.Barcode) error { return nil }

func (r *fakeBarcodeRepo) Delete(id string) error { return nil }

func (r *fakeBarcodeRepo) CountByProduct(productID string) (int, error) { return 0, nil }

// fakeMovementRepo implementa repository.MovementRepository sobre el store.
type fakeMovementRepo struct {
	store *fakeStore
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.store.createCalls++
	if r.store.failOnCreate > 0 && r.store.createCalls == r.store.failOnCreate {
		return errStorageFailure
	}
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) List(f repository.MovementFilter, limit, offset int) ([]*repository.MovementListItem, int, error) {
	return nil, 0, nil
}
