package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"pharmabook/m/domain"
)

// Sentinel errors returned by every store operation. Callers match with
// errors.Is; the wrapped message carries the detail for display.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrValidation         = errors.New("invalid input")
)

// Kind enumerates the record tables exposed through Fetch. Arbitrary
// query text is never accepted; each kind maps to a fixed query.
type Kind string

const (
	KindCustomers   Kind = "customers"
	KindMedicines   Kind = "medicines"
	KindSales       Kind = "sales"
	KindPharmacists Kind = "pharmacists"
)

// Store is the record-keeping core: customer and medicine registration,
// the sale transaction and table browsing.
type Store struct {
	db *sqlx.DB
}

// New constructs a Store over an open database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// AddCustomer registers a customer and returns the assigned id.
// An empty phone is stored as NULL so the uniqueness constraint only
// binds real numbers.
func (s *Store) AddCustomer(ctx context.Context, name, phone, address string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (name, phone, address) VALUES (?, ?, ?)`,
		name, nullIfEmpty(phone), address)
	if err != nil {
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

// AddMedicine registers a medicine with its initial stock level.
func (s *Store) AddMedicine(ctx context.Context, name, manufacturer string, price float64, stock int64) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if stock < 0 {
		return 0, fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO medicines (name, manufacturer, price, stock) VALUES (?, ?, ?, ?)`,
		name, manufacturer, price, stock)
	if err != nil {
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

// AddPharmacist registers a pharmacist and their shift.
func (s *Store) AddPharmacist(ctx context.Context, name, shift string) (int64, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(shift) == "" {
		return 0, fmt.Errorf("%w: name and shift are required", ErrValidation)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO pharmacists (name, shift) VALUES (?, ?)`, name, shift)
	if err != nil {
		return 0, classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(err)
	}
	return id, nil
}

// Fetch returns all rows of the requested kind in insertion order.
func (s *Store) Fetch(ctx context.Context, kind Kind) (any, error) {
	switch kind {
	case KindCustomers:
		return s.ListCustomers(ctx)
	case KindMedicines:
		return s.ListMedicines(ctx)
	case KindSales:
		return s.ListSales(ctx)
	case KindPharmacists:
		return s.ListPharmacists(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown record kind %q", ErrValidation, kind)
	}
}

// ListCustomers returns all customers ordered by id.
func (s *Store) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	err := s.db.SelectContext(ctx, &customers,
		`SELECT customer_id, name, phone, address FROM customers ORDER BY customer_id`)
	if err != nil {
		return nil, classify(err)
	}
	return customers, nil
}

// ListMedicines returns all medicines ordered by id.
func (s *Store) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	medicines := []domain.Medicine{}
	err := s.db.SelectContext(ctx, &medicines,
		`SELECT medicine_id, name, manufacturer, price, stock FROM medicines ORDER BY medicine_id`)
	if err != nil {
		return nil, classify(err)
	}
	return medicines, nil
}

// ListSales returns all sales ordered by id.
func (s *Store) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales := []domain.Sale{}
	err := s.db.SelectContext(ctx, &sales,
		`SELECT sale_id, customer_id, medicine_id, quantity, sale_date FROM sales ORDER BY sale_id`)
	if err != nil {
		return nil, classify(err)
	}
	return sales, nil
}

// ListPharmacists returns all pharmacists ordered by id.
func (s *Store) ListPharmacists(ctx context.Context) ([]domain.Pharmacist, error) {
	pharmacists := []domain.Pharmacist{}
	err := s.db.SelectContext(ctx, &pharmacists,
		`SELECT pharmacist_id, name, shift FROM pharmacists ORDER BY pharmacist_id`)
	if err != nil {
		return nil, classify(err)
	}
	return pharmacists, nil
}

// classify maps a driver error onto the store's error taxonomy.
func classify(err error) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func nullIfEmpty(val string) *string {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
