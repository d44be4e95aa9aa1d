package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// MakeSale records a sale and decrements the medicine's stock in one
// transaction. It either commits both writes or leaves no trace: the
// stock check, sale insert and decrement share the transaction, and the
// deferred rollback releases it on every failure path.
//
// The customer id is not checked against the customers table; a sale for
// an unregistered customer is accepted.
func (s *Store) MakeSale(ctx context.Context, customerID, medicineID, quantity int64) (int64, error) {
	if customerID <= 0 || medicineID <= 0 {
		return 0, fmt.Errorf("%w: customer_id and medicine_id are required", ErrValidation)
	}
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, classify(err)
	}
	defer tx.Rollback()

	var stock int64
	err = tx.GetContext(ctx, &stock,
		`SELECT stock FROM medicines WHERE medicine_id = ?`, medicineID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: medicine %d not found", ErrInsufficientStock, medicineID)
	}
	if err != nil {
		return 0, classify(err)
	}
	if stock < quantity {
		return 0, fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, quantity, stock)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sales (customer_id, medicine_id, quantity, sale_date) VALUES (?, ?, ?, ?)`,
		customerID, medicineID, quantity, time.Now().Format("2006-01-02"))
	if err != nil {
		return 0, classify(err)
	}
	saleID, err := res.LastInsertId()
	if err != nil {
		return 0, classify(err)
	}

	upd, err := tx.ExecContext(ctx,
		`UPDATE medicines SET stock = stock - ? WHERE medicine_id = ? AND stock >= ?`,
		quantity, medicineID, quantity)
	if err != nil {
		return 0, classify(err)
	}
	affected, err := upd.RowsAffected()
	if err != nil {
		return 0, classify(err)
	}
	if affected != 1 {
		// Stock moved between the check and the decrement.
		return 0, fmt.Errorf("%w: %d requested", ErrInsufficientStock, quantity)
	}

	if err := tx.Commit(); err != nil {
		return 0, classify(err)
	}
	return saleID, nil
}
