package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema for the pharmacy records service.
// Safe to call on every start; existing tables and data are left untouched.
func Run(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            phone TEXT UNIQUE,
            address TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS medicines (
            medicine_id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            manufacturer TEXT,
            price REAL NOT NULL CHECK (price >= 0),
            stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0)
        );`,
		`CREATE TABLE IF NOT EXISTS sales (
            sale_id INTEGER PRIMARY KEY AUTOINCREMENT,
            customer_id INTEGER NOT NULL,
            medicine_id INTEGER NOT NULL,
            quantity INTEGER NOT NULL,
            sale_date DATE NOT NULL,
            FOREIGN KEY(customer_id) REFERENCES customers(customer_id),
            FOREIGN KEY(medicine_id) REFERENCES medicines(medicine_id)
        );`,
		`CREATE TABLE IF NOT EXISTS pharmacists (
            pharmacist_id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            shift TEXT NOT NULL
        );`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema setup failed: %w", err)
		}
	}
	return nil
}
