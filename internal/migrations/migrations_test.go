package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmabook/m/internal/database"
)

func TestRunIsIdempotent(t *testing.T) {
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Run(db))

	_, err := db.Exec(`INSERT INTO customers (name, phone, address) VALUES ('Alice', '017', 'Dhaka')`)
	require.NoError(t, err)

	// Repeated runs leave the table set and existing data untouched.
	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM customers`))
	assert.Equal(t, 1, count)

	var tables []string
	require.NoError(t, db.Select(&tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`))
	assert.Equal(t, []string{"customers", "medicines", "pharmacists", "sales"}, tables)
}

func TestSchemaConstraints(t *testing.T) {
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Run(db))

	_, err := db.Exec(`INSERT INTO medicines (name, manufacturer, price, stock) VALUES ('X', '', -1, 0)`)
	assert.Error(t, err, "negative price must violate the price check")

	_, err = db.Exec(`INSERT INTO medicines (name, manufacturer, price, stock) VALUES ('X', '', 1, -1)`)
	assert.Error(t, err, "negative stock must violate the stock check")
}
