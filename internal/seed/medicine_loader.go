package seed

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// LoadMedicines ingests a CSV catalog (name,manufacturer,price,stock)
// into the medicines table. Skipped when the table already holds rows so
// restarts never duplicate the catalog.
func LoadMedicines(db *sqlx.DB, csvPath string) {
	var existing int
	if err := db.Get(&existing, `SELECT COUNT(*) FROM medicines`); err != nil {
		log.Printf("unable to check medicine catalog: %v", err)
		return
	}
	if existing > 0 {
		return
	}

	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load medicine catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read medicine header: %v", err)
		return
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Printf("unable to start medicine transaction: %v", err)
		return
	}
	stmt, err := tx.Preparex(`INSERT INTO medicines (name, manufacturer, price, stock) VALUES (?, ?, ?, ?)`)
	if err != nil {
		log.Printf("unable to prepare medicine insert: %v", err)
		_ = tx.Rollback()
		return
	}
	defer stmt.Close()

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read medicine row: %v", err)
			continue
		}
		if len(record) < 4 {
			continue
		}
		name := strings.TrimSpace(record[0])
		manufacturer := strings.TrimSpace(record[1])
		price, priceErr := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		stock, stockErr := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)

		if name == "" || priceErr != nil || stockErr != nil || price < 0 || stock < 0 {
			continue
		}

		if _, err := stmt.Exec(name, manufacturer, price, stock); err != nil {
			log.Printf("unable to insert medicine %s: %v", name, err)
		} else {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("unable to commit medicine seed: %v", err)
	} else if rows > 0 {
		log.Printf("seeded medicine catalog with %d rows", rows)
	}
}
