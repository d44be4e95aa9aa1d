package domain

type Medicine struct {
	ID           int64   `db:"medicine_id" json:"medicine_id"`
	Name         string  `db:"name" json:"name"`
	Manufacturer string  `db:"manufacturer" json:"manufacturer"`
	Price        float64 `db:"price" json:"price"`
	Stock        int64   `db:"stock" json:"stock"`
}
