package domain

type Sale struct {
	ID         int64  `db:"sale_id" json:"sale_id"`
	CustomerID int64  `db:"customer_id" json:"customer_id"`
	MedicineID int64  `db:"medicine_id" json:"medicine_id"`
	Quantity   int64  `db:"quantity" json:"quantity"`
	SaleDate   string `db:"sale_date" json:"sale_date"`
}
