package domain

type Customer struct {
	ID      int64   `db:"customer_id" json:"customer_id"`
	Name    string  `db:"name" json:"name"`
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Address string  `db:"address" json:"address"`
}
