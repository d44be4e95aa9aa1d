package domain

type Pharmacist struct {
	ID    int64  `db:"pharmacist_id" json:"pharmacist_id"`
	Name  string `db:"name" json:"name"`
	Shift string `db:"shift" json:"shift"`
}
