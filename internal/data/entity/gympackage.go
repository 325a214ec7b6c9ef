package entity

// Package adalah paket membership yang dijual (katalog, bisa diedit admin)
type Package struct {
	BaseSimple
	Name         string  `db:"name"`
	Price        float64 `db:"price"`
	DurationDays int     `db:"duration_days"`
	Description  *string `db:"description"`
	IsActive     bool    `db:"is_active"`
}
