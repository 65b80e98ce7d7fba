package models

// Budget represents a per-category spending limit. Each owner may hold at
// most one budget per category among live rows; the duplicate check lives in
// the service layer and the migration adds a partial unique index excluding
// soft-deleted rows to back it.
type Budget struct {
	Base
	Owner    string  `gorm:"index:idx_budget_owner_category;not null" json:"owner"`
	Category string  `gorm:"index:idx_budget_owner_category;not null" json:"category"`
	Limit    float64 `gorm:"not null" json:"limit"`
}
