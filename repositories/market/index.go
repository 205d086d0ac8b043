// Package MarketRepository is the durable side of the daily market-update
// cache: one row per (risk profile, calendar day), so the expensive AI
// generation runs at most once a day per profile and survives restarts.
package MarketRepository

import (
	"database/sql"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db: db,
	}
}
