package models

import "time"

// Base contains the common columns for tables with a surrogate key.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Company{},
		&Stock{},
		&IndexRecord{},
		&Favorite{},
	}
}
