package models

import "time"

// Favorite bookmarks a company for a user. The composite primary key forbids
// duplicate pairs at the storage layer.
type Favorite struct {
	UserID      uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	StockSymbol string    `gorm:"primaryKey;size:20" json:"stock_symbol"`
	CreatedAt   time.Time `json:"created_at"`
}
