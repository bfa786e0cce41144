package models

import "time"

// Stock is one synthetic daily OHLC row for a company. (Symbol, Date) is the
// identity; rows are never updated once written.
type Stock struct {
	Symbol          string    `gorm:"primaryKey;size:20" json:"symbol"`
	Date            time.Time `gorm:"primaryKey;type:date" json:"date"`
	Last            float64   `gorm:"not null" json:"last"`
	Open            float64   `gorm:"not null" json:"open"`
	High            float64   `gorm:"not null" json:"high"`
	Low             float64   `gorm:"not null" json:"low"`
	Volume          int64     `gorm:"not null;default:0" json:"volume"`
	PredClose       float64   `json:"pred_close"`
	ConfidenceUpper float64   `json:"confidence_upper"`
	ConfidenceLower float64   `json:"confidence_lower"`
}

// IndexRecord is one daily row of the market-wide index. Date is the identity.
type IndexRecord struct {
	Date            time.Time `gorm:"primaryKey;type:date" json:"date"`
	Last            float64   `gorm:"not null" json:"last"`
	Open            float64   `gorm:"not null" json:"open"`
	High            float64   `gorm:"not null" json:"high"`
	Low             float64   `gorm:"not null" json:"low"`
	Volume          int64     `gorm:"not null;default:0" json:"volume"`
	PredClose       float64   `json:"pred_close"`
	ConfidenceUpper float64   `json:"confidence_upper"`
	ConfidenceLower float64   `json:"confidence_lower"`
}

// TableName keeps the table name used by the public API ("index" is reserved in SQL).
func (IndexRecord) TableName() string {
	return "index_data"
}
