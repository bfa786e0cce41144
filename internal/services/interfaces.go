package services

import (
	"time"

	"nomix/internal/marketdata"
	"nomix/internal/models"
)

// UserServicer defines the contract for signup and credential checks.
type UserServicer interface {
	CreateUser(firstName, lastName, email, phone, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// StockQuote is a daily stock row joined with its company's display name.
type StockQuote struct {
	models.Stock
	Name string `json:"name"`
}

// CompanyProfile is a company together with its most recent stock row.
// Latest is nil when no rows have been generated for the company.
type CompanyProfile struct {
	Company models.Company `json:"profile"`
	Latest  *models.Stock  `json:"latest_market"`
}

// MarketServicer defines the read side over generated market data.
type MarketServicer interface {
	GetStocks(date time.Time) ([]StockQuote, error)
	GetIndex(date time.Time) (*models.IndexRecord, error)
	GetCompanyHistory(symbol string) ([]models.Stock, error)
	GetCompanyProfile(symbol string) (*CompanyProfile, error)
	ListCompanies() ([]models.Company, error)
}

// FavoriteServicer defines set-membership operations over a user's favorites.
type FavoriteServicer interface {
	AddFavorite(userID uint, symbol string) error
	RemoveFavorite(userID uint, symbol string) error
	ListFavorites(userID uint) ([]string, error)
}

// SeedResult counts the rows a seeding call created.
type SeedResult struct {
	CompaniesCreated int `json:"companies_created"`
	StocksCreated    int `json:"stocks_created"`
	IndexCreated     int `json:"index_created"`
}

// SeedServicer defines the contract for populating synthetic market data.
type SeedServicer interface {
	Seed(window marketdata.Window) (*SeedResult, error)
	SeedFull(anchor time.Time) (*SeedResult, error)
	SeedWeek(anchor time.Time) (*SeedResult, error)
}
