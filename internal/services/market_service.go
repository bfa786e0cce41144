package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "nomix/internal/errors"
	"nomix/internal/models"
)

// marketService answers point and range queries over generated market data.
type marketService struct {
	db *gorm.DB
}

// NewMarketService creates a new MarketServicer.
func NewMarketService(db *gorm.DB) MarketServicer {
	return &marketService{db: db}
}

// GetStocks returns every stock row for exactly the given day, joined with
// the company name. No rows is an empty slice, not an error.
func (s *marketService) GetStocks(date time.Time) ([]StockQuote, error) {
	quotes := []StockQuote{}
	err := s.db.Model(&models.Stock{}).
		Select("stocks.*, companies.name AS name").
		Joins("LEFT JOIN companies ON companies.symbol = stocks.symbol").
		Where("stocks.date = ?", models.Day(date)).
		Order("stocks.symbol ASC").
		Scan(&quotes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return quotes, nil
}

// GetIndex returns the index row for the given day. Index data is expected to
// be complete, so a missing day is ErrIndexNotFound.
func (s *marketService) GetIndex(date time.Time) (*models.IndexRecord, error) {
	var record models.IndexRecord
	if err := s.db.Where("date = ?", models.Day(date)).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIndexNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// GetCompanyHistory returns the full daily series for a symbol, oldest first.
func (s *marketService) GetCompanyHistory(symbol string) ([]models.Stock, error) {
	history := []models.Stock{}
	err := s.db.Where("symbol = ?", normalizeSymbol(symbol)).
		Order("date ASC").
		Find(&history).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return history, nil
}

// GetCompanyProfile returns the company and its most recent stock row.
func (s *marketService) GetCompanyProfile(symbol string) (*CompanyProfile, error) {
	var company models.Company
	if err := s.db.Where("symbol = ?", normalizeSymbol(symbol)).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	profile := &CompanyProfile{Company: company}

	var latest models.Stock
	err := s.db.Where("symbol = ?", company.Symbol).Order("date DESC").First(&latest).Error
	switch {
	case err == nil:
		profile.Latest = &latest
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Company exists but nothing has been generated for it yet.
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return profile, nil
}

// ListCompanies returns every company ordered by symbol.
func (s *marketService) ListCompanies() ([]models.Company, error) {
	companies := []models.Company{}
	if err := s.db.Order("symbol ASC").Find(&companies).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return companies, nil
}
