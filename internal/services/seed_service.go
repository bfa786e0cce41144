package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "nomix/internal/errors"
	"nomix/internal/logger"
	"nomix/internal/marketdata"
	"nomix/internal/models"
)

const seedBatchSize = 500

// seedService writes generator output for a window of days without touching
// rows that already exist.
type seedService struct {
	db      *gorm.DB
	catalog *marketdata.Catalog
	stocks  marketdata.Generator
	index   marketdata.Generator
}

// NewSeedService creates a new SeedServicer. stocks generates the per-company
// series and index the market index series.
func NewSeedService(db *gorm.DB, catalog *marketdata.Catalog, stocks, index marketdata.Generator) SeedServicer {
	return &seedService{db: db, catalog: catalog, stocks: stocks, index: index}
}

// SeedFull populates 30 days of history through 10 days ahead of anchor.
func (s *seedService) SeedFull(anchor time.Time) (*SeedResult, error) {
	return s.Seed(marketdata.FullWindow(anchor))
}

// SeedWeek populates anchor and the six days after it.
func (s *seedService) SeedWeek(anchor time.Time) (*SeedResult, error) {
	return s.Seed(marketdata.WeekWindow(anchor))
}

// Seed upserts the catalog companies, then inserts every missing
// (symbol, date) stock row and every missing index row for the window.
// Everything happens in one transaction: a failure leaves nothing from this
// call behind, and a repeated call creates no rows.
func (s *seedService) Seed(window marketdata.Window) (*SeedResult, error) {
	if err := window.Validate(); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	dates := window.Dates()
	result := &SeedResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		created, err := s.upsertCompanies(tx)
		if err != nil {
			return err
		}
		result.CompaniesCreated = created

		for _, seed := range s.catalog.Seeds() {
			existing, err := existingDates(tx.Model(&models.Stock{}).Where("symbol = ?", seed.Symbol), window)
			if err != nil {
				return err
			}

			var rows []models.Stock
			for _, c := range s.stocks.Series(seed, dates) {
				if existing[c.Date.Format(models.DateLayout)] {
					continue
				}
				rows = append(rows, stockRow(seed.Symbol, c.Rounded()))
			}

			n, err := insertMissing(tx, &rows, len(rows))
			if err != nil {
				return err
			}
			result.StocksCreated += n
		}

		existing, err := existingDates(tx.Model(&models.IndexRecord{}), window)
		if err != nil {
			return err
		}
		var rows []models.IndexRecord
		for _, c := range s.index.Series(marketdata.IndexSeed(), dates) {
			if existing[c.Date.Format(models.DateLayout)] {
				continue
			}
			rows = append(rows, indexRow(c.Rounded()))
		}
		n, err := insertMissing(tx, &rows, len(rows))
		if err != nil {
			return err
		}
		result.IndexCreated = n

		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Named("seed").Infow("market data seeded",
		"from", window.Start().Format(models.DateLayout),
		"to", window.End().Format(models.DateLayout),
		"companies_created", result.CompaniesCreated,
		"stocks_created", result.StocksCreated,
		"index_created", result.IndexCreated,
	)
	return result, nil
}

// upsertCompanies creates catalog companies that do not exist yet. Existing
// rows are left untouched.
func (s *seedService) upsertCompanies(tx *gorm.DB) (int, error) {
	companies := make([]models.Company, 0, len(s.catalog.Companies))
	for _, l := range s.catalog.Companies {
		companies = append(companies, l.Company())
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&companies)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// existingDates returns the set of days (YYYY-MM-DD) inside window that
// already have a row in the scoped query.
func existingDates(scope *gorm.DB, window marketdata.Window) (map[string]bool, error) {
	var dates []time.Time
	err := scope.Where("date BETWEEN ? AND ?", window.Start(), window.End()).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d.UTC().Format(models.DateLayout)] = true
	}
	return set, nil
}

// insertMissing batch-inserts rows, ignoring conflicts from concurrent
// seeders, and reports how many rows were actually written.
func insertMissing(tx *gorm.DB, rows interface{}, n int) (int, error) {
	if n == 0 {
		return 0, nil
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, seedBatchSize)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func stockRow(symbol string, c marketdata.Candle) models.Stock {
	return models.Stock{
		Symbol:          symbol,
		Date:            c.Date,
		Last:            c.Last,
		Open:            c.Open,
		High:            c.High,
		Low:             c.Low,
		Volume:          c.Volume,
		PredClose:       c.PredClose,
		ConfidenceUpper: c.ConfidenceUpper,
		ConfidenceLower: c.ConfidenceLower,
	}
}

func indexRow(c marketdata.Candle) models.IndexRecord {
	return models.IndexRecord{
		Date:            c.Date,
		Last:            c.Last,
		Open:            c.Open,
		High:            c.High,
		Low:             c.Low,
		Volume:          c.Volume,
		PredClose:       c.PredClose,
		ConfidenceUpper: c.ConfidenceUpper,
		ConfidenceLower: c.ConfidenceLower,
	}
}
