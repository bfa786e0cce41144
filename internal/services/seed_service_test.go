package services

import (
	"math/rand/v2"
	"testing"
	"time"

	"gorm.io/gorm"

	"nomix/internal/marketdata"
	"nomix/internal/models"
	"nomix/internal/testutil"
)

const testCatalogYAML = `
companies:
  - symbol: ENGRO
    name: Engro Corporation
    sector: Fertilizer
    base_price: 285.50
  - symbol: LUCK
    name: Lucky Cement
    sector: Cement
    base_price: 765
`

func newTestSeedService(t *testing.T, db *gorm.DB) SeedServicer {
	t.Helper()

	catalog, err := marketdata.ParseCatalog([]byte(testCatalogYAML))
	if err != nil {
		t.Fatalf("failed to parse catalog: %v", err)
	}
	stocks, err := marketdata.NewRandomWalk(marketdata.StockBounds, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("failed to create stock walk: %v", err)
	}
	index, err := marketdata.NewRandomWalk(marketdata.IndexBounds, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("failed to create index walk: %v", err)
	}
	return NewSeedService(db, catalog, stocks, index)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestSeedFull(t *testing.T) {
	t.Run("populates_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSeedService(t, db)

		result, err := svc.SeedFull(testDay)
		testutil.AssertNoError(t, err)

		if result.CompaniesCreated != 2 {
			t.Errorf("expected 2 companies created, got %d", result.CompaniesCreated)
		}
		if result.StocksCreated != 2*41 {
			t.Errorf("expected %d stocks created, got %d", 2*41, result.StocksCreated)
		}
		if result.IndexCreated != 41 {
			t.Errorf("expected 41 index rows created, got %d", result.IndexCreated)
		}
		if n := countRows(t, db, &models.Stock{}); n != 2*41 {
			t.Errorf("expected %d stock rows in db, got %d", 2*41, n)
		}
		if n := countRows(t, db, &models.IndexRecord{}); n != 41 {
			t.Errorf("expected 41 index rows in db, got %d", n)
		}
	})

	t.Run("rows_cover_expected_dates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSeedService(t, db)

		_, err := svc.SeedFull(testDay)
		testutil.AssertNoError(t, err)

		market := NewMarketService(db)
		history, err := market.GetCompanyHistory("ENGRO")
		testutil.AssertNoError(t, err)
		if len(history) != 41 {
			t.Fatalf("expected 41 rows, got %d", len(history))
		}
		if !history[0].Date.Equal(testDay.AddDate(0, 0, -30)) {
			t.Errorf("expected first date %v, got %v", testDay.AddDate(0, 0, -30), history[0].Date)
		}
		if !history[40].Date.Equal(testDay.AddDate(0, 0, 10)) {
			t.Errorf("expected last date %v, got %v", testDay.AddDate(0, 0, 10), history[40].Date)
		}

		for _, row := range history {
			if row.Last <= 0 || row.Volume < 100_000 || row.Volume >= 5_000_000 {
				t.Errorf("implausible row %+v", row)
			}
			if row.ConfidenceLower > row.PredClose || row.PredClose > row.ConfidenceUpper {
				t.Errorf("prediction outside its band: %+v", row)
			}
		}

		quotes, err := market.GetStocks(testDay)
		testutil.AssertNoError(t, err)
		if len(quotes) != 2 {
			t.Errorf("expected one quote per company, got %d", len(quotes))
		}
		_, err = market.GetIndex(testDay)
		testutil.AssertNoError(t, err)
	})

	t.Run("second_run_creates_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSeedService(t, db)

		_, err := svc.SeedFull(testDay)
		testutil.AssertNoError(t, err)

		result, err := svc.SeedFull(testDay)
		testutil.AssertNoError(t, err)

		if result.CompaniesCreated != 0 || result.StocksCreated != 0 || result.IndexCreated != 0 {
			t.Errorf("expected zero counts on repeat, got %+v", result)
		}
		if n := countRows(t, db, &models.Stock{}); n != 2*41 {
			t.Errorf("expected %d stock rows, got %d", 2*41, n)
		}
	})

	t.Run("existing_rows_are_kept", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSeedService(t, db)

		testutil.CreateTestCompany(t, db, "ENGRO")
		testutil.CreateTestStock(t, db, "ENGRO", testDay, 1.23)
		testutil.CreateTestIndex(t, db, testDay, 4.56)

		result, err := svc.SeedFull(testDay)
		testutil.AssertNoError(t, err)

		if result.CompaniesCreated != 1 {
			t.Errorf("expected only LUCK to be created, got %d", result.CompaniesCreated)
		}
		if result.StocksCreated != 2*41-1 {
			t.Errorf("expected %d stocks created, got %d", 2*41-1, result.StocksCreated)
		}
		if result.IndexCreated != 40 {
			t.Errorf("expected 40 index rows created, got %d", result.IndexCreated)
		}

		var kept models.Stock
		err = db.Where("symbol = ? AND date = ?", "ENGRO", testDay).First(&kept).Error
		testutil.AssertNoError(t, err)
		testutil.AssertClose(t, kept.Last, 1.23, 1e-9)

		var company models.Company
		testutil.AssertNoError(t, db.First(&company, "symbol = ?", "ENGRO").Error)
		if company.Name != "ENGRO Test Company" {
			t.Errorf("existing company was overwritten: %q", company.Name)
		}
	})
}

func TestSeedWeek(t *testing.T) {
	t.Run("seven_days", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSeedService(t, db)

		result, err := svc.SeedWeek(testDay)
		testutil.AssertNoError(t, err)

		if result.StocksCreated != 2*7 || result.IndexCreated != 7 {
			t.Errorf("unexpected counts %+v", result)
		}
	})

	t.Run("after_full_only_adds_new_dates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestSeedService(t, db)

		_, err := svc.SeedFull(testDay)
		testutil.AssertNoError(t, err)

		// Full covers through +10, so a week starting at +8 adds +11..+14.
		result, err := svc.SeedWeek(testDay.AddDate(0, 0, 8))
		testutil.AssertNoError(t, err)

		if result.CompaniesCreated != 0 {
			t.Errorf("expected no new companies, got %d", result.CompaniesCreated)
		}
		if result.StocksCreated != 2*4 {
			t.Errorf("expected %d stocks created, got %d", 2*4, result.StocksCreated)
		}
		if result.IndexCreated != 4 {
			t.Errorf("expected 4 index rows created, got %d", result.IndexCreated)
		}
	})
}

func TestSeedInvalidWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestSeedService(t, db)

	_, err := svc.Seed(marketdata.Window{Anchor: testDay, From: 3, To: 1})
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	if n := countRows(t, db, &models.Company{}); n != 0 {
		t.Errorf("expected no companies after rejected window, got %d", n)
	}
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestSeedService(t, db)

	// Companies and stocks are written before the index step fails.
	if err := db.Migrator().DropTable(&models.IndexRecord{}); err != nil {
		t.Fatalf("failed to drop index table: %v", err)
	}

	result, err := svc.SeedFull(testDay)
	testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	if result != nil {
		t.Errorf("expected no result on failure, got %+v", result)
	}

	if n := countRows(t, db, &models.Company{}); n != 0 {
		t.Errorf("expected companies to be rolled back, got %d", n)
	}
	if n := countRows(t, db, &models.Stock{}); n != 0 {
		t.Errorf("expected stocks to be rolled back, got %d", n)
	}
}

func TestSeedDatesAreDays(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestSeedService(t, db)

	// A mid-afternoon anchor in another zone still seeds calendar days.
	anchor := time.Date(2026, 10, 19, 15, 30, 0, 0, time.FixedZone("PKT", 5*3600))
	_, err := svc.SeedWeek(anchor)
	testutil.AssertNoError(t, err)

	quotes, err := NewMarketService(db).GetStocks(testDay)
	testutil.AssertNoError(t, err)
	if len(quotes) != 2 {
		t.Errorf("expected 2 quotes on %s, got %d", testDay.Format(models.DateLayout), len(quotes))
	}
}
