package services

import (
	"testing"
	"time"

	"nomix/internal/models"
	"nomix/internal/testutil"
)

var testDay = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func TestGetStocks(t *testing.T) {
	t.Run("returns_only_rows_for_the_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		testutil.CreateTestCompany(t, db, "LUCK")
		testutil.CreateTestCompany(t, db, "ENGRO")
		testutil.CreateTestStock(t, db, "LUCK", testDay, 760)
		testutil.CreateTestStock(t, db, "ENGRO", testDay, 285)
		testutil.CreateTestStock(t, db, "ENGRO", testDay.AddDate(0, 0, -1), 280)
		testutil.CreateTestStock(t, db, "ENGRO", testDay.AddDate(0, 0, 1), 290)

		quotes, err := svc.GetStocks(testDay)
		testutil.AssertNoError(t, err)

		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %d", len(quotes))
		}
		if quotes[0].Symbol != "ENGRO" || quotes[1].Symbol != "LUCK" {
			t.Errorf("expected quotes ordered by symbol, got %s, %s", quotes[0].Symbol, quotes[1].Symbol)
		}
		for _, q := range quotes {
			if !q.Date.Equal(testDay) {
				t.Errorf("quote %s has date %v, want %v", q.Symbol, q.Date, testDay)
			}
		}
		if quotes[0].Name != "ENGRO Test Company" {
			t.Errorf("expected joined company name, got %q", quotes[0].Name)
		}
		testutil.AssertClose(t, quotes[0].Last, 285, 1e-9)
	})

	t.Run("time_of_day_is_ignored", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		testutil.CreateTestCompany(t, db, "MCB")
		testutil.CreateTestStock(t, db, "MCB", testDay, 210)

		quotes, err := svc.GetStocks(testDay.Add(17 * time.Hour))
		testutil.AssertNoError(t, err)
		if len(quotes) != 1 {
			t.Errorf("expected 1 quote, got %d", len(quotes))
		}
	})

	t.Run("empty_for_missing_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		quotes, err := svc.GetStocks(testDay)
		testutil.AssertNoError(t, err)
		if quotes == nil || len(quotes) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", quotes)
		}
	})
}

func TestGetIndex(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		testutil.CreateTestIndex(t, db, testDay, 65000)
		testutil.CreateTestIndex(t, db, testDay.AddDate(0, 0, 1), 65500)

		record, err := svc.GetIndex(testDay)
		testutil.AssertNoError(t, err)
		testutil.AssertClose(t, record.Last, 65000, 1e-9)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		_, err := svc.GetIndex(testDay)
		testutil.AssertAppError(t, err, "INDEX_NOT_FOUND")
	})
}

func TestGetCompanyHistory(t *testing.T) {
	t.Run("ascending_by_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		testutil.CreateTestCompany(t, db, "OGDC")
		testutil.CreateTestCompany(t, db, "PSO")
		testutil.CreateTestStock(t, db, "OGDC", testDay.AddDate(0, 0, 2), 120)
		testutil.CreateTestStock(t, db, "OGDC", testDay, 118)
		testutil.CreateTestStock(t, db, "OGDC", testDay.AddDate(0, 0, 1), 119)
		testutil.CreateTestStock(t, db, "PSO", testDay, 165)

		history, err := svc.GetCompanyHistory("ogdc")
		testutil.AssertNoError(t, err)

		if len(history) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(history))
		}
		for i := 1; i < len(history); i++ {
			if !history[i].Date.After(history[i-1].Date) {
				t.Errorf("history not ascending at %d: %v then %v", i, history[i-1].Date, history[i].Date)
			}
		}
	})

	t.Run("empty_for_unknown_symbol", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		history, err := svc.GetCompanyHistory("NOPE")
		testutil.AssertNoError(t, err)
		if history == nil || len(history) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", history)
		}
	})
}

func TestGetCompanyProfile(t *testing.T) {
	t.Run("with_latest_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		testutil.CreateTestCompany(t, db, "HUBC")
		testutil.CreateTestStock(t, db, "HUBC", testDay, 121)
		testutil.CreateTestStock(t, db, "HUBC", testDay.AddDate(0, 0, 5), 130)
		testutil.CreateTestStock(t, db, "HUBC", testDay.AddDate(0, 0, -5), 110)

		profile, err := svc.GetCompanyProfile("HUBC")
		testutil.AssertNoError(t, err)

		if profile.Company.Symbol != "HUBC" {
			t.Errorf("expected HUBC, got %s", profile.Company.Symbol)
		}
		if profile.Latest == nil {
			t.Fatal("expected latest row")
		}
		if !profile.Latest.Date.Equal(testDay.AddDate(0, 0, 5)) {
			t.Errorf("expected most recent date, got %v", profile.Latest.Date)
		}
	})

	t.Run("company_without_rows", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		testutil.CreateTestCompany(t, db, "SYS")

		profile, err := svc.GetCompanyProfile("sys")
		testutil.AssertNoError(t, err)
		if profile.Latest != nil {
			t.Errorf("expected nil latest, got %+v", profile.Latest)
		}
	})

	t.Run("unknown_company", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewMarketService(db)

		_, err := svc.GetCompanyProfile("NOPE")
		testutil.AssertAppError(t, err, "COMPANY_NOT_FOUND")
	})
}

func TestListCompanies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewMarketService(db)

	testutil.CreateTestCompany(t, db, "TRG")
	testutil.CreateTestCompany(t, db, "FFC")

	companies, err := svc.ListCompanies()
	testutil.AssertNoError(t, err)

	want := []string{"FFC", "TRG"}
	if len(companies) != len(want) {
		t.Fatalf("expected %d companies, got %d", len(want), len(companies))
	}
	for i, c := range companies {
		if c.Symbol != want[i] {
			t.Errorf("company %d: expected %s, got %s", i, want[i], c.Symbol)
		}
	}
}

func TestStockUniqueness(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.CreateTestCompany(t, db, "ENGRO")
	testutil.CreateTestStock(t, db, "ENGRO", testDay, 285)

	dup := models.Stock{Symbol: "ENGRO", Date: testDay, Last: 1}
	if err := db.Create(&dup).Error; err == nil {
		t.Error("expected duplicate (symbol, date) insert to fail")
	}
}
