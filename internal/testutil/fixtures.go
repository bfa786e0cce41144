package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"nomix/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of users created by CreateTestUser.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Phone:     "03001234567",
		Password:  string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCompany creates a company with the given symbol.
func CreateTestCompany(t *testing.T, db *gorm.DB, symbol string) *models.Company {
	t.Helper()

	company := &models.Company{
		Symbol: symbol,
		Name:   fmt.Sprintf("%s Test Company", symbol),
		Sector: "Testing",
		Status: models.CompanyStatusCompliant,
	}
	if err := db.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}
	return company
}

// CreateTestStock creates a stock row for symbol on the given day with the
// given last price. The other prices use the generator's fixed offsets.
func CreateTestStock(t *testing.T, db *gorm.DB, symbol string, date time.Time, last float64) *models.Stock {
	t.Helper()

	stock := &models.Stock{
		Symbol:          symbol,
		Date:            models.Day(date),
		Last:            last,
		Open:            last * 0.99,
		High:            last * 1.02,
		Low:             last * 0.98,
		Volume:          1_000_000,
		PredClose:       last * 1.01,
		ConfidenceUpper: last * 1.04,
		ConfidenceLower: last * 0.98,
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestIndex creates an index row for the given day.
func CreateTestIndex(t *testing.T, db *gorm.DB, date time.Time, last float64) *models.IndexRecord {
	t.Helper()

	record := &models.IndexRecord{
		Date:      models.Day(date),
		Last:      last,
		Open:      last * 0.99,
		High:      last * 1.02,
		Low:       last * 0.98,
		Volume:    10_000_000,
		PredClose: last,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test index row: %v", err)
	}
	return record
}

// CreateTestFavorite bookmarks symbol for userID.
func CreateTestFavorite(t *testing.T, db *gorm.DB, userID uint, symbol string) *models.Favorite {
	t.Helper()

	fav := &models.Favorite{UserID: userID, StockSymbol: symbol}
	if err := db.Create(fav).Error; err != nil {
		t.Fatalf("failed to create test favorite: %v", err)
	}
	return fav
}
