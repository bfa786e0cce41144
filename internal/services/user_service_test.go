package services

import (
	"testing"

	"nomix/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Ayesha", "Khan", "ayesha@example.com", "03001234567", "password123")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.FirstName != "Ayesha" || user.LastName != "Khan" {
			t.Errorf("unexpected name %s %s", user.FirstName, user.LastName)
		}
		if user.Phone != "03001234567" {
			t.Errorf("expected phone to be stored, got %q", user.Phone)
		}
		if user.Password == "password123" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("A", "B", "dup@example.com", "", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("C", "D", "DUP@example.com", "", "password456")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("empty_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("A", "B", "  ", "", "password123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("A", "B", "test@example.com", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("email_normalized_to_lowercase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("A", "B", "Ayesha@EXAMPLE.COM", "", "password123")
		testutil.AssertNoError(t, err)

		if user.Email != "ayesha@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})
}

func TestGetUserByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		user, err := svc.GetUserByID(created.ID)
		testutil.AssertNoError(t, err)

		if user.Email != created.Email {
			t.Errorf("expected email %s, got %s", created.Email, user.Email)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByID(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("signup_then_login_returns_same_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("Bilal", "Ahmed", "bilal@example.com", "", "s3cret-pass")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("Bilal@Example.com", "s3cret-pass")
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %d, got %d", created.ID, user.ID)
		}
		if user.FirstName != "Bilal" {
			t.Errorf("expected first name Bilal, got %s", user.FirstName)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.AttemptLogin(user.Email, "wrong-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("nobody@example.com", testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user := testutil.CreateTestUser(t, db)
	if !svc.VerifyPassword(user, testutil.TestPassword) {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "nope") {
		t.Error("expected wrong password to fail")
	}
}
