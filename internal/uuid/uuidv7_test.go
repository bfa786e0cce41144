package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew(t *testing.T) {
	id := New()
	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a parseable UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if New() == id {
		t.Error("expected two calls to produce different ids")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(New()) {
		t.Error("expected generated id to be valid")
	}
	if IsValid("not-a-uuid") {
		t.Error("expected garbage to be invalid")
	}
	if IsValid("") {
		t.Error("expected empty string to be invalid")
	}
}
