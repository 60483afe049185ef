package token

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "creds.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok := s.Get(); ok {
		t.Fatal("expected no credential in a fresh store")
	}

	if err := s.Set("tok-123"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := s.Get()
	if !ok || got != "tok-123" {
		t.Fatalf("expected tok-123, got %q (ok=%v)", got, ok)
	}

	// A second Set replaces the stored value.
	if err := s.Set("tok-456"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	got, ok = s.Get()
	if !ok || got != "tok-456" {
		t.Fatalf("expected tok-456, got %q (ok=%v)", got, ok)
	}

	if err := s.Remove(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := s.Get(); ok {
		t.Fatal("expected credential absent after remove")
	}

	// Removing again is not an error.
	if err := s.Remove(); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestExpiredCredentialIsAbsent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("stale"); err != nil {
		t.Fatalf("set: %v", err)
	}
	_, err := s.db.Exec("UPDATE credentials SET expires_at = ?", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("age credential: %v", err)
	}

	if _, ok := s.Get(); ok {
		t.Fatal("expected expired credential to read as absent")
	}

	// The lapsed row is gone entirely, like an expired cookie.
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM credentials").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 rows after expiry, got %d", count)
	}
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Set("persisted"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s.Close()
	got, ok := s.Get()
	if !ok || got != "persisted" {
		t.Fatalf("expected persisted credential after reopen, got %q (ok=%v)", got, ok)
	}
}
