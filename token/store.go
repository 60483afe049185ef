// Package token persists the bearer credential between runs.
//
// The credential lives in a small sqlite file with an expiry stamped at write
// time. Expiry is enforced by the store on read, the same way a browser cookie
// lapses: an expired credential is simply absent. The store never inspects the
// token itself; the remote API decides whether it is still valid.
package token

import (
	"database/sql"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// credentialTTL matches the 7-day cookie window the API expects clients to use.
const credentialTTL = 7 * 24 * time.Hour

const credentialName = "auth_token"

const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at TIMESTAMP NOT NULL
)`

// Store is the credential store. Safe for use from the UI event flow only;
// nothing else touches the file.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the credential database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	// The file holds a live credential; keep it private to the user.
	if err := os.Chmod(path, 0o600); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get returns the stored credential, or ok=false when none is present or the
// stored one has lapsed.
func (s *Store) Get() (string, bool) {
	var (
		value     string
		expiresAt time.Time
	)
	err := s.db.QueryRow(
		"SELECT value, expires_at FROM credentials WHERE name = ?", credentialName,
	).Scan(&value, &expiresAt)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		return "", false
	}
	if time.Now().After(expiresAt) {
		s.Remove()
		return "", false
	}
	return value, true
}

// Set stores the credential with a fresh expiry window.
func (s *Store) Set(token string) error {
	_, err := s.db.Exec(
		`INSERT INTO credentials (name, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		credentialName, token, time.Now().Add(credentialTTL),
	)
	return err
}

// Remove deletes the stored credential. Removing an absent credential is not
// an error.
func (s *Store) Remove() error {
	_, err := s.db.Exec("DELETE FROM credentials WHERE name = ?", credentialName)
	return err
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
