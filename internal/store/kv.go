// Package store provides SQLite-backed key-value persistence for devbot.
//
// Every devbot record (day counters, the progress summary, snippets,
// templates) is a UTF-8 text blob stored under a string key. The KV
// interface is the storage port the rest of the application depends on;
// *DB satisfies it, and tests substitute an in-memory map.
package store

import (
	"database/sql"
	"time"
)

// KV is the abstract key-value storage port.
type KV interface {
	// Get returns the value for key. The second return is false when the
	// key does not exist.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}

// Get returns the stored value for key, or ok=false if absent.
func (db *DB) Get(key string) (string, bool, error) {
	var value string
	err := db.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set upserts value under key.
func (db *DB) Set(key, value string) error {
	_, err := db.conn.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Remove deletes key if present.
func (db *DB) Remove(key string) error {
	_, err := db.conn.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Keys returns all stored keys matching the given SQL LIKE pattern,
// sorted ascending. Used for storage accounting, not by the engine.
func (db *DB) Keys(pattern string) ([]string, error) {
	rows, err := db.conn.Query("SELECT key FROM kv WHERE key LIKE ? ORDER BY key", pattern)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
