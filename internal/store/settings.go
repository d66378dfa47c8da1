package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"
)

// Setting keys.
const (
	settingJWTSecret  = "jwt_secret"
	settingCurrentDay = "current_day"
)

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// GetJWTSecret retrieves the JWT secret from the database.
// If no secret exists, it generates one, stores it, and returns it.
// Uses INSERT OR IGNORE + re-SELECT to avoid TOCTOU race on concurrent startup.
func GetJWTSecret(ctx context.Context, db *sql.DB) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`,
		settingJWTSecret, hex.EncodeToString(buf),
	)
	if err != nil {
		return "", fmt.Errorf("storing %s: %w", settingJWTSecret, err)
	}

	// Always read back (either our insert or the existing value).
	secret, _, err := getSetting(ctx, db, settingJWTSecret)
	return secret, err
}

// CurrentDay returns how many days have been simulated so far.
func CurrentDay(ctx context.Context, db *sql.DB) (int, error) {
	return currentDay(ctx, db)
}

func currentDay(ctx context.Context, q queryRower) (int, error) {
	value, ok, err := getSetting(ctx, q, settingCurrentDay)
	if err != nil || !ok {
		return 0, err
	}

	day, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s %q: %w", settingCurrentDay, value, err)
	}
	return day, nil
}

func setCurrentDay(ctx context.Context, e execer, day int) error {
	return setSetting(ctx, e, settingCurrentDay, strconv.Itoa(day))
}

func getSetting(ctx context.Context, q queryRower, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying %s: %w", key, err)
	}
	return value, true, nil
}

func setSetting(ctx context.Context, e execer, key, value string) error {
	_, err := e.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}
