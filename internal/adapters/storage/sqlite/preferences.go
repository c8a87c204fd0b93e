package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Preference implements ports.PreferenceStore.
func (g *Gateway) Preference(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := g.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, storeError(fmt.Sprintf("preference %s", key), err)
	}

	return value, true, nil
}

// SetPreference implements ports.PreferenceStore. Preferences are written
// immediately and do not go through Save.
func (g *Gateway) SetPreference(ctx context.Context, key, value string) error {
	g.markSelfWrite()
	defer g.markSelfWrite()

	_, err := g.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, g.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return storeError(fmt.Sprintf("set preference %s", key), err)
	}

	return nil
}
