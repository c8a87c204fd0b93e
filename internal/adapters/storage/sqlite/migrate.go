package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migration is one NNN_name.sql file.
type migration struct {
	version int
	name    string
	sql     string
}

// migrator applies embedded migrations and tracks the applied version in
// a single-row schema_version table.
type migrator struct {
	db     *sql.DB
	fsys   fs.FS
	logger *slog.Logger
}

func newMigrator(db *sql.DB, logger *slog.Logger) (*migrator, error) {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("accessing embedded migrations: %w", err)
	}

	return &migrator{db: db, fsys: sub, logger: logger}, nil
}

func (m *migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`)

	return err
}

// currentVersion returns 0 for a fresh database.
func (m *migrator) currentVersion(ctx context.Context) (int, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, fmt.Errorf("ensuring schema_version table: %w", err)
	}

	var version int

	err := m.db.QueryRowContext(ctx, `SELECT version FROM schema_version`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}

	return version, nil
}

// load reads and orders the migration files.
func (m *migrator) load() ([]migration, error) {
	entries, err := fs.ReadDir(m.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory: %w", err)
	}

	var out []migration

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		prefix, rest, ok := strings.Cut(entry.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("invalid migration filename %s (expected NNN_name.sql)", entry.Name())
		}

		version, err := strconv.Atoi(prefix)
		if err != nil || version < 1 {
			return nil, fmt.Errorf("invalid version in migration filename %s", entry.Name())
		}

		content, err := fs.ReadFile(m.fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		out = append(out, migration{
			version: version,
			name:    strings.TrimSuffix(rest, ".sql"),
			sql:     string(content),
		})
	}

	slices.SortFunc(out, func(a, b migration) int { return a.version - b.version })

	for i := 1; i < len(out); i++ {
		if out[i].version == out[i-1].version {
			return nil, fmt.Errorf("duplicate migration version %d", out[i].version)
		}
	}

	return out, nil
}

// apply runs every migration newer than the current version, each in its
// own transaction together with the version bump. It returns the number
// applied.
func (m *migrator) apply(ctx context.Context) (int, error) {
	current, err := m.currentVersion(ctx)
	if err != nil {
		return 0, err
	}

	all, err := m.load()
	if err != nil {
		return 0, err
	}

	if len(all) == 0 {
		return 0, nil
	}

	latest := all[len(all)-1].version
	if current > latest {
		return 0, fmt.Errorf("database schema version %d is newer than supported version %d", current, latest)
	}

	applied := 0

	for _, mig := range all {
		if mig.version <= current {
			continue
		}

		if err := m.applyOne(ctx, mig); err != nil {
			return applied, err
		}

		applied++

		m.logger.InfoContext(ctx, "applied migration",
			slog.Int("version", mig.version),
			slog.String("name", mig.name),
		)
	}

	return applied, nil
}

func (m *migrator) applyOne(ctx context.Context, mig migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", mig.version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, mig.sql); err != nil {
		return fmt.Errorf("applying migration %d (%s): %w", mig.version, mig.name, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
		return fmt.Errorf("clearing schema version: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, mig.version); err != nil {
		return fmt.Errorf("setting schema version %d: %w", mig.version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", mig.version, err)
	}

	return nil
}
