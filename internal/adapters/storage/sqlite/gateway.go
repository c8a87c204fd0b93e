// Package sqlite persists saved quotes and preferences in a SQLite file.
//
// The Gateway acts as a single writable context: inserts and reflection
// edits are staged in memory and committed together by Save, while deletes
// are resolved immediately and committed in the background.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // database/sql driver

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// ErrClosed is returned by operations on a closed gateway.
var ErrClosed = errors.New("sqlite gateway is closed")

const (
	healthName     = "sqlite"
	errorsBuffer   = 16
	timeLayout     = time.RFC3339Nano
	savedQuoteKind = "saved quote"
)

type changeKind int

const (
	changeInsert changeKind = iota + 1
	changeUpdate
)

type pendingChange struct {
	kind  changeKind
	quote domain.SavedQuote
}

// Gateway implements ports.SavedQuoteGateway and ports.PreferenceStore.
type Gateway struct {
	db      *sql.DB
	logger  *slog.Logger
	watcher *fileWatcher
	now     func() time.Time

	mu      sync.Mutex
	pending map[string]*pendingChange
	order   []string
	lastErr error
	closed  bool

	subMu       sync.Mutex
	subscribers map[uint64]func(ports.ChangeEvent)
	nextSub     uint64

	deletes sync.WaitGroup
	errs    chan error
}

// Open creates the database directory and file if needed, applies pending
// migrations and starts the external change watcher when configured.
// Failures are loadingError values.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Gateway, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "sqlite.Gateway"))

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o700); err != nil {
		return nil, domain.NewLoadingError(fmt.Sprintf("creating database directory: %v", err))
	}

	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, domain.NewLoadingError(fmt.Sprintf("opening database: %v", err))
	}

	// A single connection serializes writers and keeps the background
	// delete from racing a Save for the file lock.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, domain.NewLoadingError(fmt.Sprintf("connecting to database: %v", err))
	}

	m, err := newMigrator(db, logger)
	if err != nil {
		_ = db.Close()

		return nil, domain.NewLoadingError(err.Error())
	}

	if _, err := m.apply(ctx); err != nil {
		_ = db.Close()

		return nil, domain.NewLoadingError(fmt.Sprintf("migrating database: %v", err))
	}

	g := &Gateway{
		db:          db,
		logger:      logger,
		now:         time.Now,
		pending:     make(map[string]*pendingChange),
		subscribers: make(map[uint64]func(ports.ChangeEvent)),
		errs:        make(chan error, errorsBuffer),
	}

	if cfg.WatchExternal {
		w, err := newFileWatcher(cfg.Path, cfg.WatchDebounce, g.externalChange, logger)
		if err != nil {
			_ = db.Close()

			return nil, domain.NewLoadingError(err.Error())
		}

		g.watcher = w
		w.start(context.WithoutCancel(ctx))
	}

	logger.InfoContext(ctx, "journal database ready",
		slog.String("path", cfg.Path),
		slog.Bool("watch_external", cfg.WatchExternal),
	)

	return g, nil
}

func dsn(cfg config.StorageConfig) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
}

// Close stops the watcher, waits for in-flight deletes and closes the
// database.
func (g *Gateway) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()

		return nil
	}

	g.closed = true
	g.mu.Unlock()

	var errs []error

	if g.watcher != nil {
		errs = append(errs, g.watcher.close())
	}

	g.deletes.Wait()

	errs = append(errs, g.db.Close())

	return errors.Join(errs...)
}

// SchemaVersion returns the applied migration version.
func (g *Gateway) SchemaVersion(ctx context.Context) (int, error) {
	m, err := newMigrator(g.db, g.logger)
	if err != nil {
		return 0, err
	}

	return m.currentVersion(ctx)
}

// Errors delivers background delete failures. Failures are dropped when
// nobody drains the channel; they are always logged.
func (g *Gateway) Errors() <-chan error {
	return g.errs
}

// Insert implements ports.SavedQuoteGateway.
func (g *Gateway) Insert(ctx context.Context, quote *domain.SavedQuote) error {
	if quote == nil {
		return domain.NewValidationError("quote", "must not be nil")
	}

	if err := domain.ValidateReflection(quote.Reflection); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}

	if quote.ID == "" {
		quote.ID = uuid.NewString()
	}

	now := g.now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	g.stage(&pendingChange{kind: changeInsert, quote: *quote})

	g.logger.Log(ctx, logging.LevelTrace, "staged saved quote insert",
		slog.String("saved_quote_id", quote.ID))

	return nil
}

// UpdateReflection implements ports.SavedQuoteGateway.
func (g *Gateway) UpdateReflection(ctx context.Context, id, reflection string) error {
	if err := domain.ValidateReflection(reflection); err != nil {
		return err
	}

	if g.updateStaged(id, reflection) {
		return nil
	}

	current, err := g.Get(ctx, id)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ErrClosed
	}

	current.Reflection = reflection
	current.UpdatedAt = g.now().UTC()

	g.stage(&pendingChange{kind: changeUpdate, quote: *current})

	return nil
}

// updateStaged edits a change that is already pending and reports whether
// there was one.
func (g *Gateway) updateStaged(id, reflection string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	change, ok := g.pending[id]
	if !ok {
		return false
	}

	change.quote.Reflection = reflection
	change.quote.UpdatedAt = g.now().UTC()

	return true
}

// stage must be called with g.mu held.
func (g *Gateway) stage(change *pendingChange) {
	id := change.quote.ID
	if _, ok := g.pending[id]; !ok {
		g.order = append(g.order, id)
	}

	g.pending[id] = change
}

// unstage must be called with g.mu held.
func (g *Gateway) unstage(id string) {
	if _, ok := g.pending[id]; !ok {
		return
	}

	delete(g.pending, id)
	g.order = slices.DeleteFunc(g.order, func(v string) bool { return v == id })
}

// HasChanges implements ports.SavedQuoteGateway.
func (g *Gateway) HasChanges() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.pending) > 0
}

// LastError implements ports.SavedQuoteGateway. It stays set until a later
// Save succeeds.
func (g *Gateway) LastError() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.lastErr
}

// Save implements ports.SavedQuoteGateway. Staged changes survive a failed
// commit so the caller can retry.
func (g *Gateway) Save(ctx context.Context) error {
	g.mu.Lock()

	if g.closed {
		g.mu.Unlock()

		return ErrClosed
	}

	if len(g.pending) == 0 {
		g.mu.Unlock()

		return nil
	}

	ids := slices.Clone(g.order)

	err := g.commit(ctx, ids)
	if err != nil {
		g.lastErr = domain.NewSaveError(err.Error())
		g.mu.Unlock()

		g.logger.ErrorContext(ctx, "saving journal changes failed",
			slog.Any("error", err),
			slog.Int("pending", len(ids)),
		)

		return g.lastErr
	}

	clear(g.pending)
	g.order = g.order[:0]
	g.lastErr = nil
	g.mu.Unlock()

	g.logger.DebugContext(ctx, "journal changes saved", slog.Int("count", len(ids)))

	g.publish(ports.ChangeEvent{Source: ports.ChangeCommit, IDs: ids})

	return nil
}

// commit must be called with g.mu held.
func (g *Gateway) commit(ctx context.Context, ids []string) error {
	g.markSelfWrite()
	defer g.markSelfWrite()

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, id := range ids {
		change := g.pending[id]
		q := change.quote

		switch change.kind {
		case changeInsert:
			_, err = tx.ExecContext(ctx, `
				INSERT INTO saved_quotes
					(id, quote_content, quote_author, reflection, content_folded, author_folded, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				q.ID, q.QuoteContent, q.QuoteAuthor, q.Reflection,
				fold(q.QuoteContent), fold(q.QuoteAuthor),
				q.CreatedAt.Format(timeLayout), q.UpdatedAt.Format(timeLayout),
			)
		case changeUpdate:
			_, err = tx.ExecContext(ctx,
				`UPDATE saved_quotes SET reflection = ?, updated_at = ? WHERE id = ?`,
				q.Reflection, q.UpdatedAt.Format(timeLayout), q.ID,
			)
		}

		if err != nil {
			return fmt.Errorf("writing %s %s: %w", savedQuoteKind, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Delete implements ports.SavedQuoteGateway. A record that was only staged
// is dropped without touching the database.
func (g *Gateway) Delete(ctx context.Context, id string) (*ports.DeleteTask, error) {
	g.mu.Lock()

	if g.closed {
		g.mu.Unlock()

		return nil, ErrClosed
	}

	if change, ok := g.pending[id]; ok && change.kind == changeInsert {
		g.unstage(id)
		g.mu.Unlock()

		return ports.CompletedDeleteTask(id, nil), nil
	}

	g.mu.Unlock()

	if _, err := g.Get(ctx, id); err != nil {
		return nil, err
	}

	g.mu.Lock()

	if g.closed {
		g.mu.Unlock()

		return nil, ErrClosed
	}

	g.unstage(id)
	g.deletes.Add(1)
	g.mu.Unlock()

	task := ports.NewDeleteTask(id)

	go g.commitDelete(context.WithoutCancel(ctx), task)

	return task, nil
}

func (g *Gateway) commitDelete(ctx context.Context, task *ports.DeleteTask) {
	defer g.deletes.Done()

	g.markSelfWrite()
	defer g.markSelfWrite()

	logger := g.logger

	_, err := g.db.ExecContext(ctx, `DELETE FROM saved_quotes WHERE id = ?`, task.ID)
	if err != nil {
		err = domain.NewSaveError(fmt.Sprintf("deleting %s %s: %v", savedQuoteKind, task.ID, err))

		logger.ErrorContext(ctx, "background delete failed",
			slog.String("saved_quote_id", task.ID),
			slog.Any("error", err),
		)

		select {
		case g.errs <- err:
		default:
			logger.WarnContext(ctx, "delete error channel full, dropping error")
		}

		task.Complete(err)

		return
	}

	logger.DebugContext(ctx, "saved quote deleted", slog.String("saved_quote_id", task.ID))

	g.publish(ports.ChangeEvent{Source: ports.ChangeDelete, IDs: []string{task.ID}})
	task.Complete(nil)
}

// Get implements ports.SavedQuoteReader.
func (g *Gateway) Get(ctx context.Context, id string) (*domain.SavedQuote, error) {
	row := g.db.QueryRowContext(ctx, `
		SELECT id, quote_content, quote_author, reflection, created_at, updated_at
		FROM saved_quotes WHERE id = ?`, id)

	q, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(savedQuoteKind, id)
	}

	if err != nil {
		return nil, storeError("get", err)
	}

	return q, nil
}

// Fetch implements ports.SavedQuoteReader. Results are ordered by author,
// then content, then id.
func (g *Gateway) Fetch(ctx context.Context, query domain.SearchQuery) ([]domain.SavedQuote, error) {
	stmt := `SELECT id, quote_content, quote_author, reflection, created_at, updated_at FROM saved_quotes`

	var args []any

	if !query.IsEmpty() {
		pattern := containsPattern(query.Text)
		stmt += ` WHERE author_folded LIKE ? ESCAPE '\' OR content_folded LIKE ? ESCAPE '\'`
		args = append(args, pattern, pattern)
	}

	stmt += ` ORDER BY quote_author, quote_content, id`

	rows, err := g.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, storeError("fetch", err)
	}
	defer rows.Close()

	quotes := []domain.SavedQuote{}

	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, storeError("fetch", err)
		}

		quotes = append(quotes, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("fetch", err)
	}

	return quotes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(s scanner) (*domain.SavedQuote, error) {
	var (
		q                  domain.SavedQuote
		created, updated string
	)

	if err := s.Scan(&q.ID, &q.QuoteContent, &q.QuoteAuthor, &q.Reflection, &created, &updated); err != nil {
		return nil, err
	}

	var err error

	if q.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	if q.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &q, nil
}

func storeError(op string, err error) error {
	return domain.NewUnavailableError(healthName, fmt.Sprintf("%s: %v", op, err))
}

// Subscribe implements ports.SavedQuoteGateway. Callbacks run on the
// goroutine that completed the change and must not block.
func (g *Gateway) Subscribe(fn func(ports.ChangeEvent)) func() {
	g.subMu.Lock()
	defer g.subMu.Unlock()

	id := g.nextSub
	g.nextSub++
	g.subscribers[id] = fn

	return func() {
		g.subMu.Lock()
		defer g.subMu.Unlock()

		delete(g.subscribers, id)
	}
}

func (g *Gateway) publish(event ports.ChangeEvent) {
	g.subMu.Lock()
	fns := slices.Collect(maps.Values(g.subscribers))
	g.subMu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

func (g *Gateway) externalChange() {
	g.publish(ports.ChangeEvent{Source: ports.ChangeExternal})
}

func (g *Gateway) markSelfWrite() {
	if g.watcher != nil {
		g.watcher.markSelfWrite()
	}
}

// Name implements ports.HealthChecker.
func (g *Gateway) Name() string {
	return healthName
}

// Check implements ports.HealthChecker.
func (g *Gateway) Check(ctx context.Context) error {
	return g.db.PingContext(ctx)
}
