package app

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// SavedQuotesSnapshot is a consistent copy of the store's published fields.
type SavedQuotesSnapshot struct {
	Quotes   []domain.SavedQuote
	Filtered []domain.SavedQuote
	Query    string
	State    domain.FetchStatus
	Err      error
	HasError bool
}

// SavedQuotesStoreConfig contains the store's dependencies.
type SavedQuotesStoreConfig struct {
	Gateway ports.SavedQuoteGateway
	Logger  *slog.Logger
}

// SavedQuotesStore keeps the author-sorted list of saved quotes in sync with
// the gateway. Every gateway change event re-runs the active query.
type SavedQuotesStore struct {
	gateway ports.SavedQuoteGateway
	logger  *slog.Logger

	mu       sync.Mutex
	query    domain.SearchQuery
	saved    []domain.SavedQuote
	filtered []domain.SavedQuote
	state    domain.FetchState[[]domain.SavedQuote]
	hasError bool

	unsubscribe func()
}

// NewSavedQuotesStore creates the store and subscribes it to gateway
// changes. It does not fetch; call TryFetch. Panics if Gateway is nil.
func NewSavedQuotesStore(cfg SavedQuotesStoreConfig) *SavedQuotesStore {
	if cfg.Gateway == nil {
		panic("SavedQuotesStore: Gateway is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &SavedQuotesStore{
		gateway:  cfg.Gateway,
		logger:   logger.With(slog.String("component", "app.SavedQuotesStore")),
		saved:    []domain.SavedQuote{},
		filtered: []domain.SavedQuote{},
	}

	s.unsubscribe = cfg.Gateway.Subscribe(s.onChange)

	return s
}

// Close stops listening for gateway changes.
func (s *SavedQuotesStore) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// TryFetch runs the active query. On failure the previous list is kept.
// The returned snapshot is taken under the same lock as the fetch, so it
// reflects this call's query even when other callers run concurrently.
func (s *SavedQuotesStore) TryFetch(ctx context.Context) (SavedQuotesSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.tryFetchLocked(ctx)

	return s.snapshotLocked(), err
}

// ReFetchAll clears the active filter and fetches everything.
func (s *SavedQuotesStore) ReFetchAll(ctx context.Context) (SavedQuotesSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = domain.SearchQuery{}
	err := s.tryFetchLocked(ctx)

	return s.snapshotLocked(), err
}

// FilterListByAuthorOrQuote applies a case and diacritic insensitive filter
// over author and content. A blank query is the same as ReFetchAll.
func (s *SavedQuotesStore) FilterListByAuthorOrQuote(ctx context.Context, text string) (SavedQuotesSnapshot, error) {
	query := domain.NewSearchQuery(text)
	if query.IsEmpty() {
		return s.ReFetchAll(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	err := s.fetchFilteredLocked(ctx)

	return s.snapshotLocked(), err
}

// FetchFilteredResults re-runs the active filter. An empty result is a
// success with an empty list.
func (s *SavedQuotesStore) FetchFilteredResults(ctx context.Context) (SavedQuotesSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fetchFilteredLocked(ctx)

	return s.snapshotLocked(), err
}

// DeleteQuote removes the given positions from the in-memory list and
// returns the removed records. It does not touch the gateway. Out of range
// offsets are ignored.
func (s *SavedQuotesStore) DeleteQuote(offsets []int) []domain.SavedQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		if o >= 0 && o < len(s.saved) {
			drop[o] = true
		}
	}

	if len(drop) == 0 {
		return nil
	}

	removed := make([]domain.SavedQuote, 0, len(drop))
	kept := make([]domain.SavedQuote, 0, len(s.saved)-len(drop))

	for i, q := range s.saved {
		if drop[i] {
			removed = append(removed, q)

			continue
		}

		kept = append(kept, q)
	}

	s.saved = kept

	if s.state.Status == domain.StatusSuccess {
		s.state = domain.Succeeded(slices.Clone(kept))
	}

	return removed
}

// Snapshot returns the current state.
func (s *SavedQuotesStore) Snapshot() SavedQuotesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *SavedQuotesStore) snapshotLocked() SavedQuotesSnapshot {
	return SavedQuotesSnapshot{
		Quotes:   slices.Clone(s.saved),
		Filtered: slices.Clone(s.filtered),
		Query:    s.query.Text,
		State:    s.state.Status,
		Err:      s.state.Err,
		HasError: s.hasError,
	}
}

// DismissError clears the error flag and returns the resulting state.
func (s *SavedQuotesStore) DismissError() SavedQuotesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hasError = false

	return s.snapshotLocked()
}

func (s *SavedQuotesStore) tryFetchLocked(ctx context.Context) error {
	if !s.query.IsEmpty() {
		return s.fetchFilteredLocked(ctx)
	}

	s.state = domain.Loading[[]domain.SavedQuote]()

	quotes, err := s.gateway.Fetch(ctx, s.query)
	if err != nil {
		s.failLocked(ctx, err)

		return err
	}

	if quotes == nil {
		quotes = []domain.SavedQuote{}
	}

	s.saved = quotes
	s.filtered = []domain.SavedQuote{}
	s.state = domain.Succeeded(slices.Clone(quotes))
	s.hasError = false

	return nil
}

func (s *SavedQuotesStore) fetchFilteredLocked(ctx context.Context) error {
	s.state = domain.Loading[[]domain.SavedQuote]()

	quotes, err := s.gateway.Fetch(ctx, s.query)
	if err != nil {
		s.failLocked(ctx, err)

		return err
	}

	if quotes == nil {
		quotes = []domain.SavedQuote{}
	}

	s.filtered = quotes
	s.saved = slices.Clone(quotes)
	s.state = domain.Succeeded(slices.Clone(quotes))
	s.hasError = false

	return nil
}

func (s *SavedQuotesStore) failLocked(ctx context.Context, err error) {
	s.logger.WarnContext(ctx, "saved quotes fetch failed",
		slog.Any("error", err),
		slog.String("query", s.query.Text),
	)

	s.state = domain.Failed[[]domain.SavedQuote](err)
	s.hasError = true
}

func (s *SavedQuotesStore) onChange(event ports.ChangeEvent) {
	ctx := context.Background()

	s.logger.DebugContext(ctx, "refreshing after store change",
		slog.String("source", string(event.Source)),
		slog.Int("ids", len(event.IDs)),
	)

	_, _ = s.TryFetch(ctx)
}
