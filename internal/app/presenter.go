// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// QuoteSnapshot is a consistent copy of the presenter's published fields.
type QuoteSnapshot struct {
	State    domain.FetchStatus
	Records  []domain.QuoteRecord
	Err      error
	HasError bool
	Quote    string
	Author   string
	Share    string
}

// QuotePresenterConfig contains the presenter's dependencies.
type QuotePresenterConfig struct {
	Fetcher ports.QuoteFetcher
	Logger  *slog.Logger
}

// QuotePresenter projects the quote of the day into display state.
// Concurrent GetQuoteOfTheDay calls share one in-flight fetch.
type QuotePresenter struct {
	fetcher ports.QuoteFetcher
	logger  *slog.Logger
	flight  singleflight.Group

	mu       sync.RWMutex
	state    domain.FetchState[[]domain.QuoteRecord]
	hasError bool
	quote    string
	author   string
	share    string

	subMu   sync.Mutex
	subs    map[uint64]func(QuoteSnapshot)
	nextSub uint64
}

// NewQuotePresenter creates a presenter in the notAvailable state.
// Panics if Fetcher is nil.
func NewQuotePresenter(cfg QuotePresenterConfig) *QuotePresenter {
	if cfg.Fetcher == nil {
		panic("QuotePresenter: Fetcher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuotePresenter{
		fetcher: cfg.Fetcher,
		logger:  logger.With(slog.String("component", "app.QuotePresenter")),
		subs:    make(map[uint64]func(QuoteSnapshot)),
	}
}

const todayFlightKey = "today"

// GetQuoteOfTheDay fetches today's quote and updates the display state.
// On failure the display strings keep their previous values.
func (p *QuotePresenter) GetQuoteOfTheDay(ctx context.Context) QuoteSnapshot {
	// The shared fetch outlives any single caller.
	flightCtx := context.WithoutCancel(ctx)

	_, _, _ = p.flight.Do(todayFlightKey, func() (any, error) {
		p.update(func() {
			p.state = domain.Loading[[]domain.QuoteRecord]()
			p.hasError = false
		})

		records, err := p.fetcher.FetchQuoteOfTheDay(flightCtx)
		if err != nil {
			p.logger.WarnContext(ctx, "quote of the day unavailable", slog.Any("error", err))

			p.update(func() {
				p.state = domain.Failed[[]domain.QuoteRecord](err)
				p.hasError = true
			})

			return nil, err
		}

		p.update(func() {
			p.quote = domain.DisplayQuote(records)
			p.author = domain.DisplayAuthor(records)
			p.share = domain.ShareText(p.quote, p.author)
			p.state = domain.Succeeded(records)
		})

		return nil, nil
	})

	return p.Snapshot()
}

// DismissError clears the error flag after the failure was shown and
// returns the resulting state.
func (p *QuotePresenter) DismissError() QuoteSnapshot {
	return p.update(func() { p.hasError = false })
}

// Snapshot returns the current state.
func (p *QuotePresenter) Snapshot() QuoteSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.snapshotLocked()
}

func (p *QuotePresenter) snapshotLocked() QuoteSnapshot {
	return QuoteSnapshot{
		State:    p.state.Status,
		Records:  slices.Clone(p.state.Value),
		Err:      p.state.Err,
		HasError: p.hasError,
		Quote:    p.quote,
		Author:   p.author,
		Share:    p.share,
	}
}

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs synchronously and must not call back into the presenter's
// mutating methods.
func (p *QuotePresenter) Subscribe(fn func(QuoteSnapshot)) (unsubscribe func()) {
	p.subMu.Lock()
	defer p.subMu.Unlock()

	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn

	return func() {
		p.subMu.Lock()
		defer p.subMu.Unlock()

		delete(p.subs, id)
	}
}

func (p *QuotePresenter) update(mutate func()) QuoteSnapshot {
	p.mu.Lock()
	mutate()
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.subMu.Lock()
	fns := slices.Collect(maps.Values(p.subs))
	p.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}

	return snap
}
