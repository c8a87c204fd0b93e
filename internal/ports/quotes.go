// Package ports defines the contracts between the application layer and its
// adapters. Ports speak in domain types and domain errors only.
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// DailyQuoteCacheKey is the single slot the quote-of-the-day payload lives in.
const DailyQuoteCacheKey = "cachedDailyQuote"

// Cache is a key to bytes memory cache. Entries may disappear at any time,
// so callers must be able to regenerate a value after a miss.
type Cache interface {
	// Save stores value under key, replacing any previous value.
	Save(key string, value []byte)

	// Retrieve returns the stored value. A miss is not an error.
	Retrieve(key string) ([]byte, bool)
}

// QuoteFetcher returns today's quote records.
type QuoteFetcher interface {
	// FetchQuoteOfTheDay returns the decoded records. Failures are
	// *domain.FetchError values.
	FetchQuoteOfTheDay(ctx context.Context) ([]domain.QuoteRecord, error)
}

// SavedQuoteReader runs sorted queries against the durable store.
type SavedQuoteReader interface {
	// Fetch returns saved quotes sorted by author ascending. A non-empty
	// query keeps records whose author or content contains the text,
	// ignoring case and diacritics.
	Fetch(ctx context.Context, query domain.SearchQuery) ([]domain.SavedQuote, error)

	// Get returns one record or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.SavedQuote, error)
}

// ChangeSource says where a store change came from.
type ChangeSource string

const (
	ChangeCommit   ChangeSource = "commit"
	ChangeDelete   ChangeSource = "delete"
	ChangeExternal ChangeSource = "external"
)

// ChangeEvent is delivered to subscribers after the durable store changed.
type ChangeEvent struct {
	Source ChangeSource
	IDs    []string
}

// SavedQuoteGateway is the writable context over the durable store.
// Inserts and edits are staged and become durable on Save.
type SavedQuoteGateway interface {
	SavedQuoteReader

	// Insert stages a new record and assigns its ID. Empty reflections
	// are rejected with a validation error.
	Insert(ctx context.Context, quote *domain.SavedQuote) error

	// UpdateReflection stages a reflection edit on an existing record.
	UpdateReflection(ctx context.Context, id, reflection string) error

	// HasChanges reports whether anything is staged.
	HasChanges() bool

	// Save commits staged changes. It is a no-op when nothing is staged and
	// returns a saveError *domain.PersistenceError on failure.
	Save(ctx context.Context) error

	// Delete re-resolves id and commits its removal in the background.
	// Resolution failures are returned directly; commit failures surface
	// through the returned task.
	Delete(ctx context.Context, id string) (*DeleteTask, error)

	// Subscribe registers fn for change events and returns its cancel func.
	Subscribe(fn func(ChangeEvent)) (unsubscribe func())

	// LastError returns the sticky error of the last failed commit.
	LastError() error
}

// PreferenceStore keeps small string settings.
type PreferenceStore interface {
	// Preference returns the stored value and whether it exists.
	Preference(ctx context.Context, key string) (string, bool, error)

	// SetPreference stores value under key.
	SetPreference(ctx context.Context, key, value string) error
}

// Notifier schedules local reminders.
type Notifier interface {
	AuthorizationStatus(ctx context.Context) (domain.AuthorizationStatus, error)

	// RequestAuthorization asks for permission and returns whether it was granted.
	RequestAuthorization(ctx context.Context) (bool, error)

	// ScheduleDaily registers a repeating trigger at t.
	ScheduleDaily(ctx context.Context, t domain.NotificationTime, content domain.NotificationContent) error

	// RemoveAllPending cancels every scheduled trigger.
	RemoveAllPending(ctx context.Context) error

	// Pending returns the scheduled trigger time, if any.
	Pending(ctx context.Context) (*domain.NotificationTime, error)
}
