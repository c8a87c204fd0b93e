package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// SaveReflectionInput is a quote the user wants to keep.
type SaveReflectionInput struct {
	Content    string
	Author     string
	Reflection string
}

type editReflectionInput struct {
	ID         string
	Reflection string
}

// JournalServiceConfig contains the journal's dependencies.
type JournalServiceConfig struct {
	Gateway ports.SavedQuoteGateway
	Store   *SavedQuotesStore
	Logger  *slog.Logger
}

// JournalService runs writes against the saved quote journal. Writes go to
// the gateway; the store picks them up through its change subscription.
type JournalService struct {
	gateway  ports.SavedQuoteGateway
	store    *SavedQuotesStore
	executor *Executor
	logger   *slog.Logger
}

// NewJournalService creates the service. Panics if Gateway or Store is nil.
func NewJournalService(cfg JournalServiceConfig) *JournalService {
	if cfg.Gateway == nil {
		panic("JournalService: Gateway is required")
	}

	if cfg.Store == nil {
		panic("JournalService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &JournalService{
		gateway:  cfg.Gateway,
		store:    cfg.Store,
		executor: NewExecutor(logger),
		logger:   logger,
	}
}

// SaveReflection stores a new saved quote and commits it.
func (s *JournalService) SaveReflection(ctx context.Context, in SaveReflectionInput) (*domain.SavedQuote, error) {
	op := Operation[SaveReflectionInput, *domain.SavedQuote, *domain.SavedQuote, *domain.SavedQuote]{
		Name: "save_reflection",
		Validate: func(_ context.Context, in SaveReflectionInput) error {
			_, err := domain.NewSavedQuote(in.Content, in.Author, in.Reflection)

			return err
		},
		Perform: func(ctx context.Context, in SaveReflectionInput) (*domain.SavedQuote, error) {
			q := &domain.SavedQuote{
				QuoteContent: in.Content,
				QuoteAuthor:  in.Author,
				Reflection:   in.Reflection,
			}

			if err := s.gateway.Insert(ctx, q); err != nil {
				return nil, err
			}

			return q, nil
		},
		Verify: func(_ context.Context, _ SaveReflectionInput, q *domain.SavedQuote) (*domain.SavedQuote, error) {
			if q.ID == "" {
				return nil, errors.New("gateway did not assign an id")
			}

			return q, nil
		},
		Archive: func(ctx context.Context, _ SaveReflectionInput, _ *domain.SavedQuote) error {
			return s.gateway.Save(ctx)
		},
		Respond: func(_ context.Context, _ SaveReflectionInput, q *domain.SavedQuote) (*domain.SavedQuote, error) {
			return q, nil
		},
	}

	return Execute(ctx, s.executor, op, in)
}

// EditReflection replaces the reflection of an existing saved quote.
func (s *JournalService) EditReflection(ctx context.Context, id, reflection string) (*domain.SavedQuote, error) {
	ctx = logging.WithSavedQuoteID(ctx, id)

	op := Operation[editReflectionInput, struct{}, struct{}, *domain.SavedQuote]{
		Name: "edit_reflection",
		Validate: func(_ context.Context, in editReflectionInput) error {
			if in.ID == "" {
				return domain.NewValidationError("id", "must not be empty")
			}

			return domain.ValidateReflection(in.Reflection)
		},
		Perform: func(ctx context.Context, in editReflectionInput) (struct{}, error) {
			return struct{}{}, s.gateway.UpdateReflection(ctx, in.ID, in.Reflection)
		},
		Archive: func(ctx context.Context, _ editReflectionInput, _ struct{}) error {
			return s.gateway.Save(ctx)
		},
		Respond: func(ctx context.Context, in editReflectionInput, _ struct{}) (*domain.SavedQuote, error) {
			return s.gateway.Get(ctx, in.ID)
		},
	}

	return Execute(ctx, s.executor, op, editReflectionInput{ID: id, Reflection: reflection})
}

// Delete removes one saved quote. The returned task completes when the
// removal is durable.
func (s *JournalService) Delete(ctx context.Context, id string) (*ports.DeleteTask, error) {
	task, err := s.gateway.Delete(logging.WithSavedQuoteID(ctx, id), id)
	if err != nil {
		return nil, fmt.Errorf("deleting saved quote %s: %w", id, err)
	}

	return task, nil
}

// DeleteAt removes the records at the given positions of the store's
// current list from both the list and the gateway. Records that fail to
// resolve are reported in the joined error; the others are still deleted.
func (s *JournalService) DeleteAt(ctx context.Context, offsets []int) ([]*ports.DeleteTask, error) {
	removed := s.store.DeleteQuote(offsets)

	tasks := make([]*ports.DeleteTask, 0, len(removed))

	var errs []error

	for _, q := range removed {
		task, err := s.Delete(ctx, q.ID)
		if err != nil {
			errs = append(errs, err)

			continue
		}

		tasks = append(tasks, task)
	}

	if len(errs) > 0 {
		s.logger.WarnContext(ctx, "some deletes could not be started",
			slog.Int("failed", len(errs)),
			slog.Int("started", len(tasks)),
		)
	}

	return tasks, errors.Join(errs...)
}
