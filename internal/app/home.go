package app

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// HomeSummary is the landing view: today's quote and the journal size.
type HomeSummary struct {
	Today      QuoteSnapshot
	SavedCount int
}

// Home loads the landing view. Both halves run concurrently; a failed quote
// fetch is reported inside the snapshot, while a failed journal read fails
// the whole summary.
func Home(ctx context.Context, presenter *QuotePresenter, journal ports.SavedQuoteReader) (HomeSummary, error) {
	today, count, err := Parallel2(ctx,
		func(ctx context.Context) (QuoteSnapshot, error) {
			return presenter.GetQuoteOfTheDay(ctx), nil
		},
		func(ctx context.Context) (int, error) {
			quotes, err := journal.Fetch(ctx, domain.SearchQuery{})

			return len(quotes), err
		},
	)
	if err != nil {
		return HomeSummary{}, err
	}

	return HomeSummary{Today: today, SavedCount: count}, nil
}
