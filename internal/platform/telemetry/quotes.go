package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// InstrumentedFetcher wraps a QuoteFetcher with a span per fetch and a
// counter of outcomes by error kind.
type InstrumentedFetcher struct {
	next     ports.QuoteFetcher
	tracer   trace.Tracer
	outcomes metric.Int64Counter
}

// InstrumentFetcher wraps next using the global providers.
func InstrumentFetcher(next ports.QuoteFetcher) *InstrumentedFetcher {
	outcomes, err := otel.Meter(instrumentationName).Int64Counter(
		"quotes.fetch.outcomes",
		metric.WithDescription("Quote of the day fetches by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &InstrumentedFetcher{
		next:     next,
		tracer:   otel.Tracer(instrumentationName),
		outcomes: outcomes,
	}
}

// FetchQuoteOfTheDay implements ports.QuoteFetcher.
func (f *InstrumentedFetcher) FetchQuoteOfTheDay(ctx context.Context) ([]domain.QuoteRecord, error) {
	ctx, span := f.tracer.Start(ctx, "quotes.FetchQuoteOfTheDay")
	defer span.End()

	records, err := f.next.FetchQuoteOfTheDay(ctx)

	outcome := FetchOutcome(err)
	span.SetAttributes(attribute.String("quotes.outcome", outcome), attribute.Int("quotes.records", len(records)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	if f.outcomes != nil {
		f.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}

	return records, err
}

// FetchOutcome labels a fetch result: "ok", a fetch error kind, or "other".
func FetchOutcome(err error) string {
	if err == nil {
		return "ok"
	}

	if fe, ok := domain.IsFetchError(err); ok {
		return fe.Kind.String()
	}

	return "other"
}

// QuoteStateGauge publishes the quote of the day display state: the fetch
// status as its numeric value and whether an undismissed error is showing.
type QuoteStateGauge struct {
	state  metric.Int64Gauge
	errors metric.Int64Gauge
}

// NewQuoteStateGauge creates the gauges on the global meter provider.
func NewQuoteStateGauge() *QuoteStateGauge {
	return newQuoteStateGauge(otel.Meter(instrumentationName))
}

func newQuoteStateGauge(meter metric.Meter) *QuoteStateGauge {
	state, err := meter.Int64Gauge("quotes.today.state",
		metric.WithDescription("Quote of the day fetch status (0 notAvailable, 1 loading, 2 success, 3 failure)"))
	if err != nil {
		otel.Handle(err)
	}

	errs, err := meter.Int64Gauge("quotes.today.error",
		metric.WithDescription("1 while a quote of the day error is shown"))
	if err != nil {
		otel.Handle(err)
	}

	return &QuoteStateGauge{state: state, errors: errs}
}

// Record sets both gauges.
func (g *QuoteStateGauge) Record(ctx context.Context, status domain.FetchStatus, hasError bool) {
	if g.state != nil {
		g.state.Record(ctx, int64(status))
	}

	if g.errors != nil {
		var v int64
		if hasError {
			v = 1
		}

		g.errors.Record(ctx, v)
	}
}
