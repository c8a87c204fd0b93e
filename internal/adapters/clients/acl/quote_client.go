package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// DefaultTodayPath is the ZenQuotes quote-of-the-day endpoint.
const DefaultTodayPath = "/api/today"

// QuoteClientConfig configures the quote-of-the-day adapter.
type QuoteClientConfig struct {
	// Client is the HTTP client whose base URL points at ZenQuotes.
	Client *clients.Client

	// Cache holds the raw payload of the last successful fetch.
	Cache ports.Cache

	// Path overrides DefaultTodayPath.
	Path string

	Logger *slog.Logger
}

// QuoteClient fetches today's quote from ZenQuotes. A cached payload short
// circuits the network entirely; it is never revalidated.
type QuoteClient struct {
	BaseAdapter

	cache  ports.Cache
	path   string
	logger *slog.Logger
}

// NewQuoteClient creates the adapter. Panics if Client or Cache is nil.
func NewQuoteClient(cfg QuoteClientConfig) *QuoteClient {
	if cfg.Client == nil {
		panic("QuoteClient: Client is required")
	}

	if cfg.Cache == nil {
		panic("QuoteClient: Cache is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path := cfg.Path
	if path == "" {
		path = DefaultTodayPath
	}

	return &QuoteClient{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		cache:       cfg.Cache,
		path:        path,
		logger:      logger.With(slog.String("component", "acl.QuoteClient")),
	}
}

// zenQuote is the ZenQuotes wire format.
type zenQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
	H string `json:"h"`
}

func translateZenQuote(z *zenQuote) domain.QuoteRecord {
	return domain.QuoteRecord{
		Quote:          z.Q,
		Author:         z.A,
		BlockQuoteHTML: z.H,
	}
}

func decodeQuotes(body []byte) ([]domain.QuoteRecord, error) {
	external, err := DecodeJSON[[]zenQuote](body)
	if err != nil {
		return nil, err
	}

	return TranslateSlice(external, translateZenQuote), nil
}

// FetchQuoteOfTheDay implements ports.QuoteFetcher.
func (c *QuoteClient) FetchQuoteOfTheDay(ctx context.Context) ([]domain.QuoteRecord, error) {
	if cached, ok := c.cache.Retrieve(ports.DailyQuoteCacheKey); ok {
		records, err := decodeQuotes(cached)
		if err == nil {
			c.logger.Log(ctx, logging.LevelTrace, "serving quote from cache",
				slog.Int("records", len(records)))

			return records, nil
		}

		c.logger.WarnContext(ctx, "discarding undecodable cached quote payload", slog.Any("error", err))
	}

	if _, err := c.Client().ResolveURL(c.path); err != nil {
		return nil, domain.ErrInvalidURL
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", c.path))

	body, status, err := c.GetBody(ctx, c.path, http.StatusOK)
	if err != nil {
		c.logFailure(ctx, status, err)

		return nil, err
	}

	records, err := decodeQuotes(body)
	if err != nil {
		c.logger.WarnContext(ctx, "quote payload could not be decoded",
			slog.Any("error", err),
			slog.Int("bytes", len(body)),
		)

		return nil, domain.ErrInvalidData
	}

	c.cache.Save(ports.DailyQuoteCacheKey, body)

	c.logger.DebugContext(ctx, "fetched quote of the day", slog.Int("records", len(records)))

	return records, nil
}

func (c *QuoteClient) logFailure(ctx context.Context, status int, err error) {
	attrs := []any{slog.Any("error", err)}
	if status != 0 {
		attrs = append(attrs, slog.Int("status_code", status))
	}

	var fe *domain.FetchError
	if errors.As(err, &fe) && fe.Kind == domain.FetchTransportOffline {
		c.logger.WarnContext(ctx, "quote service unreachable", attrs...)

		return
	}

	c.logger.WarnContext(ctx, "quote fetch failed", attrs...)
}

// Name implements ports.HealthChecker.
func (c *QuoteClient) Name() string {
	return c.ServiceName()
}

// Check reports the circuit breaker state. It does not call ZenQuotes,
// whose free tier is rate limited.
func (c *QuoteClient) Check(_ context.Context) error {
	if state := c.Client().CircuitState(); state == clients.StateOpen {
		return fmt.Errorf("%w: circuit %s", clients.ErrCircuitOpen, state)
	}

	return nil
}
