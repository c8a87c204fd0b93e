package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotes-service/internal/adapters/clients"

	httpStatusCategoryDivisor = 100

	defaultTimeout = 30 * time.Second
)

// Config configures an HTTP client instance.
type Config struct {
	// BaseURL is prepended to every request path, e.g. "https://zenquotes.io".
	BaseURL string

	// ServiceName identifies the downstream service in logs, spans and metrics.
	ServiceName string

	// Timeout bounds a whole request including reading the body.
	Timeout time.Duration

	Circuit   config.CircuitBreakerConfig
	Transport config.TransportConfig

	Logger *slog.Logger
}

// Client is an instrumented, single-shot HTTP client for one downstream
// service. Each call makes exactly one attempt, guarded by a circuit breaker
// and traced with OpenTelemetry. Request and correlation IDs found in the
// context are forwarded as headers.
type Client struct {
	http        *http.Client
	baseURL     *url.URL
	serviceName string
	logger      *slog.Logger
	cb          *CircuitBreaker

	tracer          trace.Tracer
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// New creates a client. The base URL must be absolute.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   cfg.Circuit.MaxFailures,
		Timeout:       cfg.Circuit.Timeout,
		HalfOpenLimit: cfg.Circuit.HalfOpenLimit,
	})
	cb.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	meter := otel.Meter(instrumentationName)

	requestDuration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requestTotal, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(cfg.Transport),
		},
		baseURL:         base,
		serviceName:     cfg.ServiceName,
		logger:          logger,
		cb:              cb,
		tracer:          otel.Tracer(instrumentationName),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

func newTransport(cfg config.TransportConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.MaxIdleConns > 0 {
		t.MaxIdleConns = cfg.MaxIdleConns
	}

	if cfg.MaxIdleConnsPerHost > 0 {
		t.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}

	if cfg.IdleConnTimeout > 0 {
		t.IdleConnTimeout = cfg.IdleConnTimeout
	}

	return t
}

// Do sends req once. Any response, whatever its status, is returned to the
// caller; only transport failures produce an error. 5xx responses and
// transport failures count against the circuit breaker.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	call := c.begin(ctx, req)

	if !c.cb.Allow() {
		call.finish(0, "circuit_open", nil)

		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	c.injectHeaders(ctx, req)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		c.cb.RecordFailure()
		span.SetStatus(codes.Error, err.Error())
		call.finish(0, "error", err)

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	status := resp.StatusCode
	if status >= http.StatusInternalServerError {
		c.cb.RecordFailure()
	} else {
		c.cb.RecordSuccess()
	}

	span.SetAttributes(attribute.Int("http.status_code", status))
	if status >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(status))
	}

	call.finish(status, strconv.Itoa(status/httpStatusCategoryDivisor)+"xx", nil)

	return resp, nil
}

// call carries what one request needs for its log line and metrics.
type call struct {
	c      *Client
	ctx    context.Context
	method string
	path   string
	start  time.Time
}

func (c *Client) begin(ctx context.Context, req *http.Request) *call {
	return &call{c: c, ctx: ctx, method: req.Method, path: req.URL.Path, start: time.Now()}
}

func (k *call) finish(status int, result string, err error) {
	elapsed := time.Since(k.start)

	attrs := []attribute.KeyValue{
		attribute.String("http.method", k.method),
		attribute.String("peer.service", k.c.serviceName),
		attribute.String("result", result),
	}
	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	set := metric.WithAttributes(attrs...)
	k.c.requestDuration.Record(k.ctx, elapsed.Seconds(), set)
	k.c.requestTotal.Add(k.ctx, 1, set)

	logger := k.c.logger
	if logging.Has(k.ctx) {
		logger = logging.FromContext(k.ctx)
	}

	fields := []any{
		slog.String("downstream", k.c.serviceName),
		slog.String("method", k.method),
		slog.String("path", k.path),
		slog.Duration("duration", elapsed),
	}

	switch {
	case err != nil:
		logger.ErrorContext(k.ctx, "downstream request failed", append(fields, slog.Any("error", err))...)
	case result == "circuit_open":
		logger.WarnContext(k.ctx, "downstream request blocked by circuit breaker", fields...)
	default:
		logger.DebugContext(k.ctx, "downstream request completed", append(fields, slog.Int("status", status))...)
	}
}

// Get performs a GET against path relative to the base URL.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	target, err := c.ResolveURL(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// ResolveURL joins path onto the base URL.
func (c *Client) ResolveURL(path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}

	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + ref.Path
	u.RawQuery = ref.RawQuery

	return u.String(), nil
}

// CircuitState returns the current state of the circuit breaker.
func (c *Client) CircuitState() State {
	return c.cb.State()
}

// ServiceName returns the downstream name this client talks to.
func (c *Client) ServiceName() string {
	return c.serviceName
}

func (c *Client) injectHeaders(ctx context.Context, req *http.Request) {
	if requestID := middleware.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(middleware.HeaderRequestID, requestID)
	}

	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(middleware.HeaderCorrelationID, correlationID)
	}
}
