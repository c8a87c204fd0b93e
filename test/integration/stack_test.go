//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/cache"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients/acl"
	quoteshttp "github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/notify"
	"github.com/jsamuelsen/quotes-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// upstream is a scripted ZenQuotes stand-in.
type upstream struct {
	server *httptest.Server
	calls  atomic.Int32

	mu     sync.Mutex
	status int
	body   string
	delay  time.Duration
}

func newUpstream() *upstream {
	u := &upstream{status: http.StatusOK, body: `[{"q":"Well begun is half done.","a":"Aristotle","h":""}]`}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		u.calls.Add(1)

		u.mu.Lock()
		status, body, delay := u.status, u.body, u.delay
		u.mu.Unlock()

		time.Sleep(delay)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))

	return u
}

func (u *upstream) respond(status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.status, u.body = status, body
}

// stack is the whole service in process: real router, real SQLite journal
// in a temporary directory, and the quote client pointed at upstream.
type stack struct {
	dir      string
	upstream *upstream
	server   *httptest.Server
	gateway  *sqlite.Gateway
	store    *app.SavedQuotesStore
	notifier *notify.LocalNotifier
}

func newStack(auth config.AuthConfig) (*stack, error) {
	dir, err := os.MkdirTemp("", "quotes-integration-*")
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &stack{dir: dir, upstream: newUpstream()}

	s.gateway, err = sqlite.Open(context.Background(), config.StorageConfig{
		Path:        filepath.Join(dir, "journal.db"),
		BusyTimeout: 5 * time.Second,
	}, logger)
	if err != nil {
		s.Close()

		return nil, err
	}

	memory, err := cache.NewMemoryCache(0)
	if err != nil {
		s.Close()

		return nil, err
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     s.upstream.server.URL,
		ServiceName: "zenquotes",
		Timeout:     2 * time.Second,
		Circuit:     config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Second, HalfOpenLimit: 1},
		Transport:   config.TransportConfig{MaxIdleConns: 10, MaxIdleConnsPerHost: 10, IdleConnTimeout: time.Minute},
		Logger:      logger,
	})
	if err != nil {
		s.Close()

		return nil, err
	}

	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{Client: httpClient, Cache: memory, Logger: logger})

	registry := ports.NewHealthRegistry()
	_ = registry.Register(s.gateway)
	_ = registry.Register(quoteClient)

	s.store = app.NewSavedQuotesStore(app.SavedQuotesStoreConfig{Gateway: s.gateway, Logger: logger})
	s.notifier = notify.New(notify.Config{Authorization: domain.AuthorizationNotDetermined, GrantOnRequest: true, Logger: logger})

	presenter := app.NewQuotePresenter(app.QuotePresenterConfig{Fetcher: quoteClient, Logger: logger})
	journal := app.NewJournalService(app.JournalServiceConfig{Gateway: s.gateway, Store: s.store, Logger: logger})
	reminders := app.NewReminderService(app.ReminderServiceConfig{Notifier: s.notifier, Preferences: s.gateway, Logger: logger})

	engine := gin.New()
	quoteshttp.SetupRouter(engine, quoteshttp.RouterConfig{
		Logger:         logger,
		ServiceName:    "quotes-integration",
		Auth:           auth,
		RequestTimeout: 5 * time.Second,
		Health:         handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "test", ""), s.gateway.SchemaVersion),
		Quotes:         handlers.NewQuoteHandler(presenter, s.gateway),
		Saved:          handlers.NewSavedHandler(s.store, journal, s.gateway),
		Settings:       handlers.NewSettingsHandler(reminders, app.NewAppearanceService(s.gateway)),
	})

	s.server = httptest.NewServer(engine)

	return s, nil
}

func (s *stack) URL(path string) string {
	return s.server.URL + path
}

// Close stops everything and removes the temporary directory.
func (s *stack) Close() {
	if s.server != nil {
		s.server.Close()
	}

	if s.store != nil {
		s.store.Close()
	}

	if s.notifier != nil {
		s.notifier.Close()
	}

	if s.gateway != nil {
		_ = s.gateway.Close()
	}

	s.upstream.server.Close()
	_ = os.RemoveAll(s.dir)
}
