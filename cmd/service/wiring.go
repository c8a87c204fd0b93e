package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jsamuelsen/quotes-service/internal/adapters/cache"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotes-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// options are the persistent flags shared by every command.
type options struct {
	profile   string
	configDir string
}

// load reads and validates the configuration and builds the logger.
// Logs go to w; the one-shot commands pass stderr so stdout stays clean.
func (o *options) load(w io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFrom(o.configDir, o.profile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, w)
	logging.SetDefault(logger)

	return cfg, logger, nil
}

func (o *options) loadQuiet() (*config.Config, *slog.Logger, error) {
	return o.load(os.Stderr)
}

// newQuoteClient builds the cached ZenQuotes adapter.
func newQuoteClient(cfg *config.Config, logger *slog.Logger) (*acl.QuoteClient, error) {
	memory, err := cache.NewMemoryCache(cfg.Cache.Size)
	if err != nil {
		return nil, err
	}

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Client.Timeout,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating quote HTTP client: %w", err)
	}

	return acl.NewQuoteClient(acl.QuoteClientConfig{
		Client: httpClient,
		Cache:  memory,
		Path:   cfg.Services.Quote.Path,
		Logger: logger,
	}), nil
}

func openJournal(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sqlite.Gateway, error) {
	gw, err := sqlite.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("opening journal at %s: %w", cfg.Storage.Path, err)
	}

	return gw, nil
}
