package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/notify"
	"github.com/jsamuelsen/quotes-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const telemetryFlushTimeout = 5 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := opts.load(os.Stdout)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting service",
		slog.String("version", Version),
		slog.String("environment", cfg.App.Environment),
		slog.String("journal", cfg.Storage.Path),
	)

	tel, err := telemetry.New(ctx, cfg.App, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushTimeout)
		defer cancel()

		if err := tel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown", slog.Any("error", err))
		}
	}()

	quoteClient, err := newQuoteClient(cfg, logger)
	if err != nil {
		return err
	}

	gw, err := openJournal(ctx, cfg, logger)
	if err != nil {
		return err
	}

	defer func() {
		if err := gw.Close(); err != nil {
			logger.Error("closing journal", slog.Any("error", err))
		}
	}()

	registry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{gw, quoteClient} {
		if err := registry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	presenter := app.NewQuotePresenter(app.QuotePresenterConfig{
		Fetcher: telemetry.InstrumentFetcher(quoteClient),
		Logger:  logger,
	})

	stateGauge := telemetry.NewQuoteStateGauge()
	unsubscribe := presenter.Subscribe(func(s app.QuoteSnapshot) {
		stateGauge.Record(context.Background(), s.State, s.HasError)
	})
	defer unsubscribe()

	store := app.NewSavedQuotesStore(app.SavedQuotesStoreConfig{Gateway: gw, Logger: logger})
	defer store.Close()

	journal := app.NewJournalService(app.JournalServiceConfig{Gateway: gw, Store: store, Logger: logger})

	notifier, err := newNotifier(cfg.Reminder, logger)
	if err != nil {
		return err
	}
	defer notifier.Close()

	reminders := app.NewReminderService(app.ReminderServiceConfig{Notifier: notifier, Preferences: gw, Logger: logger})
	if cfg.Reminder.Enabled {
		if err := reminders.Restore(ctx); err != nil {
			logger.WarnContext(ctx, "reminder not restored", slog.Any("error", err))
		}
	}

	server := http.NewServer(cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:         logger,
		ServiceName:    cfg.Telemetry.ServiceName,
		Auth:           cfg.Auth,
		RequestTimeout: cfg.Server.RequestTimeout,
		Health:         handlers.NewHealthHandler(registry, handlers.NewBuildInfo(Version, Commit, BuildTime), gw.SchemaVersion),
		Quotes:         handlers.NewQuoteHandler(presenter, gw),
		Saved:          handlers.NewSavedHandler(store, journal, gw),
		Settings:       handlers.NewSettingsHandler(reminders, app.NewAppearanceService(gw)),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return server.Run(gctx) })
	g.Go(func() error {
		drainDeleteErrors(gctx, gw, logger)

		return nil
	})
	g.Go(func() error {
		if _, err := store.TryFetch(gctx); err != nil {
			logger.WarnContext(gctx, "initial journal load failed", slog.Any("error", err))
		}

		return nil
	})

	err = g.Wait()

	logger.Info("shutdown complete")

	return err
}

// newNotifier builds the local reminder scheduler. A disabled scheduler
// reports denied so every schedule attempt is refused.
func newNotifier(cfg config.ReminderConfig, logger *slog.Logger) (*notify.LocalNotifier, error) {
	status := domain.AuthorizationDenied

	if cfg.Enabled && cfg.Authorization != "" {
		parsed, err := domain.ParseAuthorizationStatus(cfg.Authorization)
		if err != nil {
			return nil, fmt.Errorf("reminder authorization: %w", err)
		}

		status = parsed
	}

	return notify.New(notify.Config{
		Authorization:  status,
		GrantOnRequest: cfg.Enabled && cfg.GrantOnRequest,
		Logger:         logger,
	}), nil
}

// drainDeleteErrors reports background delete failures until ctx ends.
func drainDeleteErrors(ctx context.Context, gw *sqlite.Gateway, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-gw.Errors():
			logger.ErrorContext(ctx, "background delete failed", slog.Any("error", err))
		}
	}
}
