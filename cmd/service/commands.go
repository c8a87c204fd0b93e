package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

func newTodayCmd(opts *options) *cobra.Command {
	var shareOnly bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.loadQuiet()
			if err != nil {
				return err
			}

			client, err := newQuoteClient(cfg, logger)
			if err != nil {
				return err
			}

			presenter := app.NewQuotePresenter(app.QuotePresenterConfig{Fetcher: client, Logger: logger})

			snap := presenter.GetQuoteOfTheDay(cmd.Context())
			if snap.HasError {
				return fmt.Errorf("fetching today's quote: %w", snap.Err)
			}

			out := cmd.OutOrStdout()
			if shareOnly {
				_, _ = fmt.Fprintln(out, snap.Share)

				return nil
			}

			_, _ = fmt.Fprintf(out, "%q\n  - %s\n", snap.Quote, snap.Author)

			return nil
		},
	}

	cmd.Flags().BoolVar(&shareOnly, "share", false, "print the share text only")

	return cmd
}

func newSavedCmd(opts *options) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List saved quotes, optionally filtered by author or content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, logger, err := opts.loadQuiet()
			if err != nil {
				return err
			}

			cfg.Storage.WatchExternal = false

			gw, err := openJournal(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = gw.Close() }()

			store := app.NewSavedQuotesStore(app.SavedQuotesStoreConfig{Gateway: gw, Logger: logger})
			defer store.Close()

			snap, err := store.FilterListByAuthorOrQuote(ctx, query)
			if err != nil {
				return err
			}

			printSaved(cmd.OutOrStdout(), snap.Quotes)

			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case and accent insensitive filter")

	return cmd
}

func printSaved(w io.Writer, quotes []domain.SavedQuote) {
	if len(quotes) == 0 {
		_, _ = fmt.Fprintln(w, "no saved quotes")

		return
	}

	for i, q := range quotes {
		_, _ = fmt.Fprintf(w, "%d. %q - %s\n   %s\n   (%s, %s)\n",
			i+1, q.QuoteContent, q.QuoteAuthor, q.Reflection, q.ID, q.UpdatedAt.Format("2006-01-02"))
	}
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the journal database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, logger, err := opts.loadQuiet()
			if err != nil {
				return err
			}

			cfg.Storage.WatchExternal = false

			gw, err := openJournal(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = gw.Close() }()

			version, err := gw.SchemaVersion(ctx)
			if err != nil {
				return fmt.Errorf("reading schema version: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "journal %s at schema version %d\n", cfg.Storage.Path, version)

			return nil
		},
	}
}
