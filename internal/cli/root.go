package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pageza/mixmaster/backend/config"
	"github.com/pageza/mixmaster/backend/internal/catalog"
	"github.com/pageza/mixmaster/backend/internal/database"
	"github.com/pageza/mixmaster/backend/internal/ledger"
	"github.com/pageza/mixmaster/backend/internal/logger"
	"github.com/pageza/mixmaster/backend/internal/service"
	"github.com/pageza/mixmaster/backend/internal/store"
	"github.com/spf13/cobra"
)

const storeTimeout = 10 * time.Second

type options struct {
	dbPath  string
	verbose bool
}

// NewRootCmd builds the mixmaster command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "mixmaster",
		Short:         "mixmaster browses, rates and writes drink recipes from your terminal",
		Long:          "mixmaster is a local-first cocktail, coffee and smoothie recipe book with favorites, ratings, comments and your own creations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "Path to SQLite database (overrides STORE_DRIVER)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log store activity to stderr")

	root.AddCommand(
		newSearchCmd(opts),
		newRandomCmd(opts),
		newSpotlightCmd(opts),
		newShowCmd(opts),
		newFavCmd(opts),
		newRateCmd(opts),
		newCommentCmd(opts),
		newCreateCmd(opts),
		newShareCmd(opts),
		newLibraryCmd(opts),
	)
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withService opens the configured store, waits for it to load, runs fn and
// flushes every write before returning.
func withService(opts *options, fn func(*service.MixService) error) (err error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.dbPath != "" {
		cfg.StoreDriver = config.DriverSQLite
		cfg.SQLitePath = opts.dbPath
	}

	log := logger.Nop()
	if opts.verbose {
		if log, err = logger.New("development"); err != nil {
			return err
		}
		defer log.Sync()
	}

	backend, closeBackend, err := database.OpenBackend(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeBackend(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	mirror := store.NewMirror(backend, log)
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	defer func() {
		if cerr := mirror.Close(ctx); cerr != nil && err == nil {
			err = fmt.Errorf("failed to flush store: %w", cerr)
		}
	}()

	mirror.Hydrate(ctx, store.AllKeys...)
	if err := mirror.WaitReady(ctx); err != nil {
		return fmt.Errorf("store did not load: %w", err)
	}

	recipes, err := catalog.New(mirror)
	if err != nil {
		return err
	}
	policy, err := ledger.ParsePolicy(cfg.ModerationPolicy)
	if err != nil {
		return err
	}
	return fn(service.NewMixService(mirror, recipes, service.Options{
		Policy:         policy,
		SpotlightLimit: cfg.SpotlightLimit,
		Ready:          mirror.Ready(),
	}))
}
