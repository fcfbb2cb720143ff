package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vbonduro/cleaningreport/internal/api"
	"github.com/vbonduro/cleaningreport/internal/config"
	"github.com/vbonduro/cleaningreport/internal/db"
	"github.com/vbonduro/cleaningreport/internal/localstore"
	"github.com/vbonduro/cleaningreport/internal/logging"
	"github.com/vbonduro/cleaningreport/internal/migration"
	"github.com/vbonduro/cleaningreport/internal/photo"
	"github.com/vbonduro/cleaningreport/internal/photo/local"
	"github.com/vbonduro/cleaningreport/internal/session"
)

const usage = `usage: cleaningreport [command]

commands:
  init              migrate legacy local data, then load everything (default)
  seed <file>       import a legacy local storage export into the local store
  export-photos     write every report photo to PHOTO_EXPORT_PATH`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		File:      cfg.LogFile,
		APIOrigin: cfg.APIOrigin,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:]); err != nil {
		logger.Error("command failed", "error", err)
		stop()
		cleanup()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string) error {
	command := "init"
	if len(args) > 0 {
		command = args[0]
	}

	database, err := db.Open(cfg.LocalStorePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	store := localstore.NewSQLiteStore(database)
	client := api.NewClient(cfg.APIOrigin, api.WithLogger(logger))

	switch command {
	case "init":
		ops := session.NewOperations(
			client,
			migration.NewMigrator(client, store, logger),
			session.NewState(),
			session.WriterAlerter{W: os.Stderr},
			logger,
		)
		if err := ops.Initialize(ctx); err != nil {
			return err
		}
		state := ops.State()
		fmt.Printf("reports: %d\ninvoices: %d\nbank accounts: %d\npresets: %d\n",
			len(state.Reports()), len(state.Invoices()), len(state.BankAccounts()), len(state.Presets()))
		return nil

	case "seed":
		if len(args) < 2 {
			return fmt.Errorf("seed requires a file\n%s", usage)
		}
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open export: %w", err)
		}
		defer f.Close()
		n, err := localstore.Import(ctx, store, f)
		if err != nil {
			return err
		}
		logger.Info("local storage seeded", "keys", n)
		return nil

	case "export-photos":
		data, err := client.LoadAll(ctx)
		if err != nil {
			return err
		}
		photoStore, err := local.NewStore(cfg.PhotoExportPath)
		if err != nil {
			return err
		}
		keys, err := photo.ExportReports(ctx, photoStore, data.Reports, logger)
		if err != nil {
			return err
		}
		logger.Info("photos exported", "count", len(keys), "path", cfg.PhotoExportPath)
		return nil

	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}
