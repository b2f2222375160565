package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/lumieres/internal/bible"
	"github.com/alexanderramin/lumieres/internal/cli"
	"github.com/alexanderramin/lumieres/internal/config"
	"github.com/alexanderramin/lumieres/internal/dates"
	"github.com/alexanderramin/lumieres/internal/db"
	"github.com/alexanderramin/lumieres/internal/keyring"
	"github.com/alexanderramin/lumieres/internal/llm"
	"github.com/alexanderramin/lumieres/internal/logger"
	"github.com/alexanderramin/lumieres/internal/plan"
	"github.com/alexanderramin/lumieres/internal/repository"
	"github.com/alexanderramin/lumieres/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(logger.Config{Debug: cfg.Debug, Dir: cfg.Home})
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closeLog.Close()

	// Wire the key-value store
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if st.db != nil {
		defer st.db.Close()
	}

	// Reading plan; commands that need it report its absence
	readingPlan, err := plan.Load(cfg.PlanPath)
	if err != nil {
		if !errors.Is(err, plan.ErrNoPlan) {
			return fmt.Errorf("loading plan: %w", err)
		}
		log.Info("no reading plan", "path", cfg.PlanPath)
		readingPlan = nil
	}

	// Verse corpus with the generated-text fallback
	llmCfg := llm.LoadConfig()
	llmCfg.APIKey = keyring.ResolveAPIKey(llmCfg.APIKey)
	llmClient := llm.NewChatClient(llmCfg, llm.NewLogObserver(log))
	resolver := bible.NewResolver(
		bible.NewCorpusLoader(cfg.CorpusURL, nil, log),
		bible.NewGeneratedFallback(llmClient),
		log,
	)

	// Wire services
	observer := service.NewLogUseCaseObserver(log)
	clock := dates.SystemClock{Location: cfg.Location}
	relay := &cli.Relay{}

	tracker := service.NewTrackerService(service.TrackerDeps{
		KV:       st.kv,
		UoW:      st.uow,
		Factory:  st.factory,
		Plan:     readingPlan,
		Clock:    clock,
		Logger:   log,
		Listener: relay,
	}, observer)
	notes := service.NewNotesService(st.kv, log, relay.NoteSaved, observer)

	if err := tracker.Load(ctx); err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}
	if err := notes.Load(ctx); err != nil {
		return fmt.Errorf("loading notes: %w", err)
	}

	app := &cli.App{
		Tracker: tracker,
		Notes:   notes,
		Reader:  service.NewReaderService(readingPlan, resolver, observer),
		Keys:    keyring.OSKeyring{},
		Clock:   clock,
		Relay:   relay,
	}

	// Detect interactive terminal for confirmation prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

type store struct {
	db      *sql.DB
	kv      repository.KVStore
	uow     db.UnitOfWork
	factory repository.KVFactory
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return &store{kv: repository.NewMemoryKVStore()}, nil
	case config.StorePostgres:
		database, err := db.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return &store{
			db:      database,
			kv:      repository.NewPostgresKVStore(database),
			uow:     db.NewSQLUnitOfWork(database),
			factory: repository.PostgresKVFactory,
		}, nil
	default:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return &store{
			db:      database,
			kv:      repository.NewSQLiteKVStore(database),
			uow:     db.NewSQLUnitOfWork(database),
			factory: repository.SQLiteKVFactory,
		}, nil
	}
}
