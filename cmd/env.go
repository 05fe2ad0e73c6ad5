package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/elan/internal/config"
	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/progress"
	"github.com/abhisek/elan/internal/store"
)

// environment is what every command that touches learner data needs.
type environment struct {
	cfg      config.Config
	log      *logger.Logger
	store    *store.Store
	progress *progress.Store
}

// loadConfig reads the configuration named by the persistent flags. The
// --db flag wins over every other source.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env")

	cfg, err := config.Load(path, envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB = p
	}
	return cfg, nil
}

// resolveDBPath returns cfg.DB when set, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, nil
	}
	return store.DefaultPath()
}

// openEnv loads configuration, starts the file logger and opens the
// database and the progress store. Callers must Close the result.
func openEnv(cmd *cobra.Command) (*environment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = logger.DefaultPath()
	}
	log, err := logger.New(cfg.Log.Mode, logPath)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath)

	ps := progress.Open(commandContext(cmd), store.RecordPersister{
		Repo: st.RecordRepo(),
		Name: progress.RecordName,
	}, log)

	return &environment{cfg: cfg, log: log, store: st, progress: ps}, nil
}

func (e *environment) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", "error", err)
	}
	e.log.Sync()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
