package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learncheck/learncheck/internal/audit"
	"github.com/learncheck/learncheck/internal/config"
	"github.com/learncheck/learncheck/internal/explain"
	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/logging"
	"github.com/learncheck/learncheck/internal/material"
	"github.com/learncheck/learncheck/internal/metrics"
	"github.com/learncheck/learncheck/internal/pipeline"
	"github.com/learncheck/learncheck/internal/quizgen"
	"github.com/learncheck/learncheck/internal/server"
	"github.com/learncheck/learncheck/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.New(logging.Options{Debug: cfg.Debug, File: cfg.LogFile})
	defer log.Sync()

	metrics.Init()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPath := cfg.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		return fmt.Errorf("configure model provider: %w", err)
	}
	log.Info("model provider ready", zap.String("model", provider.ModelID()))

	auditCfg := audit.DefaultConfig()
	auditCfg.StrictOnFailure = cfg.StrictAudit

	producer := pipeline.New(
		quizgen.New(provider, quizgen.DefaultConfig()),
		audit.New(provider, auditCfg),
		pipeline.DefaultConfig(),
		pipeline.MultiObserver{
			pipeline.NewLogObserver(log),
			metrics.PipelineObserver{},
		},
	)

	srv := server.New(
		log,
		cfg,
		producer,
		material.NewClient(cfg.MaterialBaseURL),
		explain.NewService(provider, explain.DefaultConfig()),
	)

	return srv.ListenAndServe(ctx)
}
