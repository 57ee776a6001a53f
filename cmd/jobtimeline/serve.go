package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobtimeline/internal/config"
	"jobtimeline/internal/logging"
	"jobtimeline/internal/server"
	"jobtimeline/internal/storage"
)

var (
	configPath string
	viewFlag   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the job timeline page",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file (YAML)")
	serveCmd.Flags().StringVar(&viewFlag, "view", "", "view to serve: subdaily or daily (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("view") {
		if err := cfg.SetView(viewFlag); err != nil {
			return err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	view := cfg.ViewPolicy()
	addr := ":" + strconv.Itoa(cfg.ListenPort())
	timeout := time.Duration(cfg.Database.QueryTimeoutSeconds) * time.Second
	source := storage.NewJobHistory(storage.Connector(cfg.Database.DataSourceName()), timeout)
	srv := server.New(addr, view, source, cfg.Link, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("jobtimeline listening",
		zap.String("addr", addr),
		zap.String("view", string(view.Kind)),
		zap.String("config", configPath),
	)
	if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}
