package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/lease-fees/internal/buildinfo"
	"github.com/iwvelando/lease-fees/internal/config"
	"github.com/iwvelando/lease-fees/internal/logging"
	"github.com/iwvelando/lease-fees/internal/server"
	"github.com/iwvelando/lease-fees/pkg/constants"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(a *app) *cobra.Command {
	var serverConfigPath string
	var address string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const op = "cli.serve"

			srvCfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				srvCfg.Address = address
			}

			logger := a.logger
			if srvCfg.Logging != (config.LoggingConfig{}) {
				logger, err = logging.New(srvCfg.Logging, a.logLevel)
				if err != nil {
					return fmt.Errorf("failed to initialize server logger: %w", err)
				}
				defer func() { _ = logger.Sync() }()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					logger.Warn("failed to close form store", zap.String("op", op), zap.Error(closeErr))
				}
			}()

			httpServer := &http.Server{
				Addr: srvCfg.Address,
				Handler: server.NewHandler(server.Options{
					Logger:      logger,
					Store:       store,
					Defaults:    a.defaults(),
					MaxBodySize: srvCfg.BodySizeBytes(),
					Version:     buildinfo.Version,
				}),
				ReadTimeout:  srvCfg.ReadTimeoutDuration(),
				WriteTimeout: srvCfg.WriteTimeoutDuration(),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("starting server",
					zap.String("op", op),
					zap.String("address", srvCfg.Address),
					zap.String("store", a.conf.Store.Driver),
				)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down server", zap.String("op", op))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		},
	}

	c.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	c.Flags().StringVar(&address, "address", "", "listen address override")
	return c
}
