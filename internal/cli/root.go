// Package cli implements the lease-fees command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/lease-fees/internal/config"
	"github.com/iwvelando/lease-fees/internal/formstore"
	"github.com/iwvelando/lease-fees/internal/logging"
	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/fees"
	"github.com/iwvelando/lease-fees/pkg/validation"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", fees.UserMessage(err))
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand once the configuration
// has been loaded.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string

	conf   *config.Configuration
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "lease-fees",
		Short:         "Calculate move-in costs and early-termination fees for residential leases",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, csv, json")

	cmd.AddCommand(
		rentCmd(a),
		advertisingCmd(a),
		relettingCmd(a),
		weeksCmd(a),
		dateCmd(a),
		termsCmd(a),
		formCmd(a),
		serveCmd(a),
		versionCmd(),
	)
	return cmd
}

func (a *app) load() error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	logger, err := logging.New(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Debug("Configuration warning: "+warning,
			zap.String("op", "cli.load"),
		)
	}

	if err := validation.ValidateOutputFormat(a.format(conf)); err != nil {
		return err
	}

	a.conf = conf
	a.logger = logger
	return nil
}

// format returns the output format, the CLI override taking precedence.
func (a *app) format(conf *config.Configuration) string {
	outputFormat := conf.Output.Format
	if a.outputFormat != "" {
		outputFormat = a.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	return outputFormat
}

func (a *app) defaults() formstore.Defaults {
	return formstore.Defaults{
		Term:       a.conf.DefaultTerm(),
		Multiplier: a.conf.Defaults.LettingFeeMultiplier,
	}
}

// errMemoryStore is returned when a command needs saved forms to outlive the
// process but the configured store is in memory.
var errMemoryStore = errors.New("form store driver is memory, so saved forms are lost when the command exits; " +
	"set store.driver to sqlite or redis (for example LEASE_FEES_STORE_DRIVER=sqlite)")

// openPersistentStore opens the configured store for commands that read or
// write forms across runs. The memory driver is refused.
func (a *app) openPersistentStore(ctx context.Context) (formstore.Store, error) {
	switch a.conf.Store.Driver {
	case "", constants.StoreDriverMemory:
		return nil, errMemoryStore
	}
	return a.openStore(ctx)
}

func (a *app) openStore(ctx context.Context) (formstore.Store, error) {
	store, err := formstore.Open(ctx, a.conf.Store, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open form store: %w", err)
	}
	return store, nil
}
