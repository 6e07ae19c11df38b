package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/payroll-hub/payroll-backend-go/internal/app"
	"github.com/payroll-hub/payroll-backend-go/internal/config"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	log      *slog.Logger
	cfg      *config.Config
	logLevel string
)

var closeLogs = func() error { return nil }

func main() {
	rootCmd := &cobra.Command{
		Use:           "payrollctl",
		Short:         "Payroll operator tools",
		Long:          "Run migrations, regenerate payroll snapshots and inspect the working-day calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if logLevel != "" {
				cfg.App.LogLevel = logLevel
			}
			log, closeLogs = logger.New(logger.Options{
				Level: cfg.App.LogLevel,
				File:  cfg.App.LogFile,
				App:   "payrollctl",
				Env:   cfg.App.Env,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = closeLogs()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL")

	rootCmd.AddCommand(migrateCmd(), generateCmd(), workingDaysCmd(), bootstrapAdminCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withApp builds the services for the duration of one command.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
