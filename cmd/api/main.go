package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/app"
	"github.com/payroll-hub/payroll-backend-go/internal/config"
	appHTTP "github.com/payroll-hub/payroll-backend-go/internal/handler/http"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/cron"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/logger"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closeLog := logger.New(logger.Options{
		Level:   cfg.App.LogLevel,
		File:    cfg.App.LogFile,
		App:     "payroll-backend",
		Version: version,
		Env:     cfg.App.Env,
	})
	defer closeLog()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	applied, err := a.DB.Migrate(ctx, log)
	if err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	if len(applied) > 0 {
		log.Info("Migrations applied", "versions", applied)
	}

	scheduler := cron.NewScheduler(log)
	cron.NewPayrollJobs(a.Payroll, a.Normalizer, log).RegisterJobs(scheduler, cfg.Payroll.RefreshInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{Logger: log, AllowedOrigins: cfg.App.CORSAllowedOrigins},
		a.JWT,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(a.JWT, a.Auth),
			Employee:   appHTTP.NewEmployeeHandler(a.Employee),
			Master:     appHTTP.NewMasterHandler(a.Master),
			Attendance: appHTTP.NewAttendanceHandler(a.Attendance),
			Leave:      appHTTP.NewLeaveHandler(a.Leave),
			Holiday:    appHTTP.NewHolidayHandler(a.Holiday),
			Payroll:    appHTTP.NewPayrollHandler(a.Payroll, a.Master, a.JWT, a.Events),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	// SSE streams end when their request contexts are cancelled
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
