package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/payroll-hub/payroll-backend-go/internal/app"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/user"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				applied, err := a.DB.Migrate(ctx, log)
				if err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s): %s\n", len(applied), strings.Join(applied, ", "))
				return nil
			})
		},
	}
}

func generateCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the payroll snapshots of every active employee for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(year, month); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				n, err := a.Payroll.RefreshMonth(ctx, year, month)
				if err != nil {
					return fmt.Errorf("payroll generation failed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d payroll record(s) for %d-%02d\n", n, year, month)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Payroll year")
	cmd.Flags().IntVar(&month, "month", 0, "Payroll month (1-12)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func workingDaysCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "working-days",
		Short: "Print the working-day calendar of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePeriod(year, month); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				info, err := a.Holiday.WorkingDays(ctx, year, month)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%d-%02d: %d working day(s), %d rest day(s), %d holiday(s)\n",
					year, month, info.WorkDays, info.RestDays, info.Holidays)
				for _, d := range info.Days {
					if d.Note != "" {
						fmt.Fprintf(out, "  %s  %-8s %s\n", d.Date, d.Type, d.Note)
						continue
					}
					fmt.Fprintf(out, "  %s  %s\n", d.Date, d.Type)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Calendar year")
	cmd.Flags().IntVar(&month, "month", 0, "Calendar month (1-12)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func bootstrapAdminCmd() *cobra.Command {
	var req user.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Create the first admin account when no users exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Role = string(user.RoleAdmin)
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				created, err := a.Auth.EnsureAdmin(ctx, req)
				if err != nil {
					return err
				}
				if !created {
					fmt.Fprintln(cmd.OutOrStdout(), "Users already exist, nothing to do")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %q created\n", req.Username)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "admin", "Admin username")
	cmd.Flags().StringVar(&req.Email, "email", "", "Admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func validatePeriod(year, month int) error {
	if errs := validator.ValidatePeriod(year, month); len(errs) > 0 {
		return errs
	}
	return nil
}
