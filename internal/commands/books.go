package commands

import (
	"fmt"
	"time"

	portssvc "github.com/SscSPs/bizledger/internal/core/ports/services"
	"github.com/SscSPs/bizledger/internal/dto"
	"github.com/spf13/cobra"
)

const cliUserID = "bizledger-admin"

func newSeedChartCommand(deps Deps) *cobra.Command {
	var businessID, userID string

	cmd := &cobra.Command{
		Use:   "seed-chart",
		Short: "Create the default chart of accounts for a business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				created, skipped, err := svc.Account.CreateDefaultChart(cmd.Context(), businessID, userID)
				if err != nil {
					return err
				}
				for _, acc := range created {
					fmt.Fprintf(cmd.OutOrStdout(), "created %s %s\n", acc.Code, acc.Name)
				}
				for _, code := range skipped {
					fmt.Fprintf(cmd.OutOrStdout(), "skipped %s (already exists)\n", code)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&businessID, "business", "", "business id (required)")
	_ = cmd.MarkFlagRequired("business")
	cmd.Flags().StringVar(&userID, "user", cliUserID, "user recorded as creator")

	return cmd
}

func newCheckBooksCommand(deps Deps) *cobra.Command {
	var businessID string

	cmd := &cobra.Command{
		Use:   "check-books",
		Short: "Report unbalanced entries, duplicate references and trial balance drift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return deps.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				report, err := svc.Reporting.CheckBooks(cmd.Context(), businessID)
				if err != nil {
					return err
				}
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
				if !report.Healthy() {
					return ErrBooksUnhealthy
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&businessID, "business", "", "business id (required)")
	_ = cmd.MarkFlagRequired("business")

	return cmd
}

func newTrialBalanceCommand(deps Deps) *cobra.Command {
	var businessID, asOf string
	var hideZero bool

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance of a business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var at *time.Time
			if asOf != "" {
				t, err := dto.ParseReportDate(asOf)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q, use YYYY-MM-DD: %w", asOf, err)
				}
				at = &t
			}
			return deps.withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
				report, err := svc.Reporting.TrialBalance(cmd.Context(), businessID, at)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), dto.ToTrialBalanceResponse(report, hideZero))
			})
		},
	}

	cmd.Flags().StringVar(&businessID, "business", "", "business id (required)")
	_ = cmd.MarkFlagRequired("business")
	cmd.Flags().StringVar(&asOf, "as-of", "", "report date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&hideZero, "hide-zero", false, "hide accounts with a zero balance")

	return cmd
}
