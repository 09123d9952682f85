package cli

import (
	"fmt"

	"github.com/alexanderramin/astroveda/internal/cli/formatter"
	"github.com/alexanderramin/astroveda/internal/payment"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		limit  int
		prices bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show your plan and recent payments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if prices {
				fmt.Fprint(out, formatter.FormatPlans(payment.Plans()))
				return nil
			}

			payments, err := app.Gate.RecentPayments(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatPlanStatus(app.Gate.Plan(), payments, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "number of payments to list")
	cmd.Flags().BoolVar(&prices, "prices", false, "list plans and prices")
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset your chart and start onboarding again",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Session.Reset(cmd.Context(), all); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render("Chart reset."))
			if all {
				fmt.Fprintln(out, formatter.Dim("Plan forgotten. Payments stay in the ledger."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "also forget the purchased plan")
	return cmd
}
