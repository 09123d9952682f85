package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/astroveda/internal/cli/formatter"
	"github.com/alexanderramin/astroveda/internal/payment"
	"github.com/alexanderramin/astroveda/internal/repository"
	"github.com/alexanderramin/astroveda/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services CLI commands run against.
type App struct {
	Gate     service.PlanGate
	Session  service.SessionService
	Checkout payment.Checkout

	// Readings is nil when no LLM endpoint is configured.
	Readings service.ReadingService

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	Now           func() time.Time
}

var errReadingsDisabled = errors.New("readings are disabled: set ASTROVEDA_LLM_API_KEY")

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) readings() (service.ReadingService, error) {
	if a.Readings == nil {
		return nil, errReadingsDisabled
	}
	return a.Readings, nil
}

// NewRootCmd creates the top-level "astroveda" command. Run bare in a
// terminal it opens onboarding or the dashboard; otherwise it prints the
// stored chart.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "astroveda",
		Short:         "Vedic astrology readings and decision simulations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.Gate.Load(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.interactive() {
				return runTUI(cmd, app, false)
			}
			return runSummary(cmd, app)
		},
	}

	root.AddCommand(
		newOnboardCmd(app),
		newIdentityCmd(app),
		newPredictCmd(app),
		newSimulateCmd(app),
		newPlanCmd(app),
		newResetCmd(app),
	)
	return root
}

func runSummary(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()
	profile, err := app.Session.Current(cmd.Context())
	if errors.Is(err, repository.ErrNotFound) {
		fmt.Fprintln(out, formatter.Dim("No chart yet."))
		fmt.Fprintln(out, "Run `astroveda onboard --name ... --dob YYYY-MM-DD --tob HH:MM --pob ... --tier basic` to create one.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatIdentity(*profile, identityOf(*profile)))
	fmt.Fprintln(out, formatter.Field("Plan", formatter.TierBadge(app.Gate.Plan())))
	return nil
}
