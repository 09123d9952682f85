package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/cli/formatter"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/onboarding"
	"github.com/alexanderramin/astroveda/internal/payment"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	var (
		birth birthFlags
		focus = domain.DefaultLifeFocus
		tier  domain.Tier
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create your chart and choose a plan",
		Long: `Walks through name, life focus, date, time and place of birth, then
the payment gate. In a terminal with no flags the steps are interactive
forms; otherwise every value comes from flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.interactive() && !birth.changed(cmd.Flags()) {
				return runTUI(cmd, app, true)
			}
			if tier == domain.PlanNone {
				return fmt.Errorf("--tier is required (basic or premium)")
			}

			profile, err := onboardFromFlags(cmd.Context(), app, birth.data(), focus, tier)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatIdentity(profile, identityOf(profile)))
			fmt.Fprintln(out, formatter.Field("Plan", formatter.TierBadge(app.Gate.Plan())))
			return nil
		},
	}

	birth.register(cmd.Flags())
	cmd.Flags().Var(focusValue{&focus}, "focus", "life focus: "+focusList())
	cmd.Flags().Var(tierValue{&tier}, "tier", "plan to buy: basic or premium")
	return cmd
}

// onboardFromFlags drives the machine through every step with values that
// were all supplied up front.
func onboardFromFlags(ctx context.Context, app *App, b domain.BirthData, focus domain.LifeFocus, tier domain.Tier) (domain.UserProfile, error) {
	m := onboarding.New()
	steps := []func(){
		func() { m.SetName(b.Name) },
		func() { m.SetFocus(focus) },
		func() { m.SetDateOfBirth(b.DateOfBirth) },
		func() { m.SetTimeOfBirth(b.TimeOfBirth) },
		func() { m.SetPlaceOfBirth(b.PlaceOfBirth) },
	}
	for _, set := range steps {
		set()
		if err := m.Next(); err != nil {
			return domain.UserProfile{}, err
		}
	}

	paid, err := checkout(ctx, app, tier)
	if err != nil {
		return domain.UserProfile{}, err
	}
	profile, err := m.Finish(paid)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if err := app.Session.Finalize(ctx, profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// checkout runs the payment collaborator and records the verified result.
// On any error the plan is unchanged.
func checkout(ctx context.Context, app *App, tier domain.Tier) (domain.Tier, error) {
	conf, err := app.Checkout.Checkout(ctx, tier)
	if err != nil {
		return domain.PlanNone, err
	}
	if err := app.Gate.Record(ctx, conf); err != nil {
		return domain.PlanNone, err
	}
	return conf.Tier, nil
}

// describeCheckoutError turns checkout failures into a line for the
// payment step.
func describeCheckoutError(err error) string {
	switch {
	case errors.Is(err, payment.ErrCheckoutCancelled):
		return "Payment cancelled. Choose a plan to try again."
	case errors.Is(err, payment.ErrInvalidSignature), errors.Is(err, payment.ErrAmountMismatch),
		errors.Is(err, payment.ErrOrderMismatch), errors.Is(err, payment.ErrUnknownOrder):
		return "Payment could not be verified. You have not been charged a plan."
	default:
		return "Payment failed: " + err.Error()
	}
}
