package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/astroveda/internal/cli/formatter"
	"github.com/alexanderramin/astroveda/internal/service"
	"github.com/spf13/cobra"
)

const outputWidth = 78

func newPredictCmd(app *App) *cobra.Command {
	var (
		decision string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Get the reading for your chart and plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := storedProfile(cmd, app)
			if err != nil {
				return err
			}
			readings, err := app.readings()
			if err != nil {
				return err
			}

			stop := startSpinner(cmd, app, "Reading your chart…")
			var overview *service.Overview
			if cmd.Flags().Changed("decision") {
				overview, err = readings.Overview(cmd.Context(), *profile, decision)
			} else {
				overview = &service.Overview{}
				overview.Prediction, err = readings.Reading(cmd.Context(), *profile)
			}
			stop()
			if errors.Is(err, service.ErrPlanRequired) {
				return fmt.Errorf("%w: run `astroveda onboard` to choose a plan", err)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, overview)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatPrediction(overview.Prediction, app.Gate.Plan(), outputWidth))
			if overview.Simulation != nil {
				fmt.Fprintln(out, formatter.Header("Decision simulator"))
				fmt.Fprintln(out, formatter.FormatSimulation(overview.Simulation, outputWidth))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&decision, "decision", "", "also simulate this decision")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newSimulateCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   `simulate ["decision"]`,
		Short: "Compare acting now against waiting on a decision",
		Example: `  astroveda simulate "Should I move to Bengaluru for the new role?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := storedProfile(cmd, app)
			if err != nil {
				return err
			}
			readings, err := app.readings()
			if err != nil {
				return err
			}

			stop := startSpinner(cmd, app, "Weighing both paths…")
			result, err := readings.Simulate(cmd.Context(), *profile, strings.Join(args, " "))
			stop()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSimulation(result, outputWidth))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// startSpinner animates on stderr in a terminal and is a no-op otherwise.
func startSpinner(cmd *cobra.Command, app *App, message string) func() {
	if !app.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}
