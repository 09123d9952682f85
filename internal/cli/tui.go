package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/repository"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runTUI alternates between onboarding and the dashboard until the user
// quits. Resetting the chart from the dashboard returns to onboarding.
func runTUI(cmd *cobra.Command, app *App, startFresh bool) error {
	ctx := cmd.Context()
	for {
		var profile *domain.UserProfile
		if !startFresh {
			p, err := app.Session.Current(ctx)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			profile = p
		}
		startFresh = false

		if profile == nil {
			om := newOnboardModel(ctx, app)
			if err := runProgram(cmd, om); err != nil {
				return err
			}
			if om.profile == nil {
				return nil
			}
			profile = om.profile
		}

		dm := newDashboardModel(ctx, app, *profile)
		if err := runProgram(cmd, dm); err != nil {
			return err
		}
		if !dm.chartReset {
			return nil
		}
	}
}

func runProgram(cmd *cobra.Command, model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
