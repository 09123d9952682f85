package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/astro"
	"github.com/alexanderramin/astroveda/internal/cli/formatter"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/repository"
	"github.com/spf13/cobra"
)

var errNoProfile = errors.New("no chart yet: run `astroveda onboard` first")

func newIdentityCmd(app *App) *cobra.Command {
	var (
		birth  birthFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Show the astrological identity for birth details",
		Long: `Derives Lagna, Rashi, Nakshatra, Dasha and core strengths. With birth
flags the identity is computed for those details; without them the stored
chart is shown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profile domain.UserProfile
			if birth.changed(cmd.Flags()) {
				profile = domain.UserProfile{BirthData: birth.data()}
			} else {
				p, err := storedProfile(cmd, app)
				if err != nil {
					return err
				}
				profile = *p
			}

			id := identityOf(profile)
			if asJSON {
				return writeJSON(cmd, id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIdentity(profile, id))
			return nil
		},
	}

	birth.register(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// identityOf returns the profile's identity, deriving it when absent.
func identityOf(p domain.UserProfile) domain.AstroIdentity {
	if p.Identity != nil {
		return *p.Identity
	}
	return astro.DeriveIdentity(p.BirthData)
}

func storedProfile(cmd *cobra.Command, app *App) (*domain.UserProfile, error) {
	p, err := app.Session.Current(cmd.Context())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errNoProfile
	}
	return p, err
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
