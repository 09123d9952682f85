package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/spf13/pflag"
)

// birthFlags is the --name/--dob/--tob/--pob set shared by onboard and
// identity.
type birthFlags struct {
	name, dob, tob, pob string
}

func (f *birthFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "full name")
	fs.StringVar(&f.dob, "dob", "", "date of birth (YYYY-MM-DD)")
	fs.StringVar(&f.tob, "tob", "", "time of birth (HH:MM, 24h)")
	fs.StringVar(&f.pob, "pob", "", "place of birth")
}

// changed reports whether any birth flag was given on the command line.
func (f *birthFlags) changed(fs *pflag.FlagSet) bool {
	for _, n := range []string{"name", "dob", "tob", "pob"} {
		if fs.Changed(n) {
			return true
		}
	}
	return false
}

func (f *birthFlags) data() domain.BirthData {
	return domain.BirthData{
		Name:         strings.TrimSpace(f.name),
		DateOfBirth:  strings.TrimSpace(f.dob),
		TimeOfBirth:  strings.TrimSpace(f.tob),
		PlaceOfBirth: strings.TrimSpace(f.pob),
	}
}

// focusValue parses --focus case-insensitively against the known focuses.
type focusValue struct{ focus *domain.LifeFocus }

func (v focusValue) String() string {
	if v.focus == nil {
		return ""
	}
	return string(*v.focus)
}

func (v focusValue) Set(s string) error {
	for _, f := range domain.LifeFocuses {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			*v.focus = f
			return nil
		}
	}
	return fmt.Errorf("unknown focus %q (want one of %s)", s, focusList())
}

func (focusValue) Type() string { return "focus" }

// tierValue parses --tier as basic or premium.
type tierValue struct{ tier *domain.Tier }

func (v tierValue) String() string {
	if v.tier == nil {
		return ""
	}
	return string(*v.tier)
}

func (v tierValue) Set(s string) error {
	t, err := domain.ParseTier(s)
	if err != nil {
		return err
	}
	*v.tier = t
	return nil
}

func (tierValue) Type() string { return "tier" }

func focusList() string {
	names := make([]string, len(domain.LifeFocuses))
	for i, f := range domain.LifeFocuses {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
