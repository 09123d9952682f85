package astro

import (
	"testing"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aarav() domain.BirthData {
	return domain.BirthData{
		Name:         "Aarav",
		DateOfBirth:  "1990-05-12",
		TimeOfBirth:  "14:30",
		PlaceOfBirth: "Mumbai",
	}
}

func TestSeed_CombinesNameDateAndTime(t *testing.T) {
	// 1990-05-12T00:00Z = 642470400000ms, "Aarav" = 5, "14:30" = 1430
	assert.Equal(t, int64(642470401435), Seed(aarav()))
}

func TestSeed_NameLengthInUTF16Units(t *testing.T) {
	b := aarav()
	b.Name = "आरव"
	// three code points, nine UTF-8 bytes
	assert.Equal(t, int64(642470401433), Seed(b))
	assert.Equal(t, "Virgo", DeriveIdentity(b).Rashi)

	b.Name = "🌙"
	assert.Equal(t, int64(642470401432), Seed(b), "a surrogate pair counts twice")
}

func TestDeriveIdentity_KnownProfile(t *testing.T) {
	id := DeriveIdentity(aarav())

	assert.Equal(t, "Capricorn", id.Lagna)
	assert.Equal(t, "Scorpio", id.Rashi)
	assert.Equal(t, "Ardra", id.Nakshatra)
	assert.Equal(t, "Saturn", id.Dasha)
}

func TestDeriveIdentity_Reproducible(t *testing.T) {
	first := DeriveIdentity(aarav())
	second := DeriveIdentity(aarav())

	assert.Equal(t, first, second, "identity including strengths must not vary between derivations")
}

func TestDeriveIdentity_StrengthsAreTwoDistinctTraits(t *testing.T) {
	inputs := []domain.BirthData{
		aarav(),
		{Name: "Meera", DateOfBirth: "1985-11-03", TimeOfBirth: "06:05", PlaceOfBirth: "Pune"},
		{Name: "Kabir", DateOfBirth: "2001-02-28", TimeOfBirth: "23:59", PlaceOfBirth: "Delhi"},
	}
	for _, b := range inputs {
		id := DeriveIdentity(b)
		require.Len(t, id.Strengths, 2, b.Name)
		assert.NotEqual(t, id.Strengths[0], id.Strengths[1], b.Name)
		for _, s := range id.Strengths {
			assert.Contains(t, Strengths, s)
		}
	}
}

func TestDeriveIdentity_LabelsAlwaysFromTables(t *testing.T) {
	inputs := []domain.BirthData{
		aarav(),
		// negative seed
		{Name: "A", DateOfBirth: "1900-01-01", TimeOfBirth: "00:00"},
		// zero seed
		{Name: "", DateOfBirth: "", TimeOfBirth: ""},
		// date and time fallbacks
		{Name: "Zoë", DateOfBirth: "not-a-date", TimeOfBirth: "noon"},
		{Name: "Long Name Here", DateOfBirth: "9999-12-31", TimeOfBirth: "23:59"},
		{Name: "Neg", DateOfBirth: "1969-12-31", TimeOfBirth: "-5:00"},
	}
	for _, b := range inputs {
		id := DeriveIdentity(b)
		assert.Contains(t, Rashis, id.Lagna)
		assert.Contains(t, Rashis, id.Rashi)
		assert.Contains(t, Nakshatras, id.Nakshatra)
		assert.Contains(t, Dashas, id.Dasha)
	}
}

func TestDeriveIdentity_InvalidDateFallsBackToEpoch(t *testing.T) {
	b := domain.BirthData{Name: "Ravi", DateOfBirth: "31/12/1990", TimeOfBirth: "10:00"}
	epoch := domain.BirthData{Name: "Ravi", DateOfBirth: "1970-01-01", TimeOfBirth: "10:00"}

	assert.Equal(t, Seed(epoch), Seed(b))
	assert.Equal(t, DeriveIdentity(epoch), DeriveIdentity(b))
}

func TestIndex_NegativeSeedStaysInRange(t *testing.T) {
	for _, seed := range []int64{-1, -13, -642470401435, 0, 7} {
		for _, k := range []int64{1, 3, 7, 13} {
			i := index(seed, k, 12)
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, 12)
		}
	}
}

func TestTimeNumber(t *testing.T) {
	cases := map[string]int64{
		"14:30":    1430,
		"09:05":    905,
		"14:30:15": 1430,
		"":         0,
		"noon":     0,
		" 7:15 ":   715,
	}
	for in, want := range cases {
		assert.Equal(t, want, timeNumber(in), "input %q", in)
	}
}

func TestDeriveIdentity_PlaceDoesNotAffectLabels(t *testing.T) {
	a := aarav()
	b := aarav()
	b.PlaceOfBirth = "Chennai"

	assert.Equal(t, DeriveIdentity(a), DeriveIdentity(b))
}
