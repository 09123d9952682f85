// Package astro maps birth data onto a fixed vocabulary of astrological
// labels. The mapping is arithmetic over the inputs, not an ephemeris
// calculation: identical inputs always yield identical labels, and
// distinct inputs may collide.
package astro

import (
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/alexanderramin/astroveda/internal/domain"
)

// DeriveIdentity computes the AstroIdentity for b. It never fails; an empty
// or unparsable date contributes 0 to the seed and an unparsable time of
// birth contributes 0 as well.
func DeriveIdentity(b domain.BirthData) domain.AstroIdentity {
	seed := Seed(b)
	return domain.AstroIdentity{
		Lagna:     Rashis[index(seed, lagnaMultiplier, len(Rashis))],
		Rashi:     Rashis[index(seed, rashiMultiplier, len(Rashis))],
		Nakshatra: Nakshatras[index(seed, nakshatraMultiplier, len(Nakshatras))],
		Dasha:     Dashas[index(seed, dashaMultiplier, len(Dashas))],
		Strengths: pickStrengths(seed),
	}
}

// Seed combines the name length in UTF-16 code units, the birth date as Unix milliseconds at UTC
// midnight, and the time of birth read as a number with its first colon
// removed ("14:30" → 1430).
func Seed(b domain.BirthData) int64 {
	return int64(nameLength(b.Name)) + dateMillis(b.DateOfBirth) + timeNumber(b.TimeOfBirth)
}

// nameLength counts UTF-16 code units, so "आरव" is 3 and "🌙" is 2.
func nameLength(name string) int {
	return len(utf16.Encode([]rune(name)))
}

// index returns |seed*k| mod size, always in [0, size).
func index(seed, k int64, size int) int {
	v := seed * k
	if v < 0 {
		v = -v
	}
	return int(v % int64(size))
}

func dateMillis(s string) int64 {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// timeNumber parses the leading integer of s after dropping its first colon.
// Trailing characters are ignored; no leading digits yields 0.
func timeNumber(s string) int64 {
	s = strings.Replace(strings.TrimSpace(s), ":", "", 1)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var n int64
	digits := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9' && digits < 12; i++ {
		n = n*10 + int64(s[i]-'0')
		digits++
	}
	if neg {
		return -n
	}
	return n
}

// pickStrengths shuffles the trait pool with a PRNG seeded from seed and
// keeps the first strengthCount entries.
func pickStrengths(seed int64) []string {
	pool := make([]string, len(Strengths))
	copy(pool, Strengths)
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:strengthCount]
}
