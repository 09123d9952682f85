package astro

// Rashis is the 12-sign zodiac table, used for both lagna and rashi.
var Rashis = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Nakshatras is the first ten of the traditional 27 lunar asterisms.
var Nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
}

// Dashas is the planetary-period table in Vimshottari order.
var Dashas = []string{
	"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury",
}

// Strengths is the trait pool; two are assigned to every identity.
var Strengths = []string{"Intuition", "Resilience", "Strategic Thinking"}

// Multipliers applied to the seed before indexing each table.
const (
	rashiMultiplier     = 1
	lagnaMultiplier     = 3
	nakshatraMultiplier = 7
	dashaMultiplier     = 13
)

// strengthCount is how many traits are drawn from Strengths.
const strengthCount = 2
