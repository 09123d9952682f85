package domain

// AstroIdentity is the symbolic identity derived from BirthData.
type AstroIdentity struct {
	Lagna     string   `json:"lagna"`
	Rashi     string   `json:"rashi"`
	Nakshatra string   `json:"nakshatra"`
	Dasha     string   `json:"dasha"`
	Strengths []string `json:"strengths"`
}
