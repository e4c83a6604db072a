// internal/search/reputation.go
package search

// defaultCompanyRating is used for companies not in the reputation table.
const defaultCompanyRating = 3.5

// companyReputation maps well-known employers to a 1.0-5.0 rating. The
// rating drives interview difficulty downstream.
var companyReputation = map[string]float64{
	// FAANG and top tech companies
	"Google": 5.0, "Apple": 5.0, "Meta": 5.0, "Amazon": 4.8, "Netflix": 4.9,
	"Microsoft": 4.9, "Tesla": 4.7, "SpaceX": 4.8, "OpenAI": 4.9, "Anthropic": 4.8,

	// Other major tech companies
	"Uber": 4.5, "Airbnb": 4.6, "Stripe": 4.7, "Spotify": 4.5, "Slack": 4.4,
	"Zoom": 4.3, "Dropbox": 4.4, "Twitter": 4.2, "LinkedIn": 4.6, "Salesforce": 4.3,

	// Established companies
	"IBM": 4.0, "Oracle": 3.9, "Intel": 4.1, "Cisco": 4.0, "Adobe": 4.2,
	"VMware": 4.0, "ServiceNow": 4.1, "Workday": 4.0, "Palantir": 4.3,

	// Financial tech
	"Goldman Sachs": 4.4, "JPMorgan": 4.2, "Morgan Stanley": 4.3, "Citadel": 4.6,
	"Two Sigma": 4.5, "Jane Street": 4.7, "DE Shaw": 4.6,

	// Consulting
	"McKinsey": 4.5, "BCG": 4.4, "Bain": 4.4, "Deloitte": 4.0, "Accenture": 3.8,
}

// companyRating resolves a company name to its reputation rating.
func companyRating(company string) float64 {
	if rating, ok := companyReputation[company]; ok {
		return rating
	}
	return defaultCompanyRating
}
