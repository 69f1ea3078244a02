package domain

var countries = []string{
	"India", "United States", "United Kingdom", "Canada", "Australia",
	"Germany", "France", "Singapore", "UAE", "Japan", "Other",
}

var statesByCountry = map[string][]string{
	"India":          {"Maharashtra", "Karnataka", "Tamil Nadu", "Delhi", "Telangana", "Gujarat", "West Bengal", "Uttar Pradesh", "Other"},
	"United States":  {"California", "New York", "Texas", "Washington", "Massachusetts", "Illinois", "Florida", "Other"},
	"United Kingdom": {"England", "Scotland", "Wales", "Northern Ireland", "Other"},
	"Canada":         {"Ontario", "British Columbia", "Quebec", "Alberta", "Other"},
	"Australia":      {"New South Wales", "Victoria", "Queensland", "Western Australia", "Other"},
	"Germany":        {"Bavaria", "Berlin", "Hamburg", "Hesse", "Other"},
	"France":         {"Île-de-France", "Provence-Alpes-Côte d'Azur", "Auvergne-Rhône-Alpes", "Other"},
	"Singapore":      {"Central", "East", "North", "North-East", "West"},
	"UAE":            {"Dubai", "Abu Dhabi", "Sharjah", "Other"},
	"Japan":          {"Tokyo", "Osaka", "Kyoto", "Other"},
	"Other":          {"Other"},
}

// Countries lists the countries offered by the contact form.
func Countries() []string {
	return append([]string(nil), countries...)
}

// StatesFor lists the states offered for country; nil when unknown.
func StatesFor(country string) []string {
	states, ok := statesByCountry[country]
	if !ok {
		return nil
	}
	return append([]string(nil), states...)
}
