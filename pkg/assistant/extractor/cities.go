package extractor

import "strings"

// cityAlias maps one surface alias to its canonical city name. The table is
// ordered most-specific-first; containment scans accept the first hit, so
// "navi mumbai" has to sit above "mumbai".
type cityAlias struct {
	alias     string
	canonical string
}

var cityAliases = []cityAlias{
	{"navi mumbai", "Navi Mumbai"},
	{"new delhi", "Delhi"},
	{"mumbai", "Mumbai"},
	{"bombay", "Mumbai"},
	{"pune", "Pune"},
	{"poona", "Pune"},
	{"delhi", "Delhi"},
	{"bengaluru", "Bengaluru"},
	{"bangalore", "Bengaluru"},
	{"hyderabad", "Hyderabad"},
	{"chennai", "Chennai"},
	{"madras", "Chennai"},
	{"kolkata", "Kolkata"},
	{"calcutta", "Kolkata"},
	{"ahmedabad", "Ahmedabad"},
	{"surat", "Surat"},
	{"jaipur", "Jaipur"},
	{"lucknow", "Lucknow"},
	{"nagpur", "Nagpur"},
	{"nashik", "Nashik"},
	{"nasik", "Nashik"},
	{"aurangabad", "Aurangabad"},
	{"kolhapur", "Kolhapur"},
	{"solapur", "Solapur"},
	{"satara", "Satara"},
	{"shirdi", "Shirdi"},
	{"goa", "Goa"},
	{"panaji", "Goa"},
	{"indore", "Indore"},
}

// ResolveCity maps a captured location phrase to a canonical city name.
// Exact lowercase match wins; otherwise a bidirectional substring test runs
// over the table in order and the first hit is accepted. An unresolvable
// phrase yields the empty string and the slot stays unset. Short overlapping
// aliases can collide under containment; phrases under three characters are
// never containment-matched to keep the worst of that out.
func ResolveCity(raw string) string {
	phrase := strings.ToLower(strings.TrimSpace(raw))
	if phrase == "" {
		return ""
	}

	for _, c := range cityAliases {
		if c.alias == phrase {
			return c.canonical
		}
	}

	if len(phrase) < 3 {
		return ""
	}
	for _, c := range cityAliases {
		if strings.Contains(phrase, c.alias) || strings.Contains(c.alias, phrase) {
			return c.canonical
		}
	}
	return ""
}

// KnownCities lists the canonical city names in table order, deduplicated.
// The catalog seeder and the cities endpoint both read from this.
func KnownCities() []string {
	seen := make(map[string]bool, len(cityAliases))
	out := make([]string, 0, len(cityAliases))
	for _, c := range cityAliases {
		if !seen[c.canonical] {
			seen[c.canonical] = true
			out = append(out, c.canonical)
		}
	}
	return out
}
