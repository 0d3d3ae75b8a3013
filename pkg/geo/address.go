package geo

import (
	"regexp"
	"strings"
)

var (
	knownCities = []string{"Bengaluru", "Bangalore", "Chennai", "Mumbai", "Coimbatore", "Hyderabad", "Pune", "Delhi", "Kolkata", "Kochi", "Mysore"}
	adminTerms  = []string{"India", "Karnataka", "Tamil Nadu", "Maharashtra", "Telangana", "Kerala", "Urban", "Rural", "District", "Corporation", "Municipality", "Taluk", "Zone", "Region"}
	states      = []string{"karnataka", "tamil nadu", "maharashtra", "telangana", "kerala", "delhi", "andhra pradesh"}
	pincode     = regexp.MustCompile(`^(\d{6}|\d{3}\s\d{3})$`)
)

func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, t := range terms {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}

	return false
}

// SmartAddress shortens a geocoder address to "Area, City".
// Pincodes, state names and the country are dropped first.
func SmartAddress(full string) string {
	if strings.TrimSpace(full) == "" {
		return ""
	}

	var parts []string

	for _, p := range strings.Split(full, ",") {
		p = strings.TrimSpace(p)
		lower := strings.ToLower(p)

		if p == "" || pincode.MatchString(p) || lower == "india" {
			continue
		}

		isState := false
		for _, s := range states {
			if lower == s {
				isState = true

				break
			}
		}

		if !isState {
			parts = append(parts, p)
		}
	}

	cityIndex := -1

	for i, p := range parts {
		for _, c := range knownCities {
			if strings.EqualFold(p, c) {
				cityIndex = i

				break
			}
		}

		if cityIndex >= 0 {
			break
		}
	}

	if cityIndex < 0 {
		for i, p := range parts {
			if containsAnyFold(p, knownCities) {
				cityIndex = i

				break
			}
		}
	}

	if cityIndex < 0 {
		if len(parts) >= 2 {
			return parts[len(parts)-2] + ", " + parts[len(parts)-1]
		}

		return strings.Join(parts, ", ")
	}

	city := parts[cityIndex]

	for i := cityIndex - 1; i >= 0; i-- {
		if containsAnyFold(parts[i], adminTerms) || containsAnyFold(parts[i], knownCities) {
			continue
		}

		return parts[i] + ", " + city
	}

	return city
}
