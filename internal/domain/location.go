package domain

import "strings"

// ComposeLocation joins the visible, non-empty parts of the address in
// city, state, country order.
func ComposeLocation(p PersonalInfo) string {
	parts := make([]string, 0, 3)
	if p.City != "" && p.ShowCity {
		parts = append(parts, p.City)
	}
	if p.State != "" && p.ShowState {
		parts = append(parts, p.State)
	}
	if p.Country != "" && p.ShowCountry {
		parts = append(parts, p.Country)
	}
	return strings.Join(parts, ", ")
}
