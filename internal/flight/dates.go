package flight

import "time"

// Departure dates are day-month-year; both separators seen in the wild are
// accepted.
var dateLayouts = []string{"02-01-2006", "02/01/2006"}

// IsValidDate reports whether s is a real calendar date in DD-MM-YYYY or
// DD/MM/YYYY form. time.Parse rejects impossible dates such as Feb 31.
func IsValidDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
