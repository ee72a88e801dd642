package flight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skylane/flightsearch/internal/flight"
)

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid slash date", "15/10/2023", true},
		{"valid dash date", "15-10-2024", true},
		{"month out of range", "10/15/2023", false},
		{"no february 31st", "31/02/2023", false},
		{"empty string", "", false},
		{"garbage", "abc/def/ghij", false},
		{"mixed separators", "15-10/2023", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, flight.IsValidDate(tc.input))
		})
	}
}
