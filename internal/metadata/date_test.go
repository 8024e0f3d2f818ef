package metadata

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		// Month matching is case-insensitive.
		{"1 September 2025", "2025-09-01"},
		{"15 march 2024", "2024-03-15"},
		{"3 JULY 1999", "1999-07-03"},
		// Anything outside "D Month YYYY" passes through verbatim.
		{"September 1, 2025", "September 1, 2025"},
		{"2025-09-01", "2025-09-01"},
		{"yesterday", "yesterday"},
		{"1 Notamonth 2025", "1 Notamonth 2025"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
