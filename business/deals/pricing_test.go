package deals

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"$100.00", 10000},
		{"$75.00", 7500},
		{"$200", 20000},
		{"1,234.56", 123456},
		{"99", 9900},
		{"0.99", 99},
		{"USD 49.50", 4950},
		{"", 0},
		{"free", 0},
		{"call us", 0},
		{"1.2.3", 0},
		{"-50", 5000}, // sign is not a price character
	}

	for _, tc := range cases {
		if got := ParsePrice(tc.in); got != tc.want {
			t.Fatalf("ParsePrice(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePriceNeverNegative(t *testing.T) {
	inputs := []string{"$-10", "abc", "-0.01", "(12.50)", "!!!", "9999999.99"}
	for _, in := range inputs {
		if got := ParsePrice(in); got < 0 {
			t.Fatalf("ParsePrice(%q) = %d, want non-negative", in, got)
		}
	}
}
