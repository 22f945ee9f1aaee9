package normalize

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNumber_LatinAmericanFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want float64
	}{
		{"5.251.930,33", 5251930.33},
		{"22.441,71", 22441.71},
		{"59,40%", 59.4},
		{"$ 1.234,50", 1234.5},
		{"US$ 99,9", 99.9},
		{"1.500", 1.5},
		{"1.234.567", 0},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"-3,5", -3.5},
		{"abc", 0},
		{"", 0},
		{nil, 0},
		{42.0, 42},
		{7, 7},
		{math.NaN(), 0},
	}
	for _, tc := range cases {
		if got := Number(tc.in); !approx(got, tc.want) {
			t.Fatalf("Number(%v) want=%v got=%v", tc.in, tc.want, got)
		}
	}
}

func TestFraction_Threshold(t *testing.T) {
	t.Parallel()

	if got := Fraction("59,40%"); !approx(got, 0.594) {
		t.Fatalf("Fraction(59,40%%) want=0.594 got=%v", got)
	}
	if got := Fraction(1.5); got != 1.5 {
		t.Fatalf("Fraction(1.5) want=1.5 got=%v", got)
	}
	if got := Fraction(1.0); got != 1.0 {
		t.Fatalf("Fraction(1) want=1 got=%v", got)
	}
	if got := Fraction(1.51); !approx(got, 0.0151) {
		t.Fatalf("Fraction(1.51) want=0.0151 got=%v", got)
	}
	if got := Fraction(0.8); got != 0.8 {
		t.Fatalf("Fraction(0.8) want=0.8 got=%v", got)
	}
	for _, n := range []float64{0, 0.2, 1, 1.5, 1.500001, 2, 80, 100, 250} {
		got := Fraction(n)
		want := n
		if n > 1.5 {
			want = n / 100
		}
		if got != want {
			t.Fatalf("Fraction(%v) want=%v got=%v", n, want, got)
		}
	}
}

func TestCount_RoundsAndClamps(t *testing.T) {
	t.Parallel()

	if got := Count("12,6"); got != 13 {
		t.Fatalf("Count(12,6) want=13 got=%d", got)
	}
	if got := Count("-4"); got != 0 {
		t.Fatalf("Count(-4) want=0 got=%d", got)
	}
	if got := Count("1.500"); got != 2 {
		t.Fatalf("Count(1.500) want=2 got=%d", got)
	}
	if got := Count("x"); got != 0 {
		t.Fatalf("Count(x) want=0 got=%d", got)
	}
}
