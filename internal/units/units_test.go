package units

import (
	"math"
	"testing"
)

func TestHumanizeIdentityRange(t *testing.T) {
	for _, si := range []float64{1, 2.5, 42, 999, 999.99} {
		q := Humanize(si)
		if q.Value != si || q.Prefix != "" {
			t.Errorf("Humanize(%g) = %+v, want unscaled with no prefix", si, q)
		}
	}
}

func TestHumanizeBuckets(t *testing.T) {
	tests := []struct {
		si     float64
		value  float64
		prefix string
	}{
		{1500, 1.5, "k"},
		{2.5e6, 2.5, "M"},
		{4.2e9, 4.2, "G"},
		{1.496e11, 149.6, "G"},
		{0.25, 250, "m"},
		{0.01, 10, "m"},
		{3e-7, 300, "n"},
		{5e-23, 50, "y"},
		{7e22, 70, "Z"},
	}

	for _, tt := range tests {
		q := Humanize(tt.si)
		if math.Abs(q.Value-tt.value) > 1e-9*tt.value || q.Prefix != tt.prefix {
			t.Errorf("Humanize(%g) = %+v, want {%g %q}", tt.si, q, tt.value, tt.prefix)
		}
	}
}

func TestHumanizeCollapseTiers(t *testing.T) {
	for _, si := range []float64{1e24, 3e26, 5e30} {
		q := Humanize(si)
		if q.Prefix != "Y" {
			t.Errorf("Humanize(%g) prefix = %q, want Y", si, q.Prefix)
		}
		if math.Abs(q.Value-si/1e9) > 1e-9*q.Value {
			t.Errorf("Humanize(%g) value = %g, want %g", si, q.Value, si/1e9)
		}
	}

	for _, si := range []float64{1e-24, 3e-26, 5e-30} {
		q := Humanize(si)
		if q.Prefix != "y" {
			t.Errorf("Humanize(%g) prefix = %q, want y", si, q.Prefix)
		}
		if math.Abs(q.Value-si*1e9) > 1e-9*math.Abs(q.Value) {
			t.Errorf("Humanize(%g) value = %g, want %g", si, q.Value, si*1e9)
		}
	}
}

func TestHumanizeRoundTrip(t *testing.T) {
	exps := map[string]int{
		"y": -24, "z": -21, "a": -18, "f": -15, "p": -12, "n": -9,
		"u": -6, "m": -3, "": 0, "k": 3, "M": 6, "G": 9,
		"T": 12, "P": 15, "E": 18, "Z": 21, "Y": 24,
	}

	for _, si := range []float64{3.7e-20, 8.8e-5, 0.042, 12, 9500, 6.1e14, 2.2e19} {
		q := Humanize(si)
		back := q.Value * math.Pow(10, float64(exps[q.Prefix]))
		if math.Abs(back-si) > 1e-9*si {
			t.Errorf("round trip of %g via %+v gave %g", si, q, back)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{3600, "1 h 0 m"},
		{86400, "1 d 0 h"},
		{2 * Year, "2 y 0 m"},
		{Month*3 + Day*12, "3 m 12 d"},
		{Hour*5 + Minute*40, "5 h 40 m"},
		{90, "1 min 30.0 s"},
		{30, "30.00 s"},
		{0.25, "250.00 ms"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%g) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
