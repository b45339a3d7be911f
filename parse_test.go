package token

import (
	"errors"
	"strings"
	"testing"

	"lukechampine.com/uint128"
)

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want uint128.Uint128
		}{
			{"123456 YN", uint128.From64(123456)},
			{"0 yUNC", uint128.Zero},
			{"1 yoctoUNC", uint128.From64(1)},
			{"1 N", oneUnc},
			{"1 unc", oneUnc},
			{"1 Unc", oneUnc},
			{"1UNC", oneUnc},
			{"  1 UNC  ", oneUnc},
			{"0.001 UNC", oneMilliUnc},
			{"0.123456 unc", uint128.From64(123456).Mul64(1_000_000_000_000_000_000)},
			{"11.123456 unc", uint128.From64(11123456).Mul64(1_000_000_000_000_000_000)},
			{"1.000000000000000000000001 UNC", oneUnc.Add64(1)},
			{"340282366920938463463374607431768211455 YN", uint128.Max},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if got.Yocto() != tt.want {
				t.Errorf("Parse(%q) = %v yoctoUNC, want %v", tt.s, got.Yocto(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
			frag string
		}{
			"empty input":        {"", ErrInvalidUnit, `""`},
			"no unit":            {"0", ErrInvalidUnit, `"0"`},
			"no unit whole":      {"100", ErrInvalidUnit, `"100"`},
			"unknown unit":       {"100 UAH", ErrInvalidUnit, `"100 UAH"`},
			"unknown unit 2":     {"0 pas", ErrInvalidUnit, `"0 pas"`},
			"trailing dot":       {"100.55.", ErrInvalidUnit, `"100.55."`},
			"double dot":         {"1.1.1 UNC", ErrInvalidNumber, `"1.1.1"`},
			"empty fraction":     {"1. UNC", ErrInvalidNumber, `"1."`},
			"space after dot":    {"1. 0 unc", ErrInvalidNumber, `"1. 0"`},
			"internal space":     {"1 000 UNC", ErrInvalidNumber, `"1 000"`},
			"negative":           {"-1 UNC", ErrInvalidNumber, `"-1"`},
			"plus sign":          {"+1 UNC", ErrInvalidNumber, `"+1"`},
			"bare dot":           {".055 YN", ErrInvalidNumber, `".055"`},
			"missing number":     {"UNC", ErrInvalidNumber, `""`},
			"long fractional":    {"100.1111122222333 YN", ErrLongFractional, `"1111122222333"`},
			"25 digit fraction":  {"0.1234567890123456789012345 UNC", ErrLongFractional, `"1234567890123456789012345"`},
			"long whole scaled":  {"340282366920939 UNC", ErrLongWhole, `"340282366920939"`},
			"long whole raw":     {"340282366920938463463374607431768211456 YN", ErrLongWhole, `"340282366920938463463374607431768211456"`},
			"overflow with frac": {"340282366920938.9 UNC", ErrLongWhole, `"340282366920938"`},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(tt.s)
				if err == nil {
					t.Fatalf("Parse(%q) did not fail", tt.s)
				}
				if !errors.Is(err, tt.want) {
					t.Errorf("Parse(%q) = %v, want %v", tt.s, err, tt.want)
				}
				if !strings.Contains(err.Error(), tt.frag) {
					t.Errorf("Parse(%q) error %q does not carry %s", tt.s, err, tt.frag)
				}
			})
		}
	})
}

// The unit suffix is validated before the numeric part, so an
// unrecognized unit wins even when the number is also malformed.
// The original Rust crate's own tests expected numeric errors for
// inputs whose suffix its unit table does not recognize ("ynear");
// this package deliberately resolves that inconsistency in favor of
// the unit check.
func TestParse_UnitBeforeNumber(t *testing.T) {
	tests := []string{
		"100.1111122222333 YNEAR",
		".055 ynear",
		"1.1.1 Near",
	}
	for _, s := range tests {
		_, err := Parse(s)
		if !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("Parse(%q) = %v, want %v", s, err, ErrInvalidUnit)
		}
	}
}

func TestMustParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got := MustParse("1000 YN")
		want := FromYocto64(1000)
		if got != want {
			t.Errorf("MustParse(\"1000 YN\") = %q, want %q", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\"1 ETH\") did not panic")
			}
		}()
		MustParse("1 ETH")
	})
}

func TestParseDecimal(t *testing.T) {
	// Scales other than the two unit scales, to pin down the
	// fractional-digit bound: the limit is the number of trailing zero
	// digits of the scale, not its magnitude.
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			frag  string
			scale uint128.Uint128
			want  uint128.Uint128
		}{
			{"0", uint128.From64(1), uint128.Zero},
			{"7", uint128.From64(1), uint128.From64(7)},
			{"7", uint128.From64(100), uint128.From64(700)},
			{"7.5", uint128.From64(100), uint128.From64(750)},
			{"7.55", uint128.From64(100), uint128.From64(755)},
			{"0.5", uint128.From64(10), uint128.From64(5)},
			{"007.055", uint128.From64(1000), uint128.From64(7055)},
		}
		for _, tt := range tests {
			got, err := parseDecimal(tt.frag, tt.scale)
			if err != nil {
				t.Errorf("parseDecimal(%q, %v) failed: %v", tt.frag, tt.scale, err)
				continue
			}
			if got != tt.want {
				t.Errorf("parseDecimal(%q, %v) = %v, want %v", tt.frag, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			frag  string
			scale uint128.Uint128
			want  error
		}{
			{"7.555", uint128.From64(100), ErrLongFractional},
			{"0.5", uint128.From64(1), ErrLongFractional},
			{"0.5", uint128.From64(25), ErrLongFractional},
			{"", uint128.From64(1), ErrInvalidNumber},
			{".", uint128.From64(1), ErrInvalidNumber},
			{"1e5", uint128.From64(1), ErrInvalidNumber},
		}
		for _, tt := range tests {
			_, err := parseDecimal(tt.frag, tt.scale)
			if !errors.Is(err, tt.want) {
				t.Errorf("parseDecimal(%q, %v) = %v, want %v", tt.frag, tt.scale, err, tt.want)
			}
		}
	})
}
