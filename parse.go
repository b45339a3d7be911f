package token

import (
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

// Parse converts a string of the form "<number> <unit>" to an amount.
// The unit suffix starts at the first letter of the input and is
// case-insensitive:
//
//	| Unit               | Scale in yoctoUNC |
//	| ------------------ | ----------------- |
//	| YN, yUNC, yoctoUNC | 1                 |
//	| UNC, N             | 10^24             |
//
// The numeric part must consist of ASCII digits with at most one
// decimal point: no sign, no exponent, no grouping separators.
// The number of fractional digits may not exceed the decimal exponent
// of the unit's scale, so sub-yoctoUNC precision is rejected rather
// than silently dropped.
//
// Parse returns an error wrapping:
//   - [ErrInvalidUnit] if the unit suffix is missing or unrecognized;
//   - [ErrInvalidNumber] if the numeric part is malformed;
//   - [ErrLongWhole] if the whole part overflows 128 bits once scaled;
//   - [ErrLongFractional] if the fractional part is more precise than
//     the unit's scale.
//
// The unit is validated before the numeric part is inspected, so an
// unrecognized unit always wins over a malformed number.
func Parse(s string) (Amount, error) {
	t := strings.TrimSpace(s)
	i := strings.IndexFunc(t, isLetter)
	if i < 0 {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	var scale uint128.Uint128
	switch strings.ToUpper(t[i:]) {
	case "YN", "YUNC", "YOCTOUNC":
		scale = uint128.From64(1)
	case "UNC", "N":
		scale = oneUnc
	default:
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	yocto, err := parseDecimal(strings.TrimSpace(t[:i]), scale)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid token amount: %w", err)
	}
	return FromYocto(yocto), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return a
}

// parseDecimal converts a decimal numeric fragment to a yoctoUNC count,
// scaling the whole part by scale and the fractional part by the
// matching power of ten.
// The computation is exact: fractional digits that would not land on a
// whole number of yoctoUNC are rejected, never truncated.
func parseDecimal(frag string, scale uint128.Uint128) (uint128.Uint128, error) {
	whole, frac, hasDot := strings.Cut(frag, ".")
	if whole == "" || !isDigits(whole) || (hasDot && (frac == "" || !isDigits(frac))) {
		return uint128.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, frag)
	}

	// The fractional part is scaled by scale/10^len(frac), which must
	// be a whole number: each division strips one trailing zero digit
	// from the scale.
	fracScale := scale
	for range frac {
		q, r := fracScale.QuoRem64(10)
		if r != 0 {
			return uint128.Zero, fmt.Errorf("%w: %q", ErrLongFractional, frac)
		}
		fracScale = q
	}

	w, ok := parseDigits(whole)
	if !ok {
		return uint128.Zero, fmt.Errorf("%w: %q", ErrLongWhole, whole)
	}
	n, ok := checkedMul(w, scale)
	if !ok {
		return uint128.Zero, fmt.Errorf("%w: %q", ErrLongWhole, whole)
	}
	if frac != "" {
		// The fractional value is below scale by construction, so the
		// multiplication cannot overflow on its own.
		f, _ := parseDigits(frac)
		n, ok = checkedAdd(n, f.Mul(fracScale))
		if !ok {
			return uint128.Zero, fmt.Errorf("%w: %q", ErrLongWhole, whole)
		}
	}
	return n, nil
}

var maxDiv10 = uint128.Max.Div64(10)

// parseDigits converts a run of ASCII digits to a 128-bit count,
// reporting overflow instead of panicking.
func parseDigits(s string) (uint128.Uint128, bool) {
	var n uint128.Uint128
	for i := 0; i < len(s); i++ {
		if n.Cmp(maxDiv10) > 0 {
			return uint128.Zero, false
		}
		n = n.Mul64(10)
		d := uint64(s[i] - '0')
		if uint128.Max.Sub(n).Cmp64(d) < 0 {
			return uint128.Zero, false
		}
		n = n.Add64(d)
	}
	return n, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
