package token

import (
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// String implements the [fmt.Stringer] interface and returns a rounded,
// human-readable representation of the amount.
//
// The amount is rounded up to one of four precision tiers, never down
// and never to nearest, so the displayed value is never smaller than
// the value held:
//
//	| Amount                 | Example    |
//	| ---------------------- | ---------- |
//	| 0                      | 0 UNC      |
//	| below 0.001 UNC        | <0.001 UNC |
//	| 0.001 UNC to 0.999 UNC | 0.123 UNC  |
//	| 1 UNC and above        | 1.23 UNC   |
//
// See also method [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	switch {
	case a.yocto.IsZero():
		return "0 UNC"
	case a.yocto.Cmp(oneMilliUnc) < 0:
		return "<0.001 UNC"
	case a.yocto.Cmp(oneMilliUnc.Mul64(999)) <= 0:
		milli := ceilDiv(a.yocto, oneMilliUnc)
		return fmt.Sprintf("0.%03d UNC", milli)
	default:
		// Hundredths of UNC, so the quotient splits into the whole
		// part and a 2-digit fraction.
		cents := ceilDiv(a.yocto, oneMilliUnc.Mul64(10))
		return fmt.Sprintf("%d.%02d UNC", cents/100, cents%100)
	}
}

// ceilDiv returns ceil(n/d) for the formatter's power-of-ten divisors.
// The intermediate addition saturates, so the maximum representable
// count still formats instead of wrapping.
// The quotient fits in 64 bits for both formatter tiers.
func ceilDiv(n, d uint128.Uint128) uint64 {
	bump := d.Sub64(1)
	if n.Cmp(uint128.Max.Sub(bump)) > 0 {
		n = uint128.Max
	} else {
		n = n.Add(bump)
	}
	return n.Div(d).Lo
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example    | Description          |
//	| ---------- | ---------- | -------------------- |
//	| %s, %v     | 1.24 UNC   | Rounded amount       |
//	| %q         | "1.24 UNC" | Quoted rounded amount|
//	| %d         | 1234567    | Exact yoctoUNC count |
//
// Width and the '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = a.String()
	case 'q', 'Q':
		s = strconv.Quote(a.String())
	case 'd', 'D':
		s = a.yocto.String()
	default:
		fmt.Fprintf(state, "%%!%c(token.Amount=%s)", verb, a.String())
		return
	}
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	state.Write([]byte(s))
}
