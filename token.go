package token

import (
	"fmt"

	"lukechampine.com/uint128"
)

// One UNC is 10^24 yoctoUNC and one milliUNC is 10^21 yoctoUNC.
// A [uint128.Uint128] cannot be a Go constant, so the scales are
// package variables; they must never be mutated.
var (
	oneUnc      = uint128.From64(1_000_000_000_000).Mul64(1_000_000_000_000) // 10^24
	oneMilliUnc = uint128.From64(1_000_000_000_000).Mul64(1_000_000_000)     // 10^21
)

// Amount type represents a quantity of UNC tokens.
// It is stored as an exact unsigned 128-bit count of yoctoUNC, so the
// representable range is 0 to 2^128-1 yoctoUNC and there is no implicit
// fractional component.
// Its zero value corresponds to "0 UNC".
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	yocto uint128.Uint128 // yoctoUNC count
}

// FromYocto returns an amount equal to yocto yoctoUNC.
// See also method [Amount.Yocto].
func FromYocto(yocto uint128.Uint128) Amount {
	return Amount{yocto: yocto}
}

// FromYocto64 returns an amount equal to yocto yoctoUNC.
// See also constructor [FromYocto].
func FromYocto64(yocto uint64) Amount {
	return FromYocto(uint128.From64(yocto))
}

// NewFromMilliUnc returns an amount equal to milli milliUNC.
//
// NewFromMilliUnc returns an error if the yoctoUNC count overflows
// 128 bits, that is, if milli is greater than 340282366920938463.
func NewFromMilliUnc(milli uint64) (Amount, error) {
	n, ok := checkedMul(uint128.From64(milli), oneMilliUnc)
	if !ok {
		return Amount{}, fmt.Errorf("scaling %v milliUNC: %w", milli, errAmountOverflow)
	}
	return FromYocto(n), nil
}

// MustFromMilliUnc is like [NewFromMilliUnc] but panics if the amount
// cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustFromMilliUnc(milli uint64) Amount {
	a, err := NewFromMilliUnc(milli)
	if err != nil {
		panic(fmt.Sprintf("NewFromMilliUnc(%v) failed: %v", milli, err))
	}
	return a
}

// NewFromUnc returns an amount equal to unc whole UNC.
//
// NewFromUnc returns an error if the yoctoUNC count overflows 128 bits,
// that is, if unc is greater than 340282366920938.
func NewFromUnc(unc uint64) (Amount, error) {
	n, ok := checkedMul(uint128.From64(unc), oneUnc)
	if !ok {
		return Amount{}, fmt.Errorf("scaling %v UNC: %w", unc, errAmountOverflow)
	}
	return FromYocto(n), nil
}

// MustFromUnc is like [NewFromUnc] but panics if the amount cannot be
// constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustFromUnc(unc uint64) Amount {
	a, err := NewFromUnc(unc)
	if err != nil {
		panic(fmt.Sprintf("NewFromUnc(%v) failed: %v", unc, err))
	}
	return a
}

// Yocto returns the raw yoctoUNC count.
// See also constructor [FromYocto].
func (a Amount) Yocto() uint128.Uint128 {
	return a.yocto
}

// MilliUnc returns the amount converted to whole milliUNC.
// The conversion truncates, it does not round.
// See also constructor [NewFromMilliUnc].
func (a Amount) MilliUnc() uint128.Uint128 {
	return a.yocto.Div(oneMilliUnc)
}

// Unc returns the amount converted to whole UNC.
// The conversion truncates, it does not round.
// See also constructor [NewFromUnc].
func (a Amount) Unc() uint128.Uint128 {
	return a.yocto.Div(oneUnc)
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.yocto.IsZero()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// See also methods [Amount.Min], [Amount.Max].
func (a Amount) Cmp(b Amount) int {
	return a.yocto.Cmp(b.yocto)
}

// Min returns the smaller amount.
// See also method [Amount.Max].
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger amount.
// See also method [Amount.Min].
func (a Amount) Max(b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if the sum overflows 128 bits.
// See also method [Amount.SaturatingAdd].
func (a Amount) Add(b Amount) (Amount, error) {
	n, ok := checkedAdd(a.yocto, b.yocto)
	if !ok {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, errAmountOverflow)
	}
	return FromYocto(n), nil
}

// Sub returns the difference of amounts a and b.
//
// Sub returns an error if b is greater than a, as amounts cannot be
// negative.
// See also method [Amount.SaturatingSub].
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.yocto.Cmp(b.yocto) < 0 {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, errAmountUnderflow)
	}
	return FromYocto(a.yocto.Sub(b.yocto)), nil
}

// Mul returns the product of amount a and factor f.
//
// Mul returns an error if the product overflows 128 bits.
// See also method [Amount.SaturatingMul].
func (a Amount) Mul(f uint128.Uint128) (Amount, error) {
	n, ok := checkedMul(a.yocto, f)
	if !ok {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, f, errAmountOverflow)
	}
	return FromYocto(n), nil
}

// Quo returns the quotient of amount a and divisor d.
// The division truncates, it does not round.
//
// Quo returns an error if d is zero.
// See also method [Amount.SaturatingQuo].
func (a Amount) Quo(d uint128.Uint128) (Amount, error) {
	if d.IsZero() {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, d, errDivisionByZero)
	}
	return FromYocto(a.yocto.Div(d)), nil
}

// SaturatingAdd returns the sum of amounts a and b, clamping the result
// to the maximum representable yoctoUNC count instead of failing.
// See also method [Amount.Add].
func (a Amount) SaturatingAdd(b Amount) Amount {
	n, ok := checkedAdd(a.yocto, b.yocto)
	if !ok {
		return FromYocto(uint128.Max)
	}
	return FromYocto(n)
}

// SaturatingSub returns the difference of amounts a and b, clamping the
// result to zero instead of failing.
// See also method [Amount.Sub].
func (a Amount) SaturatingSub(b Amount) Amount {
	if a.yocto.Cmp(b.yocto) < 0 {
		return Amount{}
	}
	return FromYocto(a.yocto.Sub(b.yocto))
}

// SaturatingMul returns the product of amount a and factor f, clamping
// the result to the maximum representable yoctoUNC count instead of
// failing.
// See also method [Amount.Mul].
func (a Amount) SaturatingMul(f uint128.Uint128) Amount {
	n, ok := checkedMul(a.yocto, f)
	if !ok {
		return FromYocto(uint128.Max)
	}
	return FromYocto(n)
}

// SaturatingQuo returns the quotient of amount a and divisor d.
// The division truncates, it does not round.
//
// Unlike [Amount.Quo], division by zero returns the zero amount rather
// than an error or the maximum amount.
func (a Amount) SaturatingQuo(d uint128.Uint128) Amount {
	if d.IsZero() {
		return Amount{}
	}
	return FromYocto(a.yocto.Div(d))
}

// checkedAdd returns a+b, reporting overflow instead of panicking.
func checkedAdd(a, b uint128.Uint128) (uint128.Uint128, bool) {
	if b.Cmp(uint128.Max.Sub(a)) > 0 {
		return uint128.Zero, false
	}
	return a.Add(b), true
}

// checkedMul returns a*b, reporting overflow instead of panicking.
func checkedMul(a, b uint128.Uint128) (uint128.Uint128, bool) {
	if b.IsZero() {
		return uint128.Zero, true
	}
	if a.Cmp(uint128.Max.Div(b)) > 0 {
		return uint128.Zero, false
	}
	return a.Mul(b), true
}
