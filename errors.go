package token

import "errors"

// Parsing errors wrap one of the exported sentinels below, so callers
// can classify a failure with [errors.Is] while the message carries the
// offending input.
var (
	// ErrInvalidNumber indicates a malformed numeric part: a sign, an
	// empty or missing whole part, more than one decimal point, or any
	// character other than an ASCII digit.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrLongWhole indicates a whole part that overflows 128 bits once
	// scaled to yoctoUNC.
	ErrLongWhole = errors.New("too long whole part")

	// ErrLongFractional indicates a fractional part with more digits
	// than the unit's scale supports.
	ErrLongFractional = errors.New("too long fractional part")

	// ErrInvalidUnit indicates a missing or unrecognized unit suffix.
	ErrInvalidUnit = errors.New("invalid token unit")
)

var (
	errAmountOverflow  = errors.New("token amount overflow")
	errAmountUnderflow = errors.New("token amount underflow")
	errDivisionByZero  = errors.New("division by zero")
)
