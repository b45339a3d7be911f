/*
Package token implements amounts of the UNC token as exact counts of
yoctoUNC.

# Features

  - Immutable amounts, ensuring safe usage across multiple goroutines
  - Exact unsigned 128-bit representation with no hidden rounding
  - Checked and saturating arithmetic over the yoctoUNC count
  - Parsing of human-written amounts with a unit suffix
  - Rounded-up, tiered display formatting
  - Text, JSON, binary, BSON, and SQL representations

# Representation

An [Amount] wraps a single unsigned 128-bit integer, the count of
yoctoUNC (1 UNC = 10^24 yoctoUNC, 1 milliUNC = 10^21 yoctoUNC).
There is no fractional component: constructors and [Parse] either map
the input onto a whole number of yoctoUNC or fail, and arithmetic never
loses precision silently.
The representable range is 0 to 2^128-1 yoctoUNC.

# Operations

Checked arithmetic ([Amount.Add], [Amount.Sub], [Amount.Mul],
[Amount.Quo]) returns an error on overflow, underflow, or division by
zero.
Saturating arithmetic ([Amount.SaturatingAdd], [Amount.SaturatingSub],
[Amount.SaturatingMul]) clamps at the bounds of the 128-bit range
instead; [Amount.SaturatingQuo] returns the zero amount when the
divisor is zero.

# Parsing

[Parse] reads a decimal number followed by a case-insensitive unit
suffix, for example "0.123456 UNC" or "123456 YN".
The unit determines the scale; fractional digits beyond the unit's
scale are rejected, so a parsed amount is always exact.

# Formatting

[Amount.String] rounds up to one of four display tiers ("0 UNC",
"<0.001 UNC", three fractional digits below 1 UNC, two above), so the
rendered text never understates the amount held.
Formatting discards precision; parsing the rendered text does not, in
general, return the original count.

# Errors

Parsing failures wrap the exported sentinel errors [ErrInvalidNumber],
[ErrLongWhole], [ErrLongFractional], and [ErrInvalidUnit], and carry
the offending input in the message.
Arithmetic methods return errors or clamp, depending on the variant;
no operation panics except the Must constructors.
*/
package token
