package token

import (
	"database/sql/driver"
	"fmt"

	"github.com/invopop/jsonschema"
	"lukechampine.com/uint128"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The value must be a string of decimal digits holding the yoctoUNC
// count.
// See also constructor [FromYocto].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*a, err = parseYocto(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted string of decimal digits holding
// the yoctoUNC count, so the value survives JSON implementations that
// read numbers as 64-bit floats.
// See also method [Amount.Yocto].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	s := a.yocto.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The text must be a string of decimal digits holding the yoctoUNC
// count.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = parseYocto(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends a string of decimal digits holding the
// yoctoUNC count.
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (a Amount) AppendText(text []byte) ([]byte, error) {
	return append(text, a.yocto.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a string of decimal digits holding the
// yoctoUNC count.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.yocto.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The data must be exactly 16 bytes holding the yoctoUNC count as a
// little-endian integer.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (a *Amount) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("unmarshaling %T: invalid data length %v", Amount{}, len(data))
	}
	*a = FromYocto(uint128.FromBytes(data))
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary always appends 16 bytes holding the yoctoUNC count as a
// little-endian integer.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (a Amount) AppendBinary(data []byte) ([]byte, error) {
	var buf [16]byte
	a.yocto.PutBytes(buf[:])
	return append(data, buf[:]...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns 16 bytes holding the yoctoUNC count as a
// little-endian integer.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (a Amount) MarshalBinary() ([]byte, error) {
	data := make([]byte, 16)
	a.yocto.PutBytes(data)
	return data, nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (a *Amount) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*a, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Amount{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a string of decimal digits holding
// the yoctoUNC count.
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (a Amount) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, a.bsonString(), nil
}

// parseBSONString parses a BSON string to an amount.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Amount, error) {
	if len(data) < 4 {
		return Amount{}, fmt.Errorf("%w: invalid data length %v", ErrInvalidNumber, len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u))
	if l < 1 || len(data) < l+4 {
		return Amount{}, fmt.Errorf("%w: invalid string length %v", ErrInvalidNumber, l)
	}
	if data[l+4-1] != 0 {
		return Amount{}, fmt.Errorf("%w: invalid null terminator %v", ErrInvalidNumber, data[l+4-1])
	}
	return parseYocto(string(data[4 : l+4-1]))
}

// bsonString returns the BSON string representation of the yoctoUNC
// count.
// The byte order of the result is little-endian.
func (a Amount) bsonString() []byte {
	s := a.yocto.String()
	l := len(s) + 1
	data := make([]byte, 4+l)
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	copy(data[4:], s)
	data[4+l-1] = 0
	return data
}

// Scan implements the [sql.Scanner] interface.
// String and []byte values must be strings of decimal digits holding
// the yoctoUNC count; int64 values must be non-negative.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = parseYocto(value)
	case []byte:
		*a, err = parseYocto(string(value))
	case int64:
		if value < 0 {
			err = fmt.Errorf("%w: %v", ErrInvalidNumber, value)
		} else {
			*a = FromYocto64(uint64(value))
		}
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Amount{}, NullAmount{}, Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns a string of decimal digits holding the yoctoUNC
// count.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.yocto.String(), nil
}

// JSONSchema implements the custom schema interface of the
// [jsonschema] package.
// The JSON representation of an amount is described as an opaque string
// of decimal digits, matching [Amount.MarshalJSON].
//
// [jsonschema]: https://pkg.go.dev/github.com/invopop/jsonschema
func (Amount) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    "string",
		Pattern: "^[0-9]+$",
		Title:   "UNC token amount in yoctoUNC",
	}
}

// parseYocto parses a string of decimal digits as a raw yoctoUNC count.
func parseYocto(s string) (Amount, error) {
	if s == "" || !isDigits(s) {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	n, ok := parseDigits(s)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q", ErrLongWhole, s)
	}
	return FromYocto(n), nil
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is used only for transferring amounts from/to a database.
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Amount.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Amount.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}
