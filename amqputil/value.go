// Package amqputil adapts the AMQP 1.0 codec for the functions host
// side-channel: decoding host-framed messages and encoding typed
// property maps that the host's .NET AMQP decoder accepts.
package amqputil

import (
	"fmt"
	"math/big"
	"strings"
)

// Type tags the AMQP wire type a property value is encoded as.
type Type string

// The closed set of property types understood by the host.
const (
	TypeNull           Type = "null"
	TypeBoolean        Type = "boolean"
	TypeByte           Type = "byte" // unsigned 8-bit
	TypeSByte          Type = "sbyte"
	TypeInt16          Type = "int16"
	TypeUint16         Type = "uint16"
	TypeInt32          Type = "int32"
	TypeUint32         Type = "uint32"
	TypeInt64          Type = "int64"
	TypeUint64         Type = "uint64"
	TypeSingle         Type = "single"
	TypeDouble         Type = "double"
	TypeDecimal        Type = "decimal"
	TypeChar           Type = "char"
	TypeString         Type = "string"
	TypeGUID           Type = "guid"
	TypeURI            Type = "uri"
	TypeDatetime       Type = "datetime"
	TypeDatetimeOffset Type = "datetimeoffset"
	TypeTimespan       Type = "timespan"
	TypeStream         Type = "stream"
	TypeArray          Type = "array"
)

// Value is an AMQP-typed scalar: a Go value paired with the wire type
// it encodes as.
type Value struct {
	Type  Type
	Value interface{}
}

// Null returns the null value.
func Null() Value {
	return Value{Type: TypeNull}
}

// Long wraps v as an AMQP long. 64-bit values must travel as
// long/ulong, never as double, to stay decodable on the .NET side.
func Long(v int64) Value {
	return Value{Type: TypeInt64, Value: v}
}

// ULong wraps v as an AMQP ulong.
func ULong(v uint64) Value {
	return Value{Type: TypeUint64, Value: v}
}

// String wraps v as an AMQP string.
func String(v string) Value {
	return Value{Type: TypeString, Value: v}
}

// Binary wraps v as AMQP binary.
func Binary(v []byte) Value {
	return Value{Type: TypeStream, Value: v}
}

// Decimal128 wraps d as an AMQP decimal128.
func Decimal128(d Decimal) Value {
	return Value{Type: TypeDecimal, Value: d}
}

// Decimal is a fixed-point decimal: Unscaled * 10^-Scale.
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

// String renders the decimal in plain notation.
func (d Decimal) String() string {
	if d.Unscaled == nil {
		return "0"
	}
	s := d.Unscaled.String()
	if d.Scale <= 0 {
		return s + strings.Repeat("0", int(-d.Scale))
	}
	neg := ""
	if strings.HasPrefix(s, "-") {
		neg, s = "-", s[1:]
	}
	if int(d.Scale) >= len(s) {
		s = strings.Repeat("0", int(d.Scale)-len(s)+1) + s
	}
	p := len(s) - int(d.Scale)
	return fmt.Sprintf("%s%s.%s", neg, s[:p], s[p:])
}
