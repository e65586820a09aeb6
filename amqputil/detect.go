package amqputil

import (
	"fmt"
	"math"
	"math/big"
	"net/url"
	"reflect"
	"regexp"
	"time"
	"unicode/utf8"
)

// UnsupportedTypeError reports a property value no AMQP type could be
// detected for, attributing it to the offending key.
type UnsupportedTypeError struct {
	Key      string
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported value of type %s for property %q", e.TypeName, e.Key)
}

var (
	guidRE     = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	timespanRE = regexp.MustCompile(`^-?(\d+\.)?(\d{2}:)?(\d{2}:)?\d{2}(\.\d{1,7})?$`)
)

var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
}

// Detect picks the AMQP wire type for an arbitrary property value.
// The key is only used for error attribution.
//
// Integers always take the narrowest type their value fits, regardless
// of the Go type: 2 encodes as an AMQP byte, not int16 or long.
// Receivers must widen on decode.
func Detect(key string, v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Value{Type: TypeBoolean, Value: x}, nil
	case int:
		return detectInt(int64(x)), nil
	case int8:
		return detectInt(int64(x)), nil
	case int16:
		return detectInt(int64(x)), nil
	case int32:
		return detectInt(int64(x)), nil
	case int64:
		return detectInt(x), nil
	case uint:
		return detectUint(uint64(x)), nil
	case uint8:
		return detectUint(uint64(x)), nil
	case uint16:
		return detectUint(uint64(x)), nil
	case uint32:
		return detectUint(uint64(x)), nil
	case uint64:
		return detectUint(x), nil
	case float32:
		return Value{Type: TypeSingle, Value: x}, nil
	case float64:
		return detectFloat(x), nil
	case *big.Int:
		return detectBig(key, x)
	case string:
		return detectString(x), nil
	case time.Time:
		return Value{Type: TypeDatetimeOffset, Value: x.UTC().Format("2006-01-02T15:04:05.000Z")}, nil
	case *url.URL:
		return Value{Type: TypeURI, Value: x.String()}, nil
	case []byte:
		return Binary(x), nil
	case Decimal:
		return Decimal128(x), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elems := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := Detect(key, rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Value{Type: TypeArray, Value: elems}, nil
	}
	return Value{}, &UnsupportedTypeError{Key: key, TypeName: fmt.Sprintf("%T", v)}
}

// detectInt picks the narrowest integer type that holds n, preferring
// unsigned types for non-negative values the way the host does.
func detectInt(n int64) Value {
	switch {
	case n >= 0 && n <= math.MaxUint8:
		return Value{Type: TypeByte, Value: uint8(n)}
	case n >= math.MinInt8 && n <= math.MaxInt8:
		return Value{Type: TypeSByte, Value: int8(n)}
	case n >= math.MinInt16 && n <= math.MaxInt16:
		return Value{Type: TypeInt16, Value: int16(n)}
	case n >= 0 && n <= math.MaxUint16:
		return Value{Type: TypeUint16, Value: uint16(n)}
	case n >= math.MinInt32 && n <= math.MaxInt32:
		return Value{Type: TypeInt32, Value: int32(n)}
	case n >= 0 && n <= math.MaxUint32:
		return Value{Type: TypeUint32, Value: uint32(n)}
	default:
		return Long(n)
	}
}

func detectUint(n uint64) Value {
	if n <= math.MaxInt64 {
		return detectInt(int64(n))
	}
	return ULong(n)
}

func detectFloat(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) &&
		f >= math.MinInt64 && f <= math.MaxInt64 {
		return detectInt(int64(f))
	}
	if math.Abs(f) <= math.MaxFloat32 {
		return Value{Type: TypeSingle, Value: float32(f)}
	}
	return Value{Type: TypeDouble, Value: f}
}

func detectBig(key string, n *big.Int) (Value, error) {
	switch {
	case n.IsUint64():
		return ULong(n.Uint64()), nil
	case n.IsInt64():
		return Long(n.Int64()), nil
	default:
		return Value{}, &UnsupportedTypeError{Key: key, TypeName: fmt.Sprintf("%T (out of 64-bit range)", n)}
	}
}

func detectString(s string) Value {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Value{Type: TypeChar, Value: r}
	}
	if guidRE.MatchString(s) {
		return Value{Type: TypeGUID, Value: s}
	}
	if u, err := url.Parse(s); err == nil && u.IsAbs() {
		return Value{Type: TypeURI, Value: s}
	}
	if timespanRE.MatchString(s) {
		return Value{Type: TypeTimespan, Value: s}
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Value{Type: TypeDatetime, Value: t}
		}
	}
	return String(s)
}
