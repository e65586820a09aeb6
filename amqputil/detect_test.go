package amqputil

import (
	"math/big"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestDetectIntegerWidths(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want Type
	}{
		{"byte", 200, TypeByte},
		{"small int stays byte", 2, TypeByte},
		{"zero", 0, TypeByte},
		{"sbyte", -5, TypeSByte},
		{"int16", 300, TypeInt16},
		{"int16 negative", -32768, TypeInt16},
		{"uint16", 40000, TypeUint16},
		{"int32", 70000, TypeInt32},
		{"int32 negative", -40000, TypeInt32},
		{"uint32", int64(3000000000), TypeUint32},
		{"int64", int64(1) << 40, TypeInt64},
		{"int64 negative", int64(-1) << 40, TypeInt64},
		{"uint64", uint64(1) << 63, TypeUint64},
		{"float as integer", float64(200), TypeByte},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect("k", tt.v)
			if err != nil {
				t.Fatal(err)
			}
			if got.Type != tt.want {
				t.Errorf("Detect(%v) = %q, want %q", tt.v, got.Type, tt.want)
			}
		})
	}
}

func TestDetectFloats(t *testing.T) {
	got, err := Detect("k", 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeSingle {
		t.Errorf("Detect(1.5) = %q, want %q", got.Type, TypeSingle)
	}

	got, err = Detect("k", 1e40)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeDouble {
		t.Errorf("Detect(1e40) = %q, want %q", got.Type, TypeDouble)
	}
}

func TestDetectBigInt(t *testing.T) {
	got, err := Detect("k", new(big.Int).SetUint64(1<<63+5))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeUint64 {
		t.Errorf("Detect = %q, want %q", got.Type, TypeUint64)
	}

	neg := big.NewInt(-1)
	neg.Lsh(neg, 40)
	got, err = Detect("k", neg)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeInt64 {
		t.Errorf("Detect = %q, want %q", got.Type, TypeInt64)
	}

	huge := new(big.Int).Lsh(big.NewInt(1), 80)
	if _, err = Detect("wide", huge); err == nil {
		t.Error("Detect of 2^80 succeeded, want out-of-range error")
	}
}

func TestDetectStrings(t *testing.T) {
	tests := []struct {
		s    string
		want Type
	}{
		{"a", TypeChar},
		{"7", TypeChar},
		{"bdb08aee-3ea8-4645-ba30-19ccb40b5073", TypeGUID},
		{"BDB08AEE-3EA8-4645-BA30-19CCB40B5073", TypeGUID},
		{"https://example.com/path", TypeURI},
		{"01:02:03", TypeTimespan},
		{"1.02:03:04.5", TypeTimespan},
		{"-00:00:59", TypeTimespan},
		{"2025-10-07T22:14:30Z", TypeDatetime},
		{"2025-10-07", TypeDatetime},
		{"plain text value", TypeString},
		{"bdb08aee-3ea8-9645-ba30-19ccb40b5073", TypeString}, // version nibble out of 1-5
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := Detect("k", tt.s)
			if err != nil {
				t.Fatal(err)
			}
			if got.Type != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.s, got.Type, tt.want)
			}
		})
	}
}

func TestDetectObjects(t *testing.T) {
	got, err := Detect("k", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeDatetimeOffset {
		t.Fatalf("Detect(time.Time) = %q, want %q", got.Type, TypeDatetimeOffset)
	}
	if got.Value != "2025-01-01T00:00:00.000Z" {
		t.Errorf("Detect(time.Time) value = %q", got.Value)
	}

	u, _ := url.Parse("https://example.com")
	got, err = Detect("k", u)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeURI {
		t.Errorf("Detect(*url.URL) = %q, want %q", got.Type, TypeURI)
	}

	got, err = Detect("k", []byte{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeStream {
		t.Errorf("Detect([]byte) = %q, want %q", got.Type, TypeStream)
	}

	got, err = Detect("k", []interface{}{1, "two", true})
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != TypeArray {
		t.Fatalf("Detect(slice) = %q, want %q", got.Type, TypeArray)
	}
	elems := got.Value.([]Value)
	if len(elems) != 3 || elems[0].Type != TypeByte || elems[2].Type != TypeBoolean {
		t.Errorf("array elements = %v", elems)
	}
}

func TestDetectUnsupported(t *testing.T) {
	_, err := Detect("badKey", struct{ X int }{1})
	if err == nil {
		t.Fatal("Detect of struct succeeded")
	}
	if !strings.Contains(err.Error(), "badKey") {
		t.Errorf("error %q does not name the key", err)
	}
	if !strings.Contains(err.Error(), "struct { X int }") {
		t.Errorf("error %q does not name the runtime type", err)
	}
}
