package amqputil

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/big"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AMQP 1.0 format codes emitted by the encoder.
const (
	codeNull       = 0x40
	codeBoolTrue   = 0x41
	codeBoolFalse  = 0x42
	codeUbyte      = 0x50
	codeByte       = 0x51
	codeUshort     = 0x60
	codeShort      = 0x61
	codeUint       = 0x70
	codeInt        = 0x71
	codeFloat      = 0x72
	codeChar       = 0x73
	codeUlong      = 0x80
	codeLong       = 0x81
	codeDouble     = 0x82
	codeTimestamp  = 0x83
	codeDecimal128 = 0x94
	codeUUID       = 0x98
	codeVbin8      = 0xa0
	codeStr8       = 0xa1
	codeVbin32     = 0xb0
	codeStr32      = 0xb1
	codeList8      = 0xc0
	codeMap8       = 0xc1
	codeList32     = 0xd0
	codeMap32      = 0xd1
)

// EncodeMap emits the typed map as a bare AMQP 1.0 map (map8/map32)
// with string keys. Values use their full-width format codes so the
// host's .NET decoder sees exactly the detected types.
func EncodeMap(m map[string]Value) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	body := &bytes.Buffer{}
	for _, k := range keys {
		writeString(body, k)
		if err := writeValue(body, m[k]); err != nil {
			return nil, err
		}
	}
	return wrapCompound(codeMap8, codeMap32, 2*len(m), body.Bytes()), nil
}

// wrapCompound prefixes a compound body with its format code, size and
// count, using the 8-bit form when everything fits in one octet.
func wrapCompound(code8, code32 byte, count int, body []byte) []byte {
	out := &bytes.Buffer{}
	if len(body)+1 <= math.MaxUint8 && count <= math.MaxUint8 {
		out.WriteByte(code8)
		out.WriteByte(byte(len(body) + 1))
		out.WriteByte(byte(count))
	} else {
		out.WriteByte(code32)
		writeUint32(out, uint32(len(body)+4))
		writeUint32(out, uint32(count))
	}
	out.Write(body)
	return out.Bytes()
}

func writeValue(w *bytes.Buffer, v Value) error {
	switch v.Type {
	case TypeNull:
		w.WriteByte(codeNull)
	case TypeBoolean:
		if v.Value.(bool) {
			w.WriteByte(codeBoolTrue)
		} else {
			w.WriteByte(codeBoolFalse)
		}
	case TypeByte:
		w.WriteByte(codeUbyte)
		w.WriteByte(v.Value.(uint8))
	case TypeSByte:
		w.WriteByte(codeByte)
		w.WriteByte(byte(v.Value.(int8)))
	case TypeInt16:
		w.WriteByte(codeShort)
		writeUint16(w, uint16(v.Value.(int16)))
	case TypeUint16:
		w.WriteByte(codeUshort)
		writeUint16(w, v.Value.(uint16))
	case TypeInt32:
		w.WriteByte(codeInt)
		writeUint32(w, uint32(v.Value.(int32)))
	case TypeUint32:
		w.WriteByte(codeUint)
		writeUint32(w, v.Value.(uint32))
	case TypeInt64:
		w.WriteByte(codeLong)
		writeUint64(w, uint64(v.Value.(int64)))
	case TypeUint64:
		w.WriteByte(codeUlong)
		writeUint64(w, v.Value.(uint64))
	case TypeSingle:
		w.WriteByte(codeFloat)
		writeUint32(w, math.Float32bits(v.Value.(float32)))
	case TypeDouble:
		w.WriteByte(codeDouble)
		writeUint64(w, math.Float64bits(v.Value.(float64)))
	case TypeChar:
		w.WriteByte(codeChar)
		writeUint32(w, uint32(v.Value.(rune)))
	case TypeGUID:
		u, err := uuid.Parse(v.Value.(string))
		if err != nil {
			return errors.Wrap(err, "amqputil: encode guid")
		}
		w.WriteByte(codeUUID)
		w.Write(u[:])
	case TypeDatetime:
		w.WriteByte(codeTimestamp)
		t := v.Value.(time.Time)
		writeUint64(w, uint64(t.UnixNano()/int64(time.Millisecond)))
	case TypeString, TypeURI, TypeTimespan, TypeDatetimeOffset:
		writeString(w, v.Value.(string))
	case TypeStream:
		writeBinary(w, v.Value.([]byte))
	case TypeDecimal:
		b, err := decimal128Bytes(v.Value.(Decimal))
		if err != nil {
			return err
		}
		w.WriteByte(codeDecimal128)
		w.Write(b)
	case TypeArray:
		// element-wise typing requires the polymorphic list form,
		// AMQP arrays are monomorphic
		elems := v.Value.([]Value)
		body := &bytes.Buffer{}
		for _, e := range elems {
			if err := writeValue(body, e); err != nil {
				return err
			}
		}
		w.Write(wrapCompound(codeList8, codeList32, len(elems), body.Bytes()))
	default:
		return errors.Errorf("amqputil: no encoding for type %q", v.Type)
	}
	return nil
}

func writeString(w *bytes.Buffer, s string) {
	if len(s) <= math.MaxUint8 {
		w.WriteByte(codeStr8)
		w.WriteByte(byte(len(s)))
	} else {
		w.WriteByte(codeStr32)
		writeUint32(w, uint32(len(s)))
	}
	w.WriteString(s)
}

func writeBinary(w *bytes.Buffer, b []byte) {
	if len(b) <= math.MaxUint8 {
		w.WriteByte(codeVbin8)
		w.WriteByte(byte(len(b)))
	} else {
		w.WriteByte(codeVbin32)
		writeUint32(w, uint32(len(b)))
	}
	w.Write(b)
}

func writeUint16(w *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.Write(b[:])
}

func writeUint32(w *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.Write(b[:])
}

func writeUint64(w *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.Write(b[:])
}

// decimal128Bytes packs the decimal into IEEE 754-2008 decimal128
// binary-integer-decimal form. The significand field is 113 bits wide,
// unscaled values that don't fit are rejected rather than truncated.
func decimal128Bytes(d Decimal) ([]byte, error) {
	var sign, hiSig, loSig uint64
	if d.Unscaled != nil {
		if d.Unscaled.Sign() < 0 {
			sign = 1
		}
		abs := new(big.Int).Abs(d.Unscaled)
		if abs.BitLen() > 113 {
			return nil, errors.Errorf("amqputil: decimal significand %s exceeds 113 bits", abs)
		}
		loSig = new(big.Int).And(abs, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
		hiSig = new(big.Int).Rsh(abs, 64).Uint64()
	}
	const exponentBias = 6176
	biased := uint64(int64(exponentBias) - int64(d.Scale))
	hi := sign<<63 | (biased&0x3fff)<<49 | hiSig

	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[:8], hi)
	binary.BigEndian.PutUint64(out[8:], loSig)
	return out, nil
}
