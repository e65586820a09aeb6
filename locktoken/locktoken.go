// Package locktoken renders and parses Service Bus settlement lock tokens.
//
// The functions host hands the token over in .NET GUID byte order where
// the first three groups are little-endian, so rendering reverses bytes
// 0-3, 4-5 and 6-7 before hex formatting. The last two groups are
// big-endian and pass through unchanged.
package locktoken

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Marker is the content marker that follows the token prefix in a
// Service Bus binding buffer. Its presence signals that the leading
// bytes carry a lock token; the marker itself is not part of the token.
const Marker = "x-opt-lock-token"

// Size is the token length in bytes.
const Size = 16

// Render formats a 16-byte lock token as its canonical UUID string.
func Render(b [Size]byte) string {
	return format(b[:])
}

// Extract renders the lock token from the leading bytes of buf,
// reading at most min(Size, hint, len(buf)) bytes. Short input
// produces a malformed string: callers must make sure at least 16
// bytes are present before treating the result as authoritative.
func Extract(buf []byte, hint int) string {
	n := Size
	if hint < n {
		n = hint
	}
	if len(buf) < n {
		n = len(buf)
	}
	if n < 0 {
		n = 0
	}
	return format(buf[:n])
}

// Parse recovers the token bytes from a UUID string produced by
// Render. It is the inverse of Render for every 16-byte sequence.
func Parse(s string) ([Size]byte, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return [Size]byte{}, errors.Wrap(err, "locktoken: parse")
	}
	b := [Size]byte(u)
	b[0], b[3] = b[3], b[0]
	b[1], b[2] = b[2], b[1]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
	return b, nil
}

func format(b []byte) string {
	grp := func(lo, hi int) []byte {
		if lo > len(b) {
			lo = len(b)
		}
		if hi > len(b) {
			hi = len(b)
		}
		return b[lo:hi]
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x",
		reversed(grp(0, 4)),
		reversed(grp(4, 6)),
		reversed(grp(6, 8)),
		grp(8, 10),
		grp(10, 16),
	)
}

func reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}
