package servicebus

import (
	"bytes"

	"github.com/pkg/errors"
	"pack.ag/amqp"

	"github.com/azfunc/sbext/amqputil"
	"github.com/azfunc/sbext/locktoken"
)

var (
	// ErrEmptyContent is returned for a binding buffer with no bytes.
	ErrEmptyContent = errors.New("servicebus: empty binding content")

	// ErrLockTokenNotFound is returned when the x-opt-lock-token
	// marker is absent, meaning the buffer is not a Service Bus
	// trigger payload.
	ErrLockTokenNotFound = errors.New("servicebus: lock token marker not found in binding content")
)

// BindingData is the opaque envelope the host delivers for each
// trigger firing.
type BindingData struct {
	Content     []byte
	ContentType string
	Source      string
	Version     string
}

// DecodeBindingContent splits a Service Bus binding buffer into its
// AMQP message and settlement lock token.
//
// The buffer layout is: 16 bytes of lock token, then the AMQP-encoded
// message starting at offset 16. The marker scan is a presence check
// that the buffer really is a trigger payload; the marker bytes occur
// inside the message's delivery annotations.
func DecodeBindingContent(content []byte) (*amqp.Message, string, error) {
	if len(content) == 0 {
		return nil, "", ErrEmptyContent
	}
	idx := bytes.Index(content, []byte(locktoken.Marker))
	if idx < 0 {
		return nil, "", ErrLockTokenNotFound
	}

	token := locktoken.Extract(content, idx)
	msg, err := amqputil.Decode(content[locktoken.Size:])
	if err != nil {
		return nil, "", errors.Wrap(err, "servicebus: decode binding payload")
	}
	return msg, token, nil
}

// DecodeMessage decodes a binding buffer all the way to a
// ReceivedMessage.
func DecodeMessage(content []byte) (*ReceivedMessage, error) {
	msg, token, err := DecodeBindingContent(content)
	if err != nil {
		return nil, err
	}
	return FromAMQPMessage(msg, token), nil
}
