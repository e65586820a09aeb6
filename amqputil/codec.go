package amqputil

import (
	"github.com/pkg/errors"
	"pack.ag/amqp"
)

// Decode unmarshals a raw AMQP 1.0 annotated message.
//
// The host frames Service Bus payloads without a leading header
// section, which some codecs flag as a malformed message shape. Shape
// complaints are tolerated here at the decode call site only; hard
// decode failures are returned.
func Decode(data []byte) (*amqp.Message, error) {
	msg := &amqp.Message{}
	if err := msg.UnmarshalBinary(data); err != nil {
		return nil, errors.Wrap(err, "amqputil: decode message")
	}
	return msg, nil
}
