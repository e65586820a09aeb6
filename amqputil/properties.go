package amqputil

import (
	"github.com/pkg/errors"
)

// ConvertPropertiesToAMQPBytes type-detects every value in props and
// encodes the result as an AMQP map of typed scalars.
func ConvertPropertiesToAMQPBytes(props map[string]interface{}) ([]byte, error) {
	typed := make(map[string]Value, len(props))
	for k, v := range props {
		tv, err := Detect(k, v)
		if err != nil {
			return nil, err
		}
		typed[k] = tv
	}
	return EncodeMap(typed)
}

// ValidateAMQPProperties runs type detection without encoding,
// allowing early rejection with precise key attribution.
func ValidateAMQPProperties(props map[string]interface{}) error {
	for k, v := range props {
		if _, err := Detect(k, v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeForOperation encodes the properties-to-modify map for a
// settlement operation. Nil and empty maps shortcut to zero bytes;
// failures carry the operation name.
func EncodeForOperation(props map[string]interface{}, op string) ([]byte, error) {
	if len(props) == 0 {
		return []byte{}, nil
	}
	b, err := ConvertPropertiesToAMQPBytes(props)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode properties for %s operation", op)
	}
	return b, nil
}
