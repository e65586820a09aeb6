package amqputil

import (
	"bytes"
	"testing"
	"time"

	"pack.ag/amqp"
)

func TestDecodeRoundTrip(t *testing.T) {
	in := &amqp.Message{
		Data: [][]byte{[]byte(`{"n":1}`)},
		Properties: &amqp.MessageProperties{
			MessageID:   "m-1",
			ContentType: "application/json",
			GroupID:     "session-1",
		},
		Annotations: amqp.Annotations{
			"x-opt-sequence-number": int64(42),
			"x-opt-enqueued-time":   time.Date(2025, 10, 7, 22, 14, 30, 0, time.UTC),
		},
		ApplicationProperties: map[string]interface{}{"k": "v"},
	}
	raw, err := in.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	got, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Data) != 1 || !bytes.Equal(got.Data[0], in.Data[0]) {
		t.Errorf("Data = %q", got.Data)
	}
	if got.Properties == nil || got.Properties.ContentType != "application/json" {
		t.Errorf("Properties = %+v", got.Properties)
	}
	if got.Annotations["x-opt-sequence-number"] != int64(42) {
		t.Errorf("Annotations = %v", got.Annotations)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xff, 0x00, 0x13, 0x37}); err == nil {
		t.Fatal("Decode of garbage succeeded")
	}
}
