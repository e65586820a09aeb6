package servicebus

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"pack.ag/amqp"
)

func TestFromAMQPMessageProperties(t *testing.T) {
	ttl := 90 * time.Second
	msg := &amqp.Message{
		Properties: &amqp.MessageProperties{
			MessageID:      "m-1",
			CorrelationID:  "c-1",
			ContentType:    "text/plain",
			Subject:        "subj",
			To:             "queue-a",
			ReplyTo:        "queue-b",
			ReplyToGroupID: "rsess",
			GroupID:        "sess",
		},
		Header: &amqp.MessageHeader{
			DeliveryCount: 3,
			TTL:           ttl,
		},
		Data: [][]byte{[]byte("hello")},
	}

	m := FromAMQPMessage(msg, "tok")
	if m.MessageID != "m-1" || m.CorrelationID != "c-1" {
		t.Errorf("ids = %q, %q", m.MessageID, m.CorrelationID)
	}
	if m.Subject != "subj" || m.To != "queue-a" || m.ReplyTo != "queue-b" {
		t.Errorf("routing = %q %q %q", m.Subject, m.To, m.ReplyTo)
	}
	if m.SessionID != "sess" || m.ReplyToSessionID != "rsess" {
		t.Errorf("sessions = %q %q", m.SessionID, m.ReplyToSessionID)
	}
	if m.DeliveryCount != 3 {
		t.Errorf("DeliveryCount = %d, want 3", m.DeliveryCount)
	}
	if m.TimeToLive != ttl {
		t.Errorf("TimeToLive = %v, want %v", m.TimeToLive, ttl)
	}
	if m.LockToken != "tok" {
		t.Errorf("LockToken = %q", m.LockToken)
	}
	if m.State != StateActive {
		t.Errorf("State = %v, want active", m.State)
	}
	if m.Body != "hello" {
		t.Errorf("Body = %v", m.Body)
	}
	if m.RawAMQPMessage != msg {
		t.Error("RawAMQPMessage does not reference the decoded message")
	}
}

func TestFromAMQPMessageDefaults(t *testing.T) {
	m := FromAMQPMessage(&amqp.Message{}, "tok")
	if m.DeliveryCount != 0 {
		t.Errorf("DeliveryCount = %d, want 0", m.DeliveryCount)
	}
	if m.ApplicationProperties == nil || len(m.ApplicationProperties) != 0 {
		t.Errorf("ApplicationProperties = %v, want empty map", m.ApplicationProperties)
	}
	if m.SequenceNumber != nil || m.EnqueuedSequenceNumber != nil {
		t.Error("sequence numbers must be absent")
	}
}

func TestSequenceNumberFallback(t *testing.T) {
	// no offset annotation: enqueued sequence number adopts the
	// sequence number
	m := FromAMQPMessage(&amqp.Message{
		Annotations: amqp.Annotations{annSequenceNumber: int64(7)},
	}, "tok")
	if m.SequenceNumber == nil || *m.SequenceNumber != 7 {
		t.Fatalf("SequenceNumber = %v", m.SequenceNumber)
	}
	if m.EnqueuedSequenceNumber == nil || *m.EnqueuedSequenceNumber != 7 {
		t.Fatalf("EnqueuedSequenceNumber = %v, want fallback 7", m.EnqueuedSequenceNumber)
	}

	// both present: the offset wins
	m = FromAMQPMessage(&amqp.Message{
		Annotations: amqp.Annotations{
			annSequenceNumber: int64(7),
			annOffset:         int64(5),
		},
	}, "tok")
	if m.EnqueuedSequenceNumber == nil || *m.EnqueuedSequenceNumber != 5 {
		t.Fatalf("EnqueuedSequenceNumber = %v, want 5", m.EnqueuedSequenceNumber)
	}
	if *m.SequenceNumber != 7 {
		t.Fatalf("SequenceNumber = %v, want 7", *m.SequenceNumber)
	}
}

func TestDeadLetterFields(t *testing.T) {
	m := FromAMQPMessage(&amqp.Message{
		ApplicationProperties: map[string]interface{}{
			"DeadLetterReason":           "MaxDeliveryCountExceeded",
			"DeadLetterErrorDescription": "failed 5 times",
		},
		Annotations: amqp.Annotations{
			annDeadLetterSource: "orders-queue",
		},
	}, "tok")
	if m.DeadLetterReason != "MaxDeliveryCountExceeded" {
		t.Errorf("DeadLetterReason = %q", m.DeadLetterReason)
	}
	if m.DeadLetterErrorDescription != "failed 5 times" {
		t.Errorf("DeadLetterErrorDescription = %q", m.DeadLetterErrorDescription)
	}
	if m.DeadLetterSource != "orders-queue" {
		t.Errorf("DeadLetterSource = %q", m.DeadLetterSource)
	}
	// the raw property bag still carries the dead-letter keys
	if len(m.ApplicationProperties) != 2 {
		t.Errorf("ApplicationProperties = %v", m.ApplicationProperties)
	}
}

func TestTimestampAnnotations(t *testing.T) {
	want := time.Date(2025, 10, 7, 22, 14, 30, 0, time.UTC)
	tests := []struct {
		name string
		v    interface{}
	}{
		{"instant", want},
		{"millis", want.UnixNano() / int64(time.Millisecond)},
		{"iso string", "2025-10-07T22:14:30Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromAMQPMessage(&amqp.Message{
				Annotations: amqp.Annotations{
					annEnqueuedTime: tt.v,
					annLockedUntil:  tt.v,
				},
			}, "tok")
			if !m.EnqueuedTime.Equal(want) {
				t.Errorf("EnqueuedTime = %v, want %v", m.EnqueuedTime, want)
			}
			if !m.LockedUntil.Equal(want) {
				t.Errorf("LockedUntil = %v, want %v", m.LockedUntil, want)
			}
		})
	}
}

func TestBodyProjection(t *testing.T) {
	mk := func(contentType string, body []byte) *ReceivedMessage {
		msg := &amqp.Message{Data: [][]byte{body}}
		if contentType != "" {
			msg.Properties = &amqp.MessageProperties{ContentType: contentType}
		}
		return FromAMQPMessage(msg, "tok")
	}

	if m := mk("text/plain", []byte("hi")); m.Body != "hi" {
		t.Errorf("text/plain body = %v", m.Body)
	}
	if m := mk("application/xml", []byte("<a/>")); m.Body != "<a/>" {
		t.Errorf("application/xml body = %v", m.Body)
	}

	m := mk("application/json", []byte(`{"n":1}`))
	want := map[string]interface{}{"n": float64(1)}
	if diff := cmp.Diff(want, m.Body); diff != "" {
		t.Errorf("json body mismatch (-want +got):\n%s", diff)
	}

	// invalid JSON must degrade to the string form, not fail
	if m := mk("application/json", []byte(`{"n":`)); m.Body != `{"n":` {
		t.Errorf("invalid json body = %v", m.Body)
	}

	if m := mk("", []byte("raw")); m.Body != "raw" {
		t.Errorf("untyped body = %v", m.Body)
	}

	// value sections pass through untouched
	vm := FromAMQPMessage(&amqp.Message{Value: int64(5)}, "tok")
	if vm.Body != int64(5) {
		t.Errorf("value body = %v", vm.Body)
	}
}

func TestRawBodyReachableForLargeNumbers(t *testing.T) {
	// 9007199254740993 does not survive a float64 round trip; the raw
	// section bytes stay reachable so callers can reparse exactly
	raw := []byte(`{"orderId":"abc","amount":9007199254740993}`)
	m := FromAMQPMessage(&amqp.Message{
		Properties: &amqp.MessageProperties{ContentType: "application/json"},
		Data:       [][]byte{raw},
	}, "tok")

	body, ok := m.Body.(map[string]interface{})
	if !ok {
		t.Fatalf("Body = %T", m.Body)
	}
	if body["orderId"] != "abc" {
		t.Errorf("orderId = %v", body["orderId"])
	}
	if got := string(m.RawAMQPMessage.Data[0]); got != string(raw) {
		t.Errorf("raw bytes = %q, want %q", got, raw)
	}
}

func TestExpiresAt(t *testing.T) {
	enq := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := &ReceivedMessage{EnqueuedTime: enq, TimeToLive: time.Minute}
	if got, want := m.ExpiresAt(), enq.Add(time.Minute); !got.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", got, want)
	}
	if got := (&ReceivedMessage{}).ExpiresAt(); !got.IsZero() {
		t.Errorf("ExpiresAt without inputs = %v, want zero", got)
	}
}
