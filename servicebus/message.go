// Package servicebus decodes host-framed Service Bus trigger payloads
// into received-message records that function handlers consume.
package servicebus

import (
	"encoding/json"
	"time"

	"pack.ag/amqp"
)

// MessageState is the delivery state of a received message.
type MessageState int

const (
	StateActive MessageState = iota
	StateDeferred
	StateScheduled
)

// String returns message state string representation.
func (s MessageState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDeferred:
		return "deferred"
	case StateScheduled:
		return "scheduled"
	default:
		return ""
	}
}

// Message annotation keys set by Service Bus.
const (
	annEnqueuedTime     = "x-opt-enqueued-time"
	annLockedUntil      = "x-opt-locked-until"
	annSequenceNumber   = "x-opt-sequence-number"
	annOffset           = "x-opt-offset"
	annDeadLetterSource = "x-opt-deadletter-source"
)

// Application property keys carrying dead-letter metadata.
const (
	propDeadLetterReason           = "DeadLetterReason"
	propDeadLetterErrorDescription = "DeadLetterErrorDescription"
)

// ReceivedMessage is the normalized form of a Service Bus message
// delivered through the trigger binding.
type ReceivedMessage struct {
	// Body is the message payload after content-type projection: a
	// decoded JSON value for application/json, a string for textual
	// content types, the raw section payload otherwise. Callers that
	// need the exact bytes (e.g. to parse JSON numbers outside the
	// float64-safe range) read them from RawAMQPMessage.
	Body interface{}

	MessageID        string
	CorrelationID    string
	ContentType      string
	Subject          string
	To               string
	ReplyTo          string
	ReplyToSessionID string
	SessionID        string

	// TimeToLive is zero when the sender didn't set one.
	TimeToLive time.Duration

	// ApplicationProperties holds the sender-supplied property bag.
	// Never nil.
	ApplicationProperties map[string]interface{}

	// DeliveryCount is taken from the AMQP header, 0 when absent.
	DeliveryCount uint32

	// LockToken identifies the message lease for settlement.
	LockToken string

	EnqueuedTime time.Time
	LockedUntil  time.Time

	SequenceNumber *int64

	// EnqueuedSequenceNumber falls back to SequenceNumber when the
	// x-opt-offset annotation is missing.
	EnqueuedSequenceNumber *int64

	DeadLetterReason           string
	DeadLetterErrorDescription string
	DeadLetterSource           string

	// State is always StateActive on delivery; deferred and scheduled
	// states only appear after settlement actions on the host side.
	State MessageState

	// RawAMQPMessage is the annotated message as decoded, for
	// consumers that need sections the normalized record drops.
	RawAMQPMessage *amqp.Message
}

// ExpiresAt returns the instant the message expires, or the zero time
// when enqueued-time or time-to-live is unknown.
func (m *ReceivedMessage) ExpiresAt() time.Time {
	if m.EnqueuedTime.IsZero() || m.TimeToLive == 0 {
		return time.Time{}
	}
	return m.EnqueuedTime.Add(m.TimeToLive)
}

// FromAMQPMessage projects a decoded AMQP message and its settlement
// lock token into a ReceivedMessage.
func FromAMQPMessage(msg *amqp.Message, lockToken string) *ReceivedMessage {
	m := &ReceivedMessage{
		LockToken:             lockToken,
		State:                 StateActive,
		ApplicationProperties: make(map[string]interface{}, len(msg.ApplicationProperties)),
		RawAMQPMessage:        msg,
	}

	if msg.Properties != nil {
		if s, ok := msg.Properties.MessageID.(string); ok {
			m.MessageID = s
		}
		if s, ok := msg.Properties.CorrelationID.(string); ok {
			m.CorrelationID = s
		}
		m.ContentType = msg.Properties.ContentType
		m.Subject = msg.Properties.Subject
		m.To = msg.Properties.To
		m.ReplyTo = msg.Properties.ReplyTo
		m.ReplyToSessionID = msg.Properties.ReplyToGroupID
		m.SessionID = msg.Properties.GroupID
	}
	if msg.Header != nil {
		m.DeliveryCount = msg.Header.DeliveryCount
		m.TimeToLive = msg.Header.TTL
	}

	for k, v := range msg.ApplicationProperties {
		m.ApplicationProperties[k] = v
	}
	if s, ok := m.ApplicationProperties[propDeadLetterReason].(string); ok {
		m.DeadLetterReason = s
	}
	if s, ok := m.ApplicationProperties[propDeadLetterErrorDescription].(string); ok {
		m.DeadLetterErrorDescription = s
	}

	var offset *int64
	for k, v := range msg.Annotations {
		key, ok := k.(string)
		if !ok {
			continue
		}
		switch key {
		case annEnqueuedTime:
			m.EnqueuedTime = asTime(v)
		case annLockedUntil:
			m.LockedUntil = asTime(v)
		case annSequenceNumber:
			if n, ok := asInt64(v); ok {
				m.SequenceNumber = &n
			}
		case annOffset:
			if n, ok := asInt64(v); ok {
				offset = &n
			}
		case annDeadLetterSource:
			if s, ok := v.(string); ok {
				m.DeadLetterSource = s
			}
		}
	}
	// the offset annotation wins; auto-forwarded messages that lack it
	// report their current sequence number as the enqueued one
	if offset != nil {
		m.EnqueuedSequenceNumber = offset
	} else if m.SequenceNumber != nil {
		n := *m.SequenceNumber
		m.EnqueuedSequenceNumber = &n
	}

	m.Body = projectBody(msg, m.ContentType)
	return m
}

// projectBody interprets a binary data section according to the
// declared content type. Value sections pass through untouched.
func projectBody(msg *amqp.Message, contentType string) interface{} {
	if len(msg.Data) == 0 || len(msg.Data[0]) == 0 {
		if msg.Value != nil {
			return msg.Value
		}
		return nil
	}

	data := msg.Data[0]
	switch contentType {
	case "application/json":
		var v interface{}
		if err := json.Unmarshal(data, &v); err == nil {
			return v
		}
		// invalid JSON degrades to the UTF-8 string form
		return string(data)
	default:
		// text/plain, application/xml and unknown types all read as text
		return string(data)
	}
}

func asTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case int64:
		return time.Unix(0, t*int64(time.Millisecond)).UTC()
	case int32:
		return time.Unix(0, int64(t)*int64(time.Millisecond)).UTC()
	case int:
		return time.Unix(0, int64(t)*int64(time.Millisecond)).UTC()
	case uint64:
		return time.Unix(0, int64(t)*int64(time.Millisecond)).UTC()
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
