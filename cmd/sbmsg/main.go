// Command sbmsg inspects Service Bus binding payloads captured from a
// functions host, useful when debugging trigger wiring.
package main

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/azfunc/sbext/amqputil"
	"github.com/azfunc/sbext/cmd/internal"
	"github.com/azfunc/sbext/servicebus"
)

var (
	base64Flag bool

	propsFlag internal.PropertiesFlag
)

func main() {
	if err := run(); err != nil {
		if err != internal.ErrInvalidUsage {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

const help = `Decodes Service Bus trigger payloads and lock tokens.`

func run() error {
	return internal.Run(context.Background(), help, []*internal.Command{
		{
			Name:    "decode",
			Alias:   "d",
			Help:    "FILE",
			Desc:    "decode a binding payload into a received message",
			Handler: decode,
			ParseFunc: func(f *flag.FlagSet) {
				f.BoolVar(&base64Flag, "base64", false, "payload file is base64 encoded")
			},
		},
		{
			Name:    "lock-token",
			Alias:   "lt",
			Help:    "FILE",
			Desc:    "print the lock token of a binding payload",
			Handler: printLockToken,
			ParseFunc: func(f *flag.FlagSet) {
				f.BoolVar(&base64Flag, "base64", false, "payload file is base64 encoded")
			},
		},
		{
			Name:    "encode-props",
			Alias:   "ep",
			Help:    "",
			Desc:    "encode key=value properties as an AMQP map, printed as hex",
			Handler: encodeProps,
			ParseFunc: func(f *flag.FlagSet) {
				f.Var(&propsFlag, "p", "property in key=value form, can be set multiple times")
			},
		},
	}, os.Args, nil)
}

func readPayload(f *flag.FlagSet) ([]byte, error) {
	if f.NArg() != 1 {
		return nil, internal.ErrInvalidUsage
	}
	b, err := os.ReadFile(f.Arg(0))
	if err != nil {
		return nil, err
	}
	if base64Flag {
		return base64.StdEncoding.DecodeString(string(b))
	}
	return b, nil
}

// receivedMessageView flattens a received message for readable output,
// the raw AMQP message is omitted.
type receivedMessageView struct {
	MessageID             string                 `json:"messageId,omitempty"`
	SessionID             string                 `json:"sessionId,omitempty"`
	Subject               string                 `json:"subject,omitempty"`
	ContentType           string                 `json:"contentType,omitempty"`
	CorrelationID         string                 `json:"correlationId,omitempty"`
	DeliveryCount         uint32                 `json:"deliveryCount"`
	LockToken             string                 `json:"lockToken"`
	EnqueuedTime          *time.Time             `json:"enqueuedTime,omitempty"`
	LockedUntil           *time.Time             `json:"lockedUntil,omitempty"`
	SequenceNumber        *int64                 `json:"sequenceNumber,omitempty"`
	State                 string                 `json:"state"`
	ApplicationProperties map[string]interface{} `json:"applicationProperties,omitempty"`
	Body                  interface{}            `json:"body"`
}

func decode(ctx context.Context, f *flag.FlagSet) error {
	payload, err := readPayload(f)
	if err != nil {
		return err
	}
	msg, err := servicebus.DecodeMessage(payload)
	if err != nil {
		return err
	}
	view := &receivedMessageView{
		MessageID:             msg.MessageID,
		SessionID:             msg.SessionID,
		Subject:               msg.Subject,
		ContentType:           msg.ContentType,
		CorrelationID:         msg.CorrelationID,
		DeliveryCount:         msg.DeliveryCount,
		LockToken:             msg.LockToken,
		SequenceNumber:        msg.SequenceNumber,
		State:                 msg.State.String(),
		ApplicationProperties: msg.ApplicationProperties,
		Body:                  msg.Body,
	}
	if !msg.EnqueuedTime.IsZero() {
		view.EnqueuedTime = &msg.EnqueuedTime
	}
	if !msg.LockedUntil.IsZero() {
		view.LockedUntil = &msg.LockedUntil
	}
	return internal.OutputJSON(view)
}

func printLockToken(ctx context.Context, f *flag.FlagSet) error {
	payload, err := readPayload(f)
	if err != nil {
		return err
	}
	msg, err := servicebus.DecodeMessage(payload)
	if err != nil {
		return err
	}
	return internal.OutputLine(msg.LockToken)
}

func encodeProps(ctx context.Context, f *flag.FlagSet) error {
	if len(propsFlag) == 0 {
		return internal.ErrInvalidUsage
	}
	b, err := amqputil.ConvertPropertiesToAMQPBytes(propsFlag)
	if err != nil {
		return err
	}
	return internal.OutputLine(hex.EncodeToString(b))
}
