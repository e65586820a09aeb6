// Package bindings wires binding payload decoding into the resource
// factory registry. Importing it registers the Service Bus factory with
// the default registry, in the manner of database/sql drivers.
package bindings

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/azfunc/sbext/registry"
	"github.com/azfunc/sbext/servicebus"
	"github.com/azfunc/sbext/settlement"
)

// ErrNullContent is returned when a binding entry carries no content.
var ErrNullContent = errors.New("bindings: binding data has no content")

// MessageContext is the resource produced for a Service Bus trigger:
// the decoded batch plus the settlement actions bound to the host that
// delivered it.
type MessageContext struct {
	Messages []*servicebus.ReceivedMessage
	Actions  *settlement.Client
}

// RegisterServiceBus installs the Service Bus received-message factory
// on the given registry.
func RegisterServiceBus(r *registry.Registry) error {
	if err := r.Register(registry.TagServiceBusReceivedMessage, serviceBusFactory); err != nil {
		return pkgerrors.Wrap(err, "servicebus factory init")
	}
	return nil
}

func init() {
	if !registry.Default().Has(registry.TagServiceBusReceivedMessage) {
		if err := RegisterServiceBus(registry.Default()); err != nil {
			panic(err)
		}
	}
}

// serviceBusFactory accepts a single binding entry or a batch of them
// and produces a *MessageContext.
func serviceBusFactory(payload interface{}) (interface{}, error) {
	var entries []servicebus.BindingData
	switch p := payload.(type) {
	case servicebus.BindingData:
		entries = []servicebus.BindingData{p}
	case *servicebus.BindingData:
		if p == nil {
			return nil, ErrNullContent
		}
		entries = []servicebus.BindingData{*p}
	case []servicebus.BindingData:
		entries = p
	default:
		return nil, fmt.Errorf("bindings: unexpected payload type %T", payload)
	}

	msgs := make([]*servicebus.ReceivedMessage, 0, len(entries))
	for i, entry := range entries {
		if len(entry.Content) == 0 {
			return nil, pkgerrors.Wrapf(ErrNullContent, "entry %d", i)
		}
		msg, err := servicebus.DecodeMessage(entry.Content)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "entry %d", i)
		}
		msgs = append(msgs, msg)
	}

	actions, err := settlement.Default()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "settlement client")
	}
	return &MessageContext{Messages: msgs, Actions: actions}, nil
}
