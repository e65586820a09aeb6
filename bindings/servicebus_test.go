package bindings

import (
	"errors"
	"flag"
	"os"
	"testing"

	"pack.ag/amqp"

	"github.com/azfunc/sbext/locktoken"
	"github.com/azfunc/sbext/registry"
	"github.com/azfunc/sbext/servicebus"
)

func TestMain(m *testing.M) {
	// Consume the real test flags first, m.Run parses them lazily and
	// would reject the worker flags below.
	flag.Parse()

	// The settlement singleton reads the endpoint from the worker
	// command line. Dialing is lazy, no host needs to listen.
	os.Args = []string{"worker",
		"--host=127.0.0.1",
		"--port=50051",
		"--functions-grpc-max-message-length=1048576",
	}
	os.Exit(m.Run())
}

func buildBindingContent(t *testing.T, token [16]byte, body []byte) []byte {
	t.Helper()
	msg := &amqp.Message{
		Data:                [][]byte{body},
		DeliveryAnnotations: amqp.Annotations{locktoken.Marker: "lock"},
	}
	data, err := msg.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	return append(token[:], data...)
}

func TestFactoryRegistered(t *testing.T) {
	if !registry.Default().Has(registry.TagServiceBusReceivedMessage) {
		t.Fatal("servicebus factory not registered with the default registry")
	}
}

func TestFactorySingleMessage(t *testing.T) {
	token := [16]byte{0xbd, 0xb0, 0x8a, 0xee, 0x3e, 0xa8, 0x06, 0x45, 0xba, 0x30, 0x19, 0xcc, 0xb4, 0x0b, 0x50, 0x73}
	content := buildBindingContent(t, token, []byte("hello"))

	v, err := registry.Default().Create(registry.TagServiceBusReceivedMessage, servicebus.BindingData{Content: content})
	if err != nil {
		t.Fatal(err)
	}
	mc, ok := v.(*MessageContext)
	if !ok {
		t.Fatalf("resource type = %T, want *MessageContext", v)
	}
	if len(mc.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(mc.Messages))
	}
	if mc.Messages[0].LockToken != "ee8ab0bd-a83e-4506-ba30-19ccb40b5073" {
		t.Errorf("LockToken = %q", mc.Messages[0].LockToken)
	}
	if mc.Actions == nil {
		t.Error("Actions is nil")
	}
}

func TestFactoryBatch(t *testing.T) {
	batch := make([]servicebus.BindingData, 3)
	for i := range batch {
		var token [16]byte
		token[0] = byte(i + 1)
		batch[i] = servicebus.BindingData{
			Content: buildBindingContent(t, token, []byte{'a' + byte(i)}),
		}
	}
	v, err := registry.Default().Create(registry.TagServiceBusReceivedMessage, batch)
	if err != nil {
		t.Fatal(err)
	}
	mc := v.(*MessageContext)
	if len(mc.Messages) != 3 {
		t.Fatalf("len(Messages) = %d, want 3", len(mc.Messages))
	}
	for i, msg := range mc.Messages {
		if want := string([]byte{'a' + byte(i)}); msg.Body != want {
			t.Errorf("message %d body = %v, want %q", i, msg.Body, want)
		}
	}

	// Every context shares the process-wide settlement client.
	token := [16]byte{0xff}
	v2, err := registry.Default().Create(registry.TagServiceBusReceivedMessage,
		servicebus.BindingData{Content: buildBindingContent(t, token, []byte("x"))})
	if err != nil {
		t.Fatal(err)
	}
	if v2.(*MessageContext).Actions != mc.Actions {
		t.Error("contexts hold different settlement clients")
	}
}

func TestFactoryNullContent(t *testing.T) {
	_, err := serviceBusFactory(servicebus.BindingData{})
	if !errors.Is(err, ErrNullContent) {
		t.Errorf("err = %v, want ErrNullContent", err)
	}
	_, err = serviceBusFactory((*servicebus.BindingData)(nil))
	if !errors.Is(err, ErrNullContent) {
		t.Errorf("nil pointer: err = %v, want ErrNullContent", err)
	}
}

func TestFactoryBadPayloadType(t *testing.T) {
	_, err := serviceBusFactory(42)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFactoryBadEntry(t *testing.T) {
	batch := []servicebus.BindingData{
		{Content: []byte("too short")},
	}
	_, err := serviceBusFactory(batch)
	if err == nil {
		t.Fatal("expected error")
	}
}
