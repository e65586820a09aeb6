// Package settlement provides the client the worker uses to settle
// Service Bus messages through the functions host over gRPC.
package settlement

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang/protobuf/ptypes"
	"github.com/golang/protobuf/ptypes/wrappers"
	"google.golang.org/grpc"

	"github.com/azfunc/sbext/amqputil"
	"github.com/azfunc/sbext/common"
	"github.com/azfunc/sbext/servicebus"
	"github.com/azfunc/sbext/settlement/settlementpb"
)

var (
	// ErrLockTokenRequired is returned when a message carries no lock
	// token, meaning it was not received with peek-lock.
	ErrLockTokenRequired = errors.New("settlement: message has no lock token")

	// ErrEmptyResponse is returned when the host answers a renewal
	// request without the renewed expiry.
	ErrEmptyResponse = errors.New("settlement: empty response from host")
)

// Client settles received messages and manages session state by calling
// back into the functions host.
type Client struct {
	svc    settlementpb.SettlementClient
	conn   *grpc.ClientConn
	logger common.Logger
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the client logger, NopLogger is the default.
func WithLogger(l common.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient wraps an existing service client, mainly useful for tests.
func NewClient(svc settlementpb.SettlementClient, opts ...Option) *Client {
	c := &Client{
		svc:    svc,
		logger: common.NewLoggerFromEnv("settlement"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to the host endpoint described by cfg. The connection is
// established lazily on first use.
func Dial(cfg *Config, opts ...Option) (*Client, error) {
	conn, err := grpc.Dial(cfg.Addr(),
		grpc.WithInsecure(),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(cfg.MaxMessageLength),
			grpc.MaxCallSendMsgSize(cfg.MaxMessageLength),
		),
	)
	if err != nil {
		return nil, err
	}
	c := NewClient(settlementpb.NewSettlementClient(conn), opts...)
	c.conn = conn
	return c, nil
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the process-wide client, dialed once using the
// endpoint flags on the worker command line. Every call after the first
// returns the same client.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		cfg, err := ParseArgs(os.Args[1:])
		if err != nil {
			defaultErr = err
			return
		}
		defaultClient, defaultErr = Dial(cfg)
	})
	return defaultClient, defaultErr
}

// Close closes the underlying connection if the client owns one.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Complete settles the message as successfully processed.
func (c *Client) Complete(ctx context.Context, msg *servicebus.ReceivedMessage) error {
	if msg.LockToken == "" {
		return ErrLockTokenRequired
	}
	c.logger.Debugf("complete %s", msg.LockToken)
	_, err := c.svc.Complete(ctx, &settlementpb.CompleteRequest{
		Locktoken: msg.LockToken,
	})
	return err
}

// Abandon releases the message lock so the message becomes available for
// redelivery. Properties to modify are applied to the message on the
// broker.
func (c *Client) Abandon(ctx context.Context, msg *servicebus.ReceivedMessage, properties map[string]interface{}) error {
	if msg.LockToken == "" {
		return ErrLockTokenRequired
	}
	props, err := amqputil.EncodeForOperation(properties, "abandon")
	if err != nil {
		return err
	}
	c.logger.Debugf("abandon %s", msg.LockToken)
	_, err = c.svc.Abandon(ctx, &settlementpb.AbandonRequest{
		Locktoken:          msg.LockToken,
		PropertiesToModify: props,
	})
	return err
}

// Deadletter moves the message to the dead-letter subqueue. Reason and
// description are optional, nil leaves the corresponding field unset.
func (c *Client) Deadletter(ctx context.Context, msg *servicebus.ReceivedMessage, properties map[string]interface{}, reason, description *string) error {
	if msg.LockToken == "" {
		return ErrLockTokenRequired
	}
	props, err := amqputil.EncodeForOperation(properties, "deadletter")
	if err != nil {
		return err
	}
	req := &settlementpb.DeadletterRequest{
		Locktoken:          msg.LockToken,
		PropertiesToModify: props,
	}
	if reason != nil {
		req.DeadletterReason = &wrappers.StringValue{Value: *reason}
	}
	if description != nil {
		req.DeadletterErrorDescription = &wrappers.StringValue{Value: *description}
	}
	c.logger.Debugf("deadletter %s", msg.LockToken)
	_, err = c.svc.Deadletter(ctx, req)
	return err
}

// Defer sets the message aside so it can only be received again by
// sequence number.
func (c *Client) Defer(ctx context.Context, msg *servicebus.ReceivedMessage, properties map[string]interface{}) error {
	if msg.LockToken == "" {
		return ErrLockTokenRequired
	}
	props, err := amqputil.EncodeForOperation(properties, "defer")
	if err != nil {
		return err
	}
	c.logger.Debugf("defer %s", msg.LockToken)
	_, err = c.svc.Defer(ctx, &settlementpb.DeferRequest{
		Locktoken:          msg.LockToken,
		PropertiesToModify: props,
	})
	return err
}

// RenewMessageLock extends the message lock for another lock duration.
func (c *Client) RenewMessageLock(ctx context.Context, msg *servicebus.ReceivedMessage) error {
	if msg.LockToken == "" {
		return ErrLockTokenRequired
	}
	c.logger.Debugf("renew message lock %s", msg.LockToken)
	_, err := c.svc.RenewMessageLock(ctx, &settlementpb.RenewMessageLockRequest{
		Locktoken: msg.LockToken,
	})
	return err
}

// GetSessionState retrieves the state blob attached to the session, nil
// when no state has been set.
func (c *Client) GetSessionState(ctx context.Context, sessionID string) ([]byte, error) {
	res, err := c.svc.GetSessionState(ctx, &settlementpb.GetSessionStateRequest{
		SessionId: sessionID,
	})
	if err != nil {
		return nil, err
	}
	return res.GetSessionState(), nil
}

// SetSessionState replaces the state blob attached to the session.
func (c *Client) SetSessionState(ctx context.Context, sessionID string, state []byte) error {
	_, err := c.svc.SetSessionState(ctx, &settlementpb.SetSessionStateRequest{
		SessionId:    sessionID,
		SessionState: state,
	})
	return err
}

// ReleaseSession gives up the session lock so another receiver can
// accept the session.
func (c *Client) ReleaseSession(ctx context.Context, sessionID string) error {
	_, err := c.svc.ReleaseSession(ctx, &settlementpb.ReleaseSessionRequest{
		SessionId: sessionID,
	})
	return err
}

// RenewSessionLock extends the session lock and returns the new expiry.
func (c *Client) RenewSessionLock(ctx context.Context, sessionID string) (time.Time, error) {
	res, err := c.svc.RenewSessionLock(ctx, &settlementpb.RenewSessionLockRequest{
		SessionId: sessionID,
	})
	if err != nil {
		return time.Time{}, err
	}
	if res.GetLockedUntil() == nil {
		return time.Time{}, ErrEmptyResponse
	}
	t, err := ptypes.Timestamp(res.GetLockedUntil())
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
