// Package registry keeps the resource factories that turn raw binding
// payloads from the host into typed values for function code.
package registry

import (
	"fmt"
	"sync"
)

// Well-known binding tags sent by the host.
const (
	TagStorageBlobs              = "AzureStorageBlobs"
	TagServiceBusReceivedMessage = "AzureServiceBusReceivedMessage"
	TagEventHubsEventData        = "AzureEventHubsEventData"
	TagCosmosDB                  = "CosmosDB"
)

// Factory converts the raw binding payload into the resource handed to
// the function.
type Factory func(payload interface{}) (interface{}, error)

// AlreadyRegisteredError is returned when a tag is registered twice.
type AlreadyRegisteredError struct {
	Tag string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("factory for %q is already registered", e.Tag)
}

// NotRegisteredError is returned when no factory exists for a tag.
type NotRegisteredError struct {
	Tag string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no factory registered for %q", e.Tag)
}

// Registry is a concurrency-safe map from binding tags to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New()
	})
	return defaultReg
}

// Register installs a factory for the given tag.
func (r *Registry) Register(tag string, f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[tag]; ok {
		return &AlreadyRegisteredError{Tag: tag}
	}
	r.factories[tag] = f
	return nil
}

// Unregister removes the factory for the given tag if present.
func (r *Registry) Unregister(tag string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, tag)
}

// Has reports whether a factory is registered for the tag.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[tag]
	return ok
}

// Create runs the factory registered for the tag on the payload.
func (r *Registry) Create(tag string, payload interface{}) (interface{}, error) {
	r.mu.RLock()
	f, ok := r.factories[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotRegisteredError{Tag: tag}
	}
	return f(payload)
}
