// Package blobs builds Azure Blob Storage clients for blob bindings,
// resolving credentials from worker environment variables and caching
// clients per binding.
package blobs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/azfunc/sbext/common"
)

const (
	defaultCacheSize = 100
	minCacheSize     = 5
	maxCacheSize     = 100
)

// ClientFactory creates and caches service clients for blob bindings.
// Distinct bindings get distinct cache slots, the least recently used
// client is evicted when the cache is full.
type ClientFactory struct {
	mu        sync.Mutex
	cache     *lruCache
	logger    common.Logger
	newClient func(connectionName string) (*azblob.Client, error)
}

// FactoryOption configures the factory.
type FactoryOption func(*ClientFactory)

// WithCacheSize sets the client cache capacity. Values outside the
// supported range are clamped.
func WithCacheSize(n int) FactoryOption {
	return func(f *ClientFactory) {
		if n < minCacheSize {
			n = minCacheSize
		}
		if n > maxCacheSize {
			n = maxCacheSize
		}
		f.cache = newLRUCache(n)
	}
}

// WithFactoryLogger sets the factory logger.
func WithFactoryLogger(l common.Logger) FactoryOption {
	return func(f *ClientFactory) {
		f.logger = l
	}
}

// NewClientFactory returns a factory with the default cache capacity.
func NewClientFactory(opts ...FactoryOption) *ClientFactory {
	f := &ClientFactory{
		cache:     newLRUCache(defaultCacheSize),
		logger:    common.NewLoggerFromEnv("blobs"),
		newClient: clientFromEnvironment,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Client returns the service client for the binding identified by the
// connection setting name, container and blob path, creating it on
// first use.
func (f *ClientFactory) Client(connectionName, container, blob string) (*azblob.Client, error) {
	key := cacheKey(connectionName, container, blob)

	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.cache.get(key); ok {
		return v.(*azblob.Client), nil
	}
	client, err := f.newClient(connectionName)
	if err != nil {
		return nil, err
	}
	f.logger.Debugf("created blob client for %s (%s)", connectionName, key)
	f.cache.add(key, client)
	return client, nil
}

// Len reports the number of cached clients.
func (f *ClientFactory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cache.len()
}

// cacheKey derives a stable cache slot for a binding.
func cacheKey(connectionName, container, blob string) string {
	sum := sha256.Sum256([]byte(connectionName + "|" + container + "|" + blob))
	return hex.EncodeToString(sum[:])[:16]
}

// clientFromEnvironment resolves the connection setting the way the
// functions host does: the plain setting holds a connection string,
// the __serviceUri/__blobServiceUri suffixed settings name an endpoint
// to reach with token credentials.
func clientFromEnvironment(connectionName string) (*azblob.Client, error) {
	if conn := os.Getenv(connectionName); conn != "" {
		return azblob.NewClientFromConnectionString(conn, nil)
	}

	serviceURI := os.Getenv(connectionName + "__serviceUri")
	if serviceURI == "" {
		serviceURI = os.Getenv(connectionName + "__blobServiceUri")
	}
	if serviceURI == "" {
		return nil, fmt.Errorf("blobs: connection %q is not configured", connectionName)
	}

	cred, err := credentialFromEnvironment(connectionName)
	if err != nil {
		return nil, err
	}
	return azblob.NewClient(serviceURI, cred, nil)
}

func credentialFromEnvironment(connectionName string) (azcore.TokenCredential, error) {
	clientID := os.Getenv(connectionName + "__clientId")
	credKind := os.Getenv(connectionName + "__credential")
	if clientID != "" && credKind == "managedidentity" {
		return azidentity.NewManagedIdentityCredential(&azidentity.ManagedIdentityCredentialOptions{
			ID: azidentity.ClientID(clientID),
		})
	}
	return azidentity.NewDefaultAzureCredential(nil)
}
