// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module never import a metrics or tracing backend. They
// emit events through small hook interfaces instead, and the application
// registers implementations at startup. Every hook defaults to a no-op.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRegistryHooks(&myRegistryHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Registry().OnFetchStart(ctx, "npm", name)
//	// ... query the registry ...
//	observability.Registry().OnFetchComplete(ctx, "npm", name, observability.FetchFound, time.Since(start), nil)
//
// The version checker reports every lookup outcome here, including the
// transport error behind a lookup that its public API only reports as
// "no latest version".
package observability

import (
	"context"
	"sync"
	"time"
)

// FetchStatus is the outcome of a single registry lookup.
type FetchStatus string

const (
	FetchFound    FetchStatus = "found"
	FetchNotFound FetchStatus = "not-found"
	FetchFailed   FetchStatus = "transport-error"
)

// =============================================================================
// Registry Hooks
// =============================================================================

// RegistryHooks receives events from latest-version lookups.
type RegistryHooks interface {
	OnFetchStart(ctx context.Context, registry, pkg string)

	// OnFetchComplete records the lookup outcome. err is set for
	// FetchNotFound and FetchFailed.
	OnFetchComplete(ctx context.Context, registry, pkg string, status FetchStatus, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the version cache.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, pkg string)
	OnCacheMiss(ctx context.Context, pkg string)
	OnCacheSet(ctx context.Context, pkg, version string)
	OnCacheClear(ctx context.Context, entries int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout, open circuit).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRegistryHooks is a no-op implementation of RegistryHooks.
type NoopRegistryHooks struct{}

func (NoopRegistryHooks) OnFetchStart(context.Context, string, string) {}
func (NoopRegistryHooks) OnFetchComplete(context.Context, string, string, FetchStatus, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)         {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)        {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, string) {}
func (NoopCacheHooks) OnCacheClear(context.Context, int)          {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	registryHooks RegistryHooks = NoopRegistryHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetRegistryHooks registers custom registry hooks.
// Nil leaves the current hooks in place.
func SetRegistryHooks(h RegistryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		registryHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Registry returns the registered registry hooks.
func Registry() RegistryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return registryHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	registryHooks = NoopRegistryHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
