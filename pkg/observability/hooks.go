// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about codec operations and configuration loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The codec in pkg/perm stays pure; callers that want events (the CLI)
// report them around each call.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCodecHooks(&myCodecHooks{})
//	    // ... run application
//	}
//
// Callers emit events around an operation:
//
//	done := observability.Track(ctx, observability.OpNth, size)
//	p, err := perm.NthStrict(rank, size)
//	done(err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Operation names reported to CodecHooks.
const (
	OpLehmer      = "lehmer"
	OpPermutation = "permutation"
	OpToInt       = "to_int"
	OpFromInt     = "from_int"
	OpIndex       = "index"
	OpNth         = "nth"
	OpNthOf       = "nth_of"
)

// =============================================================================
// Codec Hooks
// =============================================================================

// CodecHooks receives events from rank/permutation codec operations.
type CodecHooks interface {
	// OnOperationStart records the start of op on n elements.
	OnOperationStart(ctx context.Context, op string, n int)

	// OnOperationComplete records the end of op, successful or not.
	OnOperationComplete(ctx context.Context, op string, n int, duration time.Duration, err error)
}

// =============================================================================
// Config Hooks
// =============================================================================

// ConfigHooks receives events from configuration loading.
type ConfigHooks interface {
	// OnConfigLoad records a load attempt; path is empty for built-in defaults.
	OnConfigLoad(ctx context.Context, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCodecHooks is a no-op implementation of CodecHooks.
type NoopCodecHooks struct{}

func (NoopCodecHooks) OnOperationStart(context.Context, string, int)                          {}
func (NoopCodecHooks) OnOperationComplete(context.Context, string, int, time.Duration, error) {}

// NoopConfigHooks is a no-op implementation of ConfigHooks.
type NoopConfigHooks struct{}

func (NoopConfigHooks) OnConfigLoad(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	codecHooks  CodecHooks  = NoopCodecHooks{}
	configHooks ConfigHooks = NoopConfigHooks{}
	hooksMu     sync.RWMutex
)

// SetCodecHooks registers custom codec hooks.
// This should be called once at application startup before any codec operations.
func SetCodecHooks(h CodecHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		codecHooks = h
	}
}

// SetConfigHooks registers custom config hooks.
func SetConfigHooks(h ConfigHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		configHooks = h
	}
}

// Codec returns the registered codec hooks.
func Codec() CodecHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return codecHooks
}

// Config returns the registered config hooks.
func Config() ConfigHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return configHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	codecHooks = NoopCodecHooks{}
	configHooks = NoopConfigHooks{}
}

// Track reports the start of op to the registered codec hooks and returns a
// function that reports its completion with the elapsed time.
func Track(ctx context.Context, op string, n int) func(error) {
	h := Codec()
	start := time.Now()
	h.OnOperationStart(ctx, op, n)
	return func(err error) {
		h.OnOperationComplete(ctx, op, n, time.Since(start), err)
	}
}
