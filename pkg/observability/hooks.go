// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution, cache operations, and calls to
// the generative AI backends.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnOutlineStart(ctx, topic)
//	// ... generate outline ...
//	observability.Pipeline().OnOutlineComplete(ctx, topic, slideCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the deck generation pipeline.
type PipelineHooks interface {
	// Outline events
	OnOutlineStart(ctx context.Context, topic string)
	OnOutlineComplete(ctx context.Context, topic string, slideCount int, duration time.Duration, err error)

	// Illustration events
	OnIllustrateStart(ctx context.Context, slideCount int)
	OnIllustrateComplete(ctx context.Context, imageCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, theme string, slideCount int)
	OnRenderComplete(ctx context.Context, theme string, bytes int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// AI Backend Hooks
// =============================================================================

// AIHooks receives events from calls to the generative AI backends.
type AIHooks interface {
	// OnRequest records an outgoing model request.
	OnRequest(ctx context.Context, backend, model string)

	// OnResponse records a completed model request.
	OnResponse(ctx context.Context, backend, model string, duration time.Duration)

	// OnError records a failed model request (network failure, rate limit).
	OnError(ctx context.Context, backend, model string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnOutlineStart(context.Context, string) {}
func (NoopPipelineHooks) OnOutlineComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnIllustrateStart(context.Context, int)                          {}
func (NoopPipelineHooks) OnIllustrateComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, int)                      {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopAIHooks is a no-op implementation of AIHooks.
type NoopAIHooks struct{}

func (NoopAIHooks) OnRequest(context.Context, string, string)                 {}
func (NoopAIHooks) OnResponse(context.Context, string, string, time.Duration) {}
func (NoopAIHooks) OnError(context.Context, string, string, error)            {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	aiHooks       AIHooks       = NoopAIHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetAIHooks registers custom AI backend hooks.
// This should be called once at application startup before any model calls.
func SetAIHooks(h AIHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		aiHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// AI returns the registered AI backend hooks.
func AI() AIHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return aiHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	aiHooks = NoopAIHooks{}
}
