package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The server uses this to keep per-session caches separate from the shared
// outline/image caches.
//
// Example usage:
//
//	// Session-specific keys for in-progress chat outlines
//	sessKeyer := NewScopedKeyer(NewDefaultKeyer(), "session:abc123:")
//
//	// Global keys for shared results
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// OutlineKey generates a prefixed key for outline caching.
func (k *ScopedKeyer) OutlineKey(topic string, opts OutlineKeyOpts) string {
	return k.prefix + k.inner.OutlineKey(topic, opts)
}

// ImageKey generates a prefixed key for image caching.
func (k *ScopedKeyer) ImageKey(prompt string, opts ImageKeyOpts) string {
	return k.prefix + k.inner.ImageKey(prompt, opts)
}

// DeckKey generates a prefixed key for deck caching.
func (k *ScopedKeyer) DeckKey(outlineHash string, opts DeckKeyOpts) string {
	return k.prefix + k.inner.DeckKey(outlineHash, opts)
}
