package tokenizer

import "sync"

var cache sync.Map // Config fingerprint -> *Tokenizer

// Cached returns the memoized Tokenizer for the given configuration,
// compiling it on first use. Compiled tokenizers are immutable and shared
// across concurrent callers; the cache is keyed by the configuration
// fingerprint, so distinct dialects never collide.
func Cached(cfg Config) *Tokenizer {
	key := cfg.Fingerprint()
	if t, ok := cache.Load(key); ok {
		return t.(*Tokenizer)
	}

	t, _ := cache.LoadOrStore(key, New(cfg))
	return t.(*Tokenizer)
}

// ResetCache discards all memoized tokenizers. Subsequent Cached calls
// recompile from configuration.
func ResetCache() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}
