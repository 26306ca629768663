// Package cache provides a small generic, thread-safe LRU cache.
//
// The quantity package uses it to bound per-culture derived data such as
// unit lookup indexes and tokenizer patterns: callers format and parse in a
// handful of cultures, but nothing stops a caller from cycling through many,
// so every per-culture structure lives behind a fixed-capacity LRUCache.
//
// # Usage
//
//	c := cache.NewLRUCache[string, *regexp.Regexp](32)
//
//	c.Put("de-DE", re)
//	re, found := c.Get("de-DE") // marks the entry as recently used
//
//	c.Len()   // number of entries
//	c.Clear() // drop everything
//
// Values are stored and returned whole. Two goroutines missing the same key
// may both build and Put a value; the later Put wins, which is harmless when
// the values are derived deterministically from the key.
package cache
