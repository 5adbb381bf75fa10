package extractor

import (
	"crypto/sha256"
	"sync"

	"github.com/jonathan/resume-intel/internal/types"
)

// Cached wraps an Engine with memoization keyed on a SHA-256 of the input
// text. Extraction is pure, so a cached result is always valid for identical
// input; the mutex only guards the map against concurrent server calls.
type Cached struct {
	engine *Engine

	mu    sync.Mutex
	cache map[[sha256.Size]byte]types.ExtractionResult
}

// NewCached creates a memoizing wrapper around engine.
func NewCached(engine *Engine) *Cached {
	return &Cached{
		engine: engine,
		cache:  make(map[[sha256.Size]byte]types.ExtractionResult),
	}
}

// Extract returns the cached result for text, running the engine on a miss.
func (c *Cached) Extract(text string) types.ExtractionResult {
	key := sha256.Sum256([]byte(text))

	c.mu.Lock()
	result, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return result
	}

	result = c.engine.Extract(text)

	c.mu.Lock()
	c.cache[key] = result
	c.mu.Unlock()

	return result
}
