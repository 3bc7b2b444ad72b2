package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/feedbacklabs/feedback-engine/internal/cache"
)

// ResponseKey is the cache key holding the generated response for a
// prompt. The text is hashed so arbitrarily long prompts make fixed-size
// keys.
func ResponseKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "genresp:" + hex.EncodeToString(sum[:])
}

// CachedGenerator remembers successful generations in Redis so revisiting
// a prompt does not trigger a second model call. The cache is advisory:
// read and write trouble is logged and the inner generator's answer
// stands.
type CachedGenerator struct {
	inner Generator
	cache *cache.Cache
	ttl   time.Duration
}

func WithCache(inner Generator, c *cache.Cache, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{inner: inner, cache: c, ttl: ttl}
}

func (g *CachedGenerator) Name() string { return g.inner.Name() }

func (g *CachedGenerator) Generate(ctx context.Context, prompt string) Result {
	key := ResponseKey(prompt)

	var text string
	if err := g.cache.Get(ctx, key, &text); err == nil && text != "" {
		return Available(text)
	}

	res := g.inner.Generate(ctx, prompt)
	if res.Outcome == OutcomeAvailable {
		if err := g.cache.Set(ctx, key, res.Text, g.ttl); err != nil {
			slog.Warn("response cache write failed", "key", key, "error", err)
		}
	}
	return res
}
