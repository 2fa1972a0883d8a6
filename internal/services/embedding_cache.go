package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"ai-placement-tracker/internal/cache"
)

type cachedEmbedder struct {
	next      Embedder
	cache     cache.Cache
	namespace string
	ttl       time.Duration
}

// NewCachedEmbedder serves repeated texts (ideal answers, question text) from
// the cache. Cache failures fall through to the wrapped embedder.
func NewCachedEmbedder(next Embedder, c cache.Cache, namespace string, ttl time.Duration) Embedder {
	return &cachedEmbedder{next: next, cache: c, namespace: namespace, ttl: ttl}
}

func (e *cachedEmbedder) EmbedTexts(ctx context.Context, texts ...string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	var missIdx []int
	var missTexts []string

	for i, text := range texts {
		if vec, ok := e.lookup(ctx, text); ok {
			vectors[i] = vec
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, text)
	}

	if len(missTexts) == 0 {
		return vectors, nil
	}

	fresh, err := e.next.EmbedTexts(ctx, missTexts...)
	if err != nil {
		return nil, err
	}

	for j, i := range missIdx {
		vectors[i] = fresh[j]
		e.store(ctx, missTexts[j], fresh[j])
	}
	return vectors, nil
}

func (e *cachedEmbedder) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "emb:" + e.namespace + ":" + hex.EncodeToString(sum[:])
}

func (e *cachedEmbedder) lookup(ctx context.Context, text string) ([]float32, bool) {
	raw, ok, err := e.cache.Get(ctx, e.key(text))
	if err != nil {
		log.Warn().Err(err).Msg("⚠️  Embedding cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var vec []float32
	if err := json.Unmarshal(raw, &vec); err != nil || len(vec) == 0 {
		return nil, false
	}
	return vec, true
}

func (e *cachedEmbedder) store(ctx context.Context, text string, vec []float32) {
	raw, err := json.Marshal(vec)
	if err != nil {
		return
	}
	if err := e.cache.Set(ctx, e.key(text), raw, e.ttl); err != nil {
		log.Warn().Err(err).Msg("⚠️  Embedding cache write failed")
	}
}
