// Package cache provides an in-memory embedding cache.
package cache

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/brief"
)

var _ brief.Embedder = (*Embedder)(nil)

type entry struct {
	model  string
	text   string
	vector []float32
}

// Embedder caches vectors from the wrapped embedder for the life of the
// process. Entries are keyed by model and exact text and never evicted.
// It is safe for concurrent use.
type Embedder struct {
	next brief.Embedder

	mu      sync.Mutex
	entries map[uint64][]entry
	hits    int
	misses  int
}

// NewEmbedder wraps next with a cache.
func NewEmbedder(next brief.Embedder) *Embedder {
	return &Embedder{next: next, entries: make(map[uint64][]entry)}
}

// Model returns the wrapped embedder's model.
func (e *Embedder) Model() string {
	return e.next.Model()
}

// Embed returns cached vectors where available and sends the remaining
// texts to the wrapped embedder in one call, preserving input order.
// Nothing is cached when the wrapped call fails.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	model := e.next.Model()
	out := make([][]float32, len(texts))

	var missing []string
	var missingIdx []int
	e.mu.Lock()
	for i, text := range texts {
		if v, ok := e.lookup(model, text); ok {
			out[i] = v
			e.hits++
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
		e.misses++
	}
	e.mu.Unlock()

	if len(missing) == 0 {
		return out, nil
	}

	vectors, err := e.next.Embed(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(missing) {
		return nil, brief.Errorf(brief.EINTERNAL, "embedder returned %d vectors for %d texts", len(vectors), len(missing))
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for j, v := range vectors {
		out[missingIdx[j]] = v
		e.store(model, missing[j], v)
	}
	return out, nil
}

// Stats returns the number of cache hits and misses so far.
func (e *Embedder) Stats() (hits, misses int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits, e.misses
}

func key(model, text string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(model)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(text)
	return d.Sum64()
}

func (e *Embedder) lookup(model, text string) ([]float32, bool) {
	for _, en := range e.entries[key(model, text)] {
		if en.model == model && en.text == text {
			return en.vector, true
		}
	}
	return nil, false
}

func (e *Embedder) store(model, text string, vector []float32) {
	if _, ok := e.lookup(model, text); ok {
		return
	}
	k := key(model, text)
	e.entries[k] = append(e.entries[k], entry{model: model, text: text, vector: vector})
}
