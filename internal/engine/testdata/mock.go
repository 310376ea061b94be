// Package testdata provides the deterministic mock embedder and the labeled
// complaint corpus shared by engine tests. No ONNX runtime is involved, so
// tests built on this package run anywhere.
package testdata

import (
	"hash/fnv"
	"strings"
)

// MockDim is the vector width the mock embedder produces.
const MockDim = 16

// MockEmbedder derives a deterministic pseudo-embedding from the FNV hash of
// each input string. Identical inputs always map to identical vectors, and
// distinct inputs almost always land far apart, which is enough for tests
// that only care about self-similarity and stable argmax behavior. Specific
// texts can be pinned to exact vectors via Fixed.
type MockEmbedder struct {
	// Fixed overrides the hash-derived vector for exact input strings.
	Fixed map[string][]float32

	// Calls records every EmbedBatch invocation for assertion on batching.
	Calls [][]string
}

func (m *MockEmbedder) Embed(text string) ([]float32, error) {
	vecs, err := m.EmbedBatch([]string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (m *MockEmbedder) EmbedBatch(texts []string) ([][]float32, error) {
	m.Calls = append(m.Calls, append([]string{}, texts...))
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if fixed, ok := m.Fixed[t]; ok {
			out[i] = append([]float32{}, fixed...)
			continue
		}
		out[i] = hashVector(t)
	}
	return out, nil
}

func (m *MockEmbedder) Close() error { return nil }

// hashVector spreads the token hashes of text over MockDim buckets. Shared
// words between two texts raise their cosine similarity, so texts about the
// same topic score closer than unrelated ones.
func hashVector(text string) []float32 {
	vec := make([]float32, MockDim)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		sum := h.Sum32()
		vec[sum%MockDim] += 1.0
		vec[(sum>>8)%MockDim] += 0.5
	}
	return vec
}

// Basis returns a one-hot vector along axis i, for tests that need exact
// control over cosine geometry.
func Basis(i int) []float32 {
	vec := make([]float32, MockDim)
	vec[i%MockDim] = 1
	return vec
}
