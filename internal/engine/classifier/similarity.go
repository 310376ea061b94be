package classifier

import "math"

// cosineSimilarity returns cos(a, b) in [-1, 1]. Mismatched lengths, empty
// inputs and zero vectors all score 0, never NaN.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// normalize maps a cosine similarity in [-1, 1] onto [0, 1] so it can be
// reported as a confidence score.
func normalize(sim float64) float64 {
	return (sim + 1) / 2
}
