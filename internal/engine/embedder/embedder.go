package embedder

import "fmt"

// Embedder produces vector embeddings from text.
type Embedder interface {
	Embed(text string) ([]float32, error)
	EmbedBatch(texts []string) ([][]float32, error)
	Close() error
}

// ONNXEmbedder wraps the ONNX runtime and WordPiece tokenizer for local
// embedding inference. The pipeline is:
// tokenize → ONNX inference → attention-mask mean pool.
//
// Deterministic for a given model and input: no dropout, no sampling. Safe for
// concurrent use once constructed; ONNX Runtime sessions hold no per-call
// mutable state in inference mode.
type ONNXEmbedder struct {
	session *onnxSession
	tok     *tokenizer
}

// New creates an ONNXEmbedder by loading the ONNX model and vocabulary.
// libPath locates the ONNX Runtime shared library; when empty it is resolved
// next to the model file. A failure here is a fatal startup condition for the
// classification engine — there is no per-request recovery from a missing
// encoding backend.
func New(modelPath, vocabPath, libPath string) (*ONNXEmbedder, error) {
	sess, err := newONNXSession(modelPath, libPath)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	tok, err := newTokenizer(vocabPath)
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("embedder: %w", err)
	}

	return &ONNXEmbedder{session: sess, tok: tok}, nil
}

// EmbedDim returns the embedding dimensionality.
func (e *ONNXEmbedder) EmbedDim() int {
	return int(e.session.embedDim)
}

// Embed produces a single embedding vector for the given text.
func (e *ONNXEmbedder) Embed(text string) ([]float32, error) {
	vecs, err := e.EmbedBatch([]string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch produces embedding vectors for multiple texts in one inference
// call. Prototype construction depends on this during taxonomy setup.
func (e *ONNXEmbedder) EmbedBatch(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	batch := e.tok.tokenizeBatch(texts)

	hidden, err := e.session.infer(batch.inputIDs, batch.attentionMask, batch.batchSize, batch.seqLen)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	pooled := meanPool(hidden, batch.attentionMask, batch.batchSize, batch.seqLen, e.session.embedDim)

	dim := e.session.embedDim
	results := make([][]float32, batch.batchSize)
	for i := int64(0); i < batch.batchSize; i++ {
		results[i] = pooled[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return results, nil
}

// Close releases ONNX Runtime resources.
func (e *ONNXEmbedder) Close() error {
	if e.session != nil {
		return e.session.close()
	}
	return nil
}

// meanPool computes attention-mask-weighted mean pooling over the sequence
// dimension of transformer hidden states.
//
// hidden: flat [batchSize * seqLen * dim] float32 (per-token hidden states)
// mask:   flat [batchSize * seqLen] int64 (1 for real tokens, 0 for padding)
//
// Returns flat [batchSize * dim] float32 (one pooled vector per sample).
// A sequence with no real tokens pools to the zero vector.
func meanPool(hidden []float32, mask []int64, batchSize, seqLen, dim int64) []float32 {
	out := make([]float32, batchSize*dim)

	for b := int64(0); b < batchSize; b++ {
		maskOff := b * seqLen
		hiddenOff := b * seqLen * dim
		outOff := b * dim

		var count float32
		for s := int64(0); s < seqLen; s++ {
			if mask[maskOff+s] == 1 {
				count++
			}
		}
		if count == 0 {
			continue
		}

		for s := int64(0); s < seqLen; s++ {
			if mask[maskOff+s] != 1 {
				continue
			}
			tokOff := hiddenOff + s*dim
			for d := int64(0); d < dim; d++ {
				out[outOff+d] += hidden[tokOff+d]
			}
		}

		inv := 1.0 / count
		for d := int64(0); d < dim; d++ {
			out[outOff+d] *= inv
		}
	}

	return out
}
