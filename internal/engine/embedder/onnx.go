package embedder

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxSession wraps a DynamicAdvancedSession for BERT-family encoder models.
// DistilBERT exports expose only input_ids/attention_mask; full BERT exports
// add token_type_ids. Both are handled.
type onnxSession struct {
	session       *ort.DynamicAdvancedSession
	inputNames    []string
	outputName    string
	embedDim      int64
	wantsTypeIDs  bool
}

// newONNXSession loads the ONNX model and creates an inference session.
// It validates the model's input/output tensor names and shapes. libPath
// overrides the ONNX Runtime shared-library location; when empty the library
// is expected next to the model file.
func newONNXSession(modelPath, libPath string) (*onnxSession, error) {
	if libPath == "" {
		libPath = filepath.Join(filepath.Dir(modelPath), "libonnxruntime.so")
	}

	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	// Inspect model to discover tensor names and shapes.
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	inputNames, wantsTypeIDs, err := validateInputs(inputs)
	if err != nil {
		return nil, err
	}

	// Validate output — expect a single tensor with shape [batch, seq, dim].
	if len(outputs) == 0 {
		return nil, fmt.Errorf("onnx: model has no outputs")
	}
	outputName := outputs[0].Name
	dims := outputs[0].Dimensions
	if len(dims) != 3 {
		return nil, fmt.Errorf("onnx: expected 3D output tensor, got %v", dims)
	}
	embedDim := dims[2]

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		inputNames,
		[]string{outputName},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxSession{
		session:      session,
		inputNames:   inputNames,
		outputName:   outputName,
		embedDim:     embedDim,
		wantsTypeIDs: wantsTypeIDs,
	}, nil
}

// validateInputs checks that the model has the expected encoder inputs and
// returns them in feed order, plus whether token_type_ids must be supplied.
func validateInputs(inputs []ort.InputOutputInfo) ([]string, bool, error) {
	nameSet := make(map[string]bool, len(inputs))
	for _, inp := range inputs {
		nameSet[inp.Name] = true
	}
	for _, name := range []string{"input_ids", "attention_mask"} {
		if !nameSet[name] {
			return nil, false, fmt.Errorf("onnx: model missing required input %q", name)
		}
	}

	names := []string{"input_ids", "attention_mask"}
	wantsTypeIDs := nameSet["token_type_ids"]
	if wantsTypeIDs {
		names = append(names, "token_type_ids")
	}
	return names, wantsTypeIDs, nil
}

// infer runs a single inference call. inputIDs and attentionMask are flat
// [batchSize * seqLen] slices. Returns the raw output tensor data as a flat
// float32 slice of shape [batchSize * seqLen * embedDim].
func (s *onnxSession) infer(inputIDs, attentionMask []int64, batchSize, seqLen int64) ([]float32, error) {
	shape := ort.NewShape(batchSize, seqLen)

	tIDs, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input_ids tensor: %w", err)
	}
	defer tIDs.Destroy()

	tMask, err := ort.NewTensor(shape, attentionMask)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create attention_mask tensor: %w", err)
	}
	defer tMask.Destroy()

	feeds := []ort.Value{tIDs, tMask}

	if s.wantsTypeIDs {
		// Single-segment input: all zeros.
		tTypes, err := ort.NewTensor(shape, make([]int64, batchSize*seqLen))
		if err != nil {
			return nil, fmt.Errorf("onnx: failed to create token_type_ids tensor: %w", err)
		}
		defer tTypes.Destroy()
		feeds = append(feeds, tTypes)
	}

	outShape := ort.NewShape(batchSize, seqLen, s.embedDim)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	if err := s.session.Run(feeds, []ort.Value{tOut}); err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	// Copy data out before the tensor is destroyed.
	src := tOut.GetData()
	result := make([]float32, len(src))
	copy(result, src)
	return result, nil
}

// close releases the ONNX session resources.
func (s *onnxSession) close() error {
	return s.session.Destroy()
}
