package triage

import "path/filepath"

type options struct {
	modelDir      string
	modelPath     string
	vocabPath     string
	onnxLibPath   string
	gateThreshold float64
}

// Option configures a Triage instance.
type Option func(*options)

// WithModelDir sets the directory containing model files.
// Expects: model_quantized.onnx, vocab.txt.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.modelDir = dir
	}
}

// WithModelPaths sets explicit paths for the model and vocab files.
// Use this when model files aren't in the default directory layout.
func WithModelPaths(model, vocab string) Option {
	return func(o *options) {
		o.modelPath = model
		o.vocabPath = vocab
	}
}

// WithOnnxLibrary sets the path to the onnxruntime shared library. By
// default it is looked up next to the model file.
func WithOnnxLibrary(path string) Option {
	return func(o *options) {
		o.onnxLibPath = path
	}
}

// WithGateThreshold sets the primary confidence below which results are
// presented as uncertain. Default: 0.5.
func WithGateThreshold(t float64) Option {
	return func(o *options) {
		o.gateThreshold = t
	}
}

func defaultOptions() options {
	return options{
		gateThreshold: 0.5,
	}
}

// resolvePaths determines the model and vocab file paths from the configured
// options. Explicit paths take precedence over modelDir.
func resolvePaths(o options) (model, vocab string) {
	if o.modelPath != "" {
		return o.modelPath, o.vocabPath
	}
	dir := o.modelDir
	if dir == "" {
		dir = "models"
	}
	return filepath.Join(dir, "model_quantized.onnx"), filepath.Join(dir, "vocab.txt")
}
