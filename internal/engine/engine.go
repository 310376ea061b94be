// Package engine orchestrates complaint classification: embed, run the
// staged classifier, apply the confidence gate and record metrics.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cyberhelp-labs/triage/internal/engine/classifier"
	"github.com/cyberhelp-labs/triage/internal/engine/embedder"
	"github.com/cyberhelp-labs/triage/internal/engine/taxonomy"
	"github.com/cyberhelp-labs/triage/internal/metrics"
	"github.com/cyberhelp-labs/triage/internal/model"
)

// Engine ties the embedder, taxonomy and classifier together behind a single
// Process call.
type Engine struct {
	embedder   embedder.Embedder
	taxonomy   *taxonomy.Taxonomy
	classifier *classifier.Classifier
	gate       float64
}

// New creates an Engine. gate is the confidence threshold below which a
// classification is presented as uncertain.
func New(emb embedder.Embedder, tax *taxonomy.Taxonomy, cls *classifier.Classifier, gate float64) *Engine {
	return &Engine{
		embedder:   emb,
		taxonomy:   tax,
		classifier: cls,
		gate:       gate,
	}
}

// Process classifies one complaint and applies the confidence gate. Empty or
// whitespace-only text is rejected before any model work.
func (e *Engine) Process(text string) (model.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return model.Classification{}, fmt.Errorf("engine: empty complaint text")
	}

	start := time.Now()
	res, err := e.classifier.Classify(text)
	if err != nil {
		return model.Classification{}, fmt.Errorf("engine: classify: %w", err)
	}
	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())

	presented := res.Presented(e.gate)
	if presented.Primary == model.Uncertain {
		metrics.UncertainTotal.Inc()
	}
	metrics.ClassificationsTotal.WithLabelValues(presented.Primary, presented.Stage).Inc()

	slog.Debug("classified complaint",
		"primary", presented.Primary,
		"subcategory", presented.Subcategory,
		"stage", presented.Stage,
		"primary_conf", presented.PrimaryConf,
		"sub_conf", presented.SubConf,
	)
	return presented, nil
}

// ProcessBatch classifies a slice of complaints, stopping at the first error.
func (e *Engine) ProcessBatch(texts []string) ([]model.Classification, error) {
	out := make([]model.Classification, 0, len(texts))
	for _, text := range texts {
		res, err := e.Process(text)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Close releases the underlying embedder resources.
func (e *Engine) Close() error {
	return e.embedder.Close()
}
