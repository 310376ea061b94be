package triage

import (
	"fmt"

	"github.com/cyberhelp-labs/triage/internal/engine"
	"github.com/cyberhelp-labs/triage/internal/engine/classifier"
	"github.com/cyberhelp-labs/triage/internal/engine/embedder"
	"github.com/cyberhelp-labs/triage/internal/engine/taxonomy"
	"github.com/cyberhelp-labs/triage/internal/extract"
	"github.com/cyberhelp-labs/triage/internal/model"
	triaging "github.com/cyberhelp-labs/triage/internal/triage"
)

// Entities are the structured values extracted from complaint text.
type Entities = model.Entities

// Report is the full triage outcome for one complaint.
type Report struct {
	PrimaryCategory string
	Subcategory     string
	PrimaryConf     float64
	SubConf         float64
	Stage           string
	Entities        Entities
	Priority        string
	SuggestedAction string
}

// Triage is a fraud complaint classification engine.
// It embeds complaint text and runs a staged keyword and similarity cascade
// against a fixed two-level taxonomy. Safe for concurrent use.
type Triage struct {
	engine *engine.Engine
}

// New creates a Triage instance, loading model files and pre-embedding the
// taxonomy prototypes. This is an expensive operation; create once, reuse
// across requests.
func New(opts ...Option) (*Triage, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	modelPath, vocabPath := resolvePaths(o)

	emb, err := embedder.New(modelPath, vocabPath, o.onnxLibPath)
	if err != nil {
		return nil, fmt.Errorf("triage: %w", err)
	}

	tax, err := taxonomy.New(emb)
	if err != nil {
		emb.Close()
		return nil, fmt.Errorf("triage: %w", err)
	}

	cls := classifier.New(emb, tax)
	return &Triage{engine: engine.New(emb, tax, cls, o.gateThreshold)}, nil
}

// Classify produces a full triage report for a single complaint.
func (t *Triage) Classify(text string) (Report, error) {
	res, err := t.engine.Process(text)
	if err != nil {
		return Report{}, err
	}
	return buildReport(res, text), nil
}

// ClassifyBatch classifies multiple complaints, stopping at the first error.
func (t *Triage) ClassifyBatch(texts []string) ([]Report, error) {
	results, err := t.engine.ProcessBatch(texts)
	if err != nil {
		return nil, err
	}
	reports := make([]Report, len(results))
	for i, res := range results {
		reports[i] = buildReport(res, texts[i])
	}
	return reports, nil
}

// Close releases the underlying model resources.
func (t *Triage) Close() error {
	return t.engine.Close()
}

func buildReport(res model.Classification, text string) Report {
	ents := extract.Entities(text)
	return Report{
		PrimaryCategory: res.Primary,
		Subcategory:     res.Subcategory,
		PrimaryConf:     res.PrimaryConf,
		SubConf:         res.SubConf,
		Stage:           res.Stage,
		Entities:        ents,
		Priority:        triaging.Priority(res, ents),
		SuggestedAction: triaging.Advise(res, ents),
	}
}
