// Package classifier turns complaint text into a primary category and
// subcategory with confidence scores. It runs a fixed cascade of stages:
// strong financial signal detection, fraud-call detection, weighted keyword
// matching, social media heuristics, weak financial matching and finally a
// pure embedding comparison. The first stage that commits wins, and the
// embedding fallback always commits, so every input gets a classification.
package classifier

import (
	"strings"

	"github.com/cyberhelp-labs/triage/internal/engine/embedder"
	"github.com/cyberhelp-labs/triage/internal/engine/signal"
	"github.com/cyberhelp-labs/triage/internal/engine/taxonomy"
	"github.com/cyberhelp-labs/triage/internal/model"
)

// Stage names reported on each classification result.
const (
	StageStrongFinancial = "strong_financial"
	StageFraudCall       = "fraud_call"
	StageKeyword         = "keyword"
	StageSocial          = "social"
	StageWeakFinancial   = "weak_financial"
	StageEmbedding       = "embedding"
)

// Classifier runs the staged cascade against a fixed taxonomy.
type Classifier struct {
	emb embedder.Embedder
	tax *taxonomy.Taxonomy
}

// New creates a Classifier over the given embedder and taxonomy.
func New(emb embedder.Embedder, tax *taxonomy.Taxonomy) *Classifier {
	return &Classifier{emb: emb, tax: tax}
}

// stageFn inspects the request and either commits a classification or
// passes by returning nil.
type stageFn func(r *request) (*model.Classification, error)

var stages = []stageFn{
	stageStrongFinancial,
	stageFraudCall,
	stageKeyword,
	stageSocial,
	stageWeakFinancial,
	stageEmbedding,
}

// Classify runs the cascade. The only error source is the embedder; keyword
// stages never fail.
func (c *Classifier) Classify(text string) (model.Classification, error) {
	lower := strings.ToLower(text)
	r := &request{
		c:     c,
		text:  text,
		lower: lower,
		sig:   signal.Detect(lower),
	}
	for _, stage := range stages {
		res, err := stage(r)
		if err != nil {
			return model.Classification{}, err
		}
		if res != nil {
			return *res, nil
		}
	}
	// stageEmbedding always commits.
	return model.Classification{}, nil
}

// request carries per-classification state through the stages. The text
// embedding and the keyword match table are computed at most once no matter
// how many stages consult them.
type request struct {
	c     *Classifier
	text  string
	lower string
	sig   signal.Signals

	vec     []float32
	vecErr  error
	vecSet  bool
	matches []keywordMatch
	matched bool
}

func (r *request) embedding() ([]float32, error) {
	if !r.vecSet {
		r.vec, r.vecErr = r.c.emb.Embed(r.text)
		r.vecSet = true
	}
	return r.vec, r.vecErr
}

// score returns the normalized similarity between the request embedding and
// a subcategory prototype. A missing prototype scores 0.
func (r *request) score(emb []float32, sub string) float64 {
	proto, ok := r.c.tax.Prototype(sub)
	if !ok {
		return 0
	}
	return normalize(cosineSimilarity(emb, proto))
}

// bestOf returns the candidate whose prototype is most similar to the
// request embedding, with its normalized score. Ties resolve to the earlier
// candidate. With no usable prototype at all the result is "Others" at 0.
func (r *request) bestOf(emb []float32, candidates []string) (string, float64) {
	best := ""
	bestSim := -1.0
	for _, sub := range candidates {
		proto, ok := r.c.tax.Prototype(sub)
		if !ok {
			continue
		}
		if sim := cosineSimilarity(emb, proto); sim > bestSim {
			bestSim = sim
			best = sub
		}
	}
	if best == "" {
		return taxonomy.Others, 0
	}
	return best, normalize(bestSim)
}

func (r *request) primaryConf(emb []float32, mean []float32, floor float64) float64 {
	conf := normalize(cosineSimilarity(emb, mean))
	if conf < floor {
		conf = floor
	}
	return conf
}

func floorAt(score, floor float64) float64 {
	if score < floor {
		return floor
	}
	return score
}
