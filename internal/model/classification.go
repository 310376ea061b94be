package model

// Uncertain is the presented category when primary confidence falls below the
// caller-facing gate. It is not a taxonomy member.
const Uncertain = "uncertain"

// Classification is the engine's output for one complaint. It is produced
// fresh per input and never persisted by the engine.
type Classification struct {
	Primary       string  // primary category ("Financial Fraud", "Social Media Fraud")
	Subcategory   string  // subcategory key within the primary category
	PrimaryConf   float64 // calibrated primary confidence in [0,1]
	SubConf       float64 // calibrated subcategory confidence in [0,1]
	Stage         string  // name of the pipeline stage that committed the result
}

// Presented applies the caller-facing confidence gate: any result whose primary
// confidence is below threshold is surfaced as uncertain/uncertain. The numeric
// confidences are kept as computed.
func (c Classification) Presented(threshold float64) Classification {
	if c.PrimaryConf < threshold {
		out := c
		out.Primary = Uncertain
		out.Subcategory = Uncertain
		return out
	}
	return c
}
