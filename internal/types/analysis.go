package types

// Dimension names the six fixed scoring dimensions of the analysis rubric.
type Dimension string

// Dimension constants define the fixed scoring dimensions.
const (
	DimClarity         Dimension = "clarity"
	DimTechnicalDepth  Dimension = "technicalDepth"
	DimSeniority       Dimension = "seniority"
	DimATSAlignment    Dimension = "atsAlignment"
	DimCompleteness    Dimension = "completeness"
	DimToneConsistency Dimension = "toneConsistency"
)

// Dimensions returns the six dimensions in canonical order.
func Dimensions() []Dimension {
	return []Dimension{
		DimClarity, DimTechnicalDepth, DimSeniority,
		DimATSAlignment, DimCompleteness, DimToneConsistency,
	}
}

// IsValid reports whether the dimension belongs to the fixed enumeration.
func (d Dimension) IsValid() bool {
	for _, known := range Dimensions() {
		if d == known {
			return true
		}
	}
	return false
}

// SignalLevel is the qualitative judgment the model emits per dimension.
// The scoring engine maps levels to numeric subscores with fixed thresholds.
type SignalLevel string

// Signal level constants, weakest to strongest.
const (
	SignalPoor      SignalLevel = "poor"
	SignalFair      SignalLevel = "fair"
	SignalGood      SignalLevel = "good"
	SignalStrong    SignalLevel = "strong"
	SignalExcellent SignalLevel = "excellent"
)

// IsValid reports whether the signal level belongs to the fixed enumeration.
func (s SignalLevel) IsValid() bool {
	switch s {
	case SignalPoor, SignalFair, SignalGood, SignalStrong, SignalExcellent:
		return true
	}
	return false
}

// DimensionSignal is the model's qualitative judgment for one dimension.
// Score is optional model-proposed numeric backing for the signal; the scoring
// engine only honors it within a sanity band around the signal's threshold.
type DimensionSignal struct {
	Signal   SignalLevel `json:"signal"`
	Evidence string      `json:"evidence,omitempty"`
	Score    *float64    `json:"score,omitempty"`
}

// AnalysisSignals is the validated model output consumed by the scoring engine.
type AnalysisSignals struct {
	Dimensions      map[Dimension]DimensionSignal `json:"dimensions"`
	Recommendations []RecommendationInput         `json:"recommendations"`
}

// RecommendationInput is a model-produced recommendation before rubric ordering.
type RecommendationInput struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Dimension        Dimension `json:"dimension"`
	SuggestedRewrite string    `json:"suggested_rewrite,omitempty"`
}

// Recommendation is a prioritized improvement suggestion in an analysis result.
type Recommendation struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Dimension        Dimension `json:"dimension"`
	Critical         bool      `json:"critical"`
	SuggestedRewrite string    `json:"suggested_rewrite,omitempty"`
}

// AnalysisResult is the scored outcome of the analyze operation.
// OverallScore is always recomputed from Subscores by the rubric, never cached.
type AnalysisResult struct {
	OverallScore    int               `json:"overall_score"`
	Subscores       map[Dimension]int `json:"subscores"`
	Recommendations []Recommendation  `json:"recommendations"`
}
