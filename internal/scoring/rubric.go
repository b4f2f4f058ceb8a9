// Package scoring implements the deterministic analysis rubric. The model
// supplies qualitative signals; this package alone decides numbers, so
// repeated analysis of unchanged content yields stable scores instead of
// drifting with model stochasticity.
package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/types"
)

// Fixed thresholds translating qualitative signals to the 0-100 scale.
var signalThresholds = map[types.SignalLevel]int{
	types.SignalPoor:      20,
	types.SignalFair:      40,
	types.SignalGood:      60,
	types.SignalStrong:    80,
	types.SignalExcellent: 95,
}

// Dimension weights for the overall score. Must sum to 1.0.
var dimensionWeights = map[types.Dimension]float64{
	types.DimClarity:         0.20,
	types.DimTechnicalDepth:  0.20,
	types.DimSeniority:       0.15,
	types.DimATSAlignment:    0.15,
	types.DimCompleteness:    0.15,
	types.DimToneConsistency: 0.15,
}

// criticalThreshold marks a subscore as critical; critical recommendations are
// surfaced first and are the only ones allowed to carry a suggested rewrite.
const criticalThreshold = 40

// scoreSanityBand bounds how far a model-proposed numeric score may deviate
// from its signal's threshold before the threshold wins.
const scoreSanityBand = 10

// SignalScore returns the fixed numeric score for a qualitative signal level.
func SignalScore(level types.SignalLevel) int {
	return signalThresholds[level]
}

// Weight returns the overall-score weight of a dimension.
func Weight(d types.Dimension) float64 {
	return dimensionWeights[d]
}

// Subscores derives the six numeric subscores from validated signals.
// A model-proposed numeric score is honored only when it coerces cleanly and
// stays within the sanity band of its signal's threshold.
func Subscores(signals *types.AnalysisSignals) (map[types.Dimension]int, error) {
	subscores := make(map[types.Dimension]int, len(dimensionWeights))

	for _, dim := range types.Dimensions() {
		sig, ok := signals.Dimensions[dim]
		if !ok {
			return nil, fmt.Errorf("missing signal for dimension %s", dim)
		}
		if !sig.Signal.IsValid() {
			return nil, fmt.Errorf("invalid signal level %q for dimension %s", sig.Signal, dim)
		}

		score := signalThresholds[sig.Signal]
		if sig.Score != nil {
			coerced, err := parsing.CoerceScore(*sig.Score)
			if err != nil {
				return nil, err
			}
			if diff := coerced - score; diff >= -scoreSanityBand && diff <= scoreSanityBand {
				score = coerced
			}
		}
		subscores[dim] = score
	}

	return subscores, nil
}

// Overall computes the weighted average of subscores. It is a pure function:
// identical subscores always produce an identical overall score.
func Overall(subscores map[types.Dimension]int) int {
	var sum float64
	for dim, weight := range dimensionWeights {
		sum += float64(subscores[dim]) * weight
	}
	return int(sum + 0.5)
}

// BuildResult assembles the final AnalysisResult from validated signals:
// numeric subscores, recomputed overall score, and rubric-ordered
// recommendations.
func BuildResult(signals *types.AnalysisSignals) (*types.AnalysisResult, error) {
	subscores, err := Subscores(signals)
	if err != nil {
		return nil, err
	}

	recommendations := orderRecommendations(signals.Recommendations, subscores)

	return &types.AnalysisResult{
		OverallScore:    Overall(subscores),
		Subscores:       subscores,
		Recommendations: recommendations,
	}, nil
}

// orderRecommendations applies the fixed priority policy: critical issues
// first, then by dimension weight descending; the sort is stable so the
// model's own ordering breaks ties. Suggested rewrites survive only on
// critical recommendations.
func orderRecommendations(inputs []types.RecommendationInput, subscores map[types.Dimension]int) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(inputs))
	for _, in := range inputs {
		critical := subscores[in.Dimension] < criticalThreshold
		rec := types.Recommendation{
			Title:       in.Title,
			Description: in.Description,
			Dimension:   in.Dimension,
			Critical:    critical,
		}
		if critical {
			rec.SuggestedRewrite = in.SuggestedRewrite
		}
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(a, b int) bool {
		if recs[a].Critical != recs[b].Critical {
			return recs[a].Critical
		}
		return dimensionWeights[recs[a].Dimension] > dimensionWeights[recs[b].Dimension]
	})

	return recs
}
