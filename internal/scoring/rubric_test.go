package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/types"
)

func allSignals(level types.SignalLevel) *types.AnalysisSignals {
	dims := make(map[types.Dimension]types.DimensionSignal)
	for _, d := range types.Dimensions() {
		dims[d] = types.DimensionSignal{Signal: level}
	}
	return &types.AnalysisSignals{Dimensions: dims}
}

func TestWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, d := range types.Dimensions() {
		sum += Weight(d)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSignalThresholds(t *testing.T) {
	assert.Equal(t, 20, SignalScore(types.SignalPoor))
	assert.Equal(t, 40, SignalScore(types.SignalFair))
	assert.Equal(t, 60, SignalScore(types.SignalGood))
	assert.Equal(t, 80, SignalScore(types.SignalStrong))
	assert.Equal(t, 95, SignalScore(types.SignalExcellent))
}

func TestSubscoresAreDeterministic(t *testing.T) {
	signals := allSignals(types.SignalGood)

	first, err := Subscores(signals)
	require.NoError(t, err)
	second, err := Subscores(signals)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, d := range types.Dimensions() {
		assert.Equal(t, 60, first[d])
	}
}

func TestSubscoresHonorScoreWithinSanityBand(t *testing.T) {
	signals := allSignals(types.SignalGood)

	inBand := 66.0
	sig := signals.Dimensions[types.DimClarity]
	sig.Score = &inBand
	signals.Dimensions[types.DimClarity] = sig

	outOfBand := 95.0
	sig = signals.Dimensions[types.DimSeniority]
	sig.Score = &outOfBand
	signals.Dimensions[types.DimSeniority] = sig

	subscores, err := Subscores(signals)
	require.NoError(t, err)

	// Within the band the model's number wins; outside it the threshold does.
	assert.Equal(t, 66, subscores[types.DimClarity])
	assert.Equal(t, 60, subscores[types.DimSeniority])
}

func TestSubscoresRejectWildScore(t *testing.T) {
	signals := allSignals(types.SignalGood)

	wild := 400.0
	sig := signals.Dimensions[types.DimClarity]
	sig.Score = &wild
	signals.Dimensions[types.DimClarity] = sig

	_, err := Subscores(signals)
	var parseErr *parsing.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestSubscoresRequireEveryDimension(t *testing.T) {
	signals := allSignals(types.SignalGood)
	delete(signals.Dimensions, types.DimToneConsistency)

	_, err := Subscores(signals)
	assert.Error(t, err)
}

func TestOverallWeightedAverage(t *testing.T) {
	subscores := map[types.Dimension]int{
		types.DimClarity:         100,
		types.DimTechnicalDepth:  100,
		types.DimSeniority:       0,
		types.DimATSAlignment:    0,
		types.DimCompleteness:    0,
		types.DimToneConsistency: 0,
	}
	// 0.20*100 + 0.20*100 = 40.
	assert.Equal(t, 40, Overall(subscores))

	uniform := map[types.Dimension]int{}
	for _, d := range types.Dimensions() {
		uniform[d] = 73
	}
	assert.Equal(t, 73, Overall(uniform))
}

func TestBuildResultOrdersRecommendations(t *testing.T) {
	signals := allSignals(types.SignalGood)

	// completeness is critical, seniority is not.
	sig := signals.Dimensions[types.DimCompleteness]
	sig.Signal = types.SignalPoor
	signals.Dimensions[types.DimCompleteness] = sig

	signals.Recommendations = []types.RecommendationInput{
		{Title: "seniority fix", Dimension: types.DimSeniority, Description: "d", SuggestedRewrite: "keep senior"},
		{Title: "clarity fix", Dimension: types.DimClarity, Description: "d"},
		{Title: "completeness fix", Dimension: types.DimCompleteness, Description: "d", SuggestedRewrite: "add section"},
	}

	result, err := BuildResult(signals)
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 3)

	// Critical first, then higher-weight dimension.
	assert.Equal(t, "completeness fix", result.Recommendations[0].Title)
	assert.True(t, result.Recommendations[0].Critical)
	assert.Equal(t, "add section", result.Recommendations[0].SuggestedRewrite)

	assert.Equal(t, "clarity fix", result.Recommendations[1].Title)

	// Suggested rewrites are stripped from non-critical recommendations.
	assert.Equal(t, "seniority fix", result.Recommendations[2].Title)
	assert.Empty(t, result.Recommendations[2].SuggestedRewrite)
}

func TestBuildResultRecomputesOverall(t *testing.T) {
	signals := allSignals(types.SignalStrong)
	result, err := BuildResult(signals)
	require.NoError(t, err)
	assert.Equal(t, 80, result.OverallScore)
}
