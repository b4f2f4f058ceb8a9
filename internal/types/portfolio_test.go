package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionTypeIsValid(t *testing.T) {
	for _, st := range SectionTypes() {
		assert.True(t, st.IsValid())
	}
	assert.False(t, SectionType("hobbies").IsValid())
	assert.False(t, SectionType("").IsValid())
}

func TestToneIsValid(t *testing.T) {
	for _, tone := range Tones() {
		assert.True(t, tone.IsValid())
	}
	assert.False(t, Tone("sarcastic").IsValid())
}

func TestSectionTypesPresent(t *testing.T) {
	snapshot := &PortfolioSnapshot{
		Sections: []Section{
			{Type: SectionSkills},
			{Type: SectionSummary},
			{Type: SectionSkills},
		},
	}
	assert.Equal(t, []SectionType{SectionSkills, SectionSummary}, snapshot.SectionTypesPresent())
}

func TestSectionOfType(t *testing.T) {
	snapshot := &PortfolioSnapshot{
		Sections: []Section{
			{Type: SectionSummary, Content: "first"},
			{Type: SectionSummary, Content: "second"},
		},
	}

	got := snapshot.SectionOfType(SectionSummary)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Content)

	assert.Nil(t, snapshot.SectionOfType(SectionContact))
}

func TestSnapshotValidate(t *testing.T) {
	valid := &PortfolioSnapshot{Sections: []Section{{Type: SectionSummary}}}
	assert.NoError(t, valid.Validate())

	invalid := &PortfolioSnapshot{Sections: []Section{{Type: "hobbies"}}}
	assert.Error(t, invalid.Validate())
}

func TestDimensionIsValid(t *testing.T) {
	for _, d := range Dimensions() {
		assert.True(t, d.IsValid())
	}
	assert.False(t, Dimension("charisma").IsValid())
}

func TestSignalLevelIsValid(t *testing.T) {
	for _, s := range []SignalLevel{SignalPoor, SignalFair, SignalGood, SignalStrong, SignalExcellent} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, SignalLevel("amazing").IsValid())
}
