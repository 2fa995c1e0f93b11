package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTestOutcome_Text(t *testing.T) {
	for _, outcome := range []TestOutcome{Survived, Killed, Incompetent} {
		text, err := outcome.MarshalText()
		require.NoError(t, err)

		var decoded TestOutcome
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, outcome, decoded)
	}

	var o TestOutcome
	assert.Error(t, o.UnmarshalText([]byte("maimed")))
	assert.Equal(t, "unknown", TestOutcome(42).String())
}

func TestReport_YAMLUsesOutcomeNames(t *testing.T) {
	out, err := yaml.Marshal(Report{MutantID: "abc", Outcome: Killed})
	require.NoError(t, err)

	assert.Contains(t, string(out), "outcome: killed")
}

func TestScore(t *testing.T) {
	var s Score
	_, ok := s.Value()
	assert.False(t, ok)

	s.Add(Killed)
	s.Add(Killed)
	s.Add(Killed)
	s.Add(Survived)
	s.Add(Incompetent)

	assert.Equal(t, 5, s.Total())

	value, ok := s.Value()
	assert.True(t, ok)
	assert.InDelta(t, 0.75, value, 1e-9)
}

func TestScore_OnlyIncompetentIsNotJudged(t *testing.T) {
	s := Score{Incompetent: 3}

	value, ok := s.Value()
	assert.False(t, ok)
	assert.Zero(t, value)
}
