package model

import "time"

// Report represents the result of testing a single mutant.
type Report struct {
	MutantID string            `yaml:"mutant_id"`
	Source   Path              `yaml:"source"`
	Record   ActivationRecord  `yaml:"record"`
	Outcome  TestOutcome       `yaml:"outcome"`
	Cause    IncompetenceCause `yaml:"cause,omitempty"`
	Output   string            `yaml:"output,omitempty"`
	Diff     string            `yaml:"diff,omitempty"`
	Duration time.Duration     `yaml:"duration"`
}

// RunReport is the persisted result of one `run` invocation.
type RunReport struct {
	RunID      string    `yaml:"run_id"`
	StartedAt  time.Time `yaml:"started_at"`
	Command    string    `yaml:"command"`
	ShardIndex int       `yaml:"shard_index"`
	ShardCount int       `yaml:"shard_count"`
	Score      Score     `yaml:"score"`
	Reports    []Report  `yaml:"reports"`
}

// Score tallies verdicts. Incompetent mutants are kept out of the ratio.
type Score struct {
	Killed      int `yaml:"killed"`
	Survived    int `yaml:"survived"`
	Incompetent int `yaml:"incompetent"`
}

// Add counts one verdict.
func (s *Score) Add(outcome TestOutcome) {
	switch outcome {
	case Killed:
		s.Killed++
	case Survived:
		s.Survived++
	case Incompetent:
		s.Incompetent++
	}
}

// Total returns the number of counted mutants, incompetent ones included.
func (s Score) Total() int {
	return s.Killed + s.Survived + s.Incompetent
}

// Value returns killed / (killed + survived) in [0, 1]. ok is false when no
// mutant was judged, i.e. every mutant was incompetent or there were none.
func (s Score) Value() (value float64, ok bool) {
	judged := s.Killed + s.Survived
	if judged == 0 {
		return 0, false
	}

	return float64(s.Killed) / float64(judged), true
}

// SiteEstimate is the number of mutation sites one operator finds in a file.
type SiteEstimate struct {
	Source   Path
	Operator OperatorKind
	Sites    int
}
