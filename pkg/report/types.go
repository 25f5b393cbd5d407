// Package report defines the structures for self-test reports.
package report

// SelfTestResult contains the outcome of a self-test run.
type SelfTestResult struct {
	Success   bool             `json:"success" yaml:"success"`
	Passed    int              `json:"passed" yaml:"passed"`
	Failed    int              `json:"failed" yaml:"failed"`
	Scenarios []ScenarioResult `json:"scenarios" yaml:"scenarios"`
}

// ScenarioResult records a single input/expected-output check.
type ScenarioResult struct {
	Name      string `json:"name" yaml:"name"`
	Direction string `json:"direction" yaml:"direction"` // "encode" or "decode"
	Input     string `json:"input" yaml:"input"`
	Shift     int    `json:"shift" yaml:"shift"`
	Expected  string `json:"expected" yaml:"expected"`
	Actual    string `json:"actual" yaml:"actual"`
	Passed    bool   `json:"passed" yaml:"passed"`
}

// NewSelfTestResult returns an empty result that has not failed yet.
func NewSelfTestResult() *SelfTestResult {
	return &SelfTestResult{Success: true}
}

// AddPass records a matching scenario.
func (r *SelfTestResult) AddPass(s ScenarioResult) {
	s.Passed = true
	r.Scenarios = append(r.Scenarios, s)
	r.Passed++
}

// AddFailure records a mismatching scenario and fails the run.
func (r *SelfTestResult) AddFailure(s ScenarioResult) {
	s.Passed = false
	r.Scenarios = append(r.Scenarios, s)
	r.Failed++
	r.Success = false
}

// Failures returns the scenarios that did not match.
func (r *SelfTestResult) Failures() []ScenarioResult {
	var out []ScenarioResult
	for _, s := range r.Scenarios {
		if !s.Passed {
			out = append(out, s)
		}
	}
	return out
}
