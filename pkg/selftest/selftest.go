// Package selftest runs the built-in battery of known Caesar shift results.
package selftest

import (
	"github.com/capiscio/cipher/pkg/caesar"
	"github.com/capiscio/cipher/pkg/report"
	"go.uber.org/zap"
)

// Scenario is a literal input, shift and expected output for one direction.
type Scenario struct {
	Name      string
	Direction caesar.Direction
	Input     string
	Shift     int
	Expected  string
}

const (
	k1 = 3
	k2 = 2
	k3 = -1
	k4 = 29
)

var battery = []Scenario{
	{"encode_non_cyclic_lower_case_positive_k", caesar.Encode, "abc", k1, "def"},
	{"encode_cyclic_lower_case_special_char_positive_k", caesar.Encode, "y!z,", k2, "a!b,"},
	{"encode_non_cyclic_lower_case_special_char_negative_k", caesar.Encode, "b*cd", k3, "a*bc"},
	{"encode_cyclic_lower_case_negative_k", caesar.Encode, "abc", -k1, "xyz"},
	{"encode_cyclic_upper_case_positive_k", caesar.Encode, "ABC", k4, "DEF"},
	{"decode_non_cyclic_lower_case_positive_k", caesar.Decode, "def", k1, "abc"},
	{"decode_cyclic_lower_case_special_char_positive_k", caesar.Decode, "a!b,", k2, "y!z,"},
	{"decode_non_cyclic_lower_case_special_char_negative_k", caesar.Decode, "a*bc", k3, "b*cd"},
	{"decode_cyclic_lower_case_negative_k", caesar.Decode, "xyz", -k1, "abc"},
	{"decode_cyclic_upper_case_positive_k", caesar.Decode, "DEF", k4, "ABC"},
}

// Scenarios returns a copy of the built-in battery.
func Scenarios() []Scenario {
	out := make([]Scenario, len(battery))
	copy(out, battery)
	return out
}

// Run checks every scenario and reports each outcome. It does not stop at the
// first mismatch; the result fails if any scenario failed.
func Run(scenarios []Scenario, logger *zap.Logger) *report.SelfTestResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	res := report.NewSelfTestResult()
	for _, sc := range scenarios {
		got := caesar.Transform(sc.Direction, sc.Input, sc.Shift)
		sr := report.ScenarioResult{
			Name:      sc.Name,
			Direction: sc.Direction.String(),
			Input:     sc.Input,
			Shift:     sc.Shift,
			Expected:  sc.Expected,
			Actual:    got,
		}
		if got != sc.Expected {
			logger.Warn("Self-test scenario failed",
				zap.String("scenario", sc.Name),
				zap.String("expected", sc.Expected),
				zap.String("actual", got))
			res.AddFailure(sr)
			continue
		}
		logger.Debug("Self-test scenario passed", zap.String("scenario", sc.Name))
		res.AddPass(sr)
	}

	logger.Debug("Self-test finished",
		zap.Int("passed", res.Passed),
		zap.Int("failed", res.Failed))
	return res
}

// RunAll runs the built-in battery.
func RunAll(logger *zap.Logger) *report.SelfTestResult {
	return Run(battery, logger)
}
