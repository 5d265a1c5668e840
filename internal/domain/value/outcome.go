package value

import (
	"fmt"
	"strconv"
	"strings"
)

type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// ParseOutcome accepts the class column as written by pandas, so "1" and
// "1.0" are both a success.
func ParseOutcome(s string) (Outcome, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	switch f {
	case 0:
		return OutcomeFailure, nil
	case 1:
		return OutcomeSuccess, nil
	default:
		return 0, fmt.Errorf("outcome must be 0 or 1, got %q", s)
	}
}

func (o Outcome) Valid() bool {
	return o == OutcomeFailure || o == OutcomeSuccess
}

// Key is the class value as it appears in the dataset.
func (o Outcome) Key() string {
	return strconv.Itoa(int(o))
}

func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return "success"
	}
	return "failure"
}

func (o Outcome) Float64() float64 {
	return float64(o)
}
