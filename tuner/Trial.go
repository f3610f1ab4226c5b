// Package tuner implements the trial abstraction that drives
// hyperparameter search. A Trial suggests values from declared
// parameter distributions (categorical sets, uniform and log-uniform
// continuous ranges, and integer ranges) during a single search
// iteration. The search strategy behind a Trial is not part of this
// package's contract; RandomSearchTrial is provided as a reference
// implementation and FixedTrial as a deterministic one.
package tuner

import (
	"github.com/pkg/errors"
)

// Trial suggests values from declared parameter distributions during a
// single hyperparameter-search iteration. Each parameter is identified
// by name so that a search strategy can relate suggestions across
// trials.
type Trial interface {
	// ID returns an identifier unique to this trial
	ID() string

	// SuggestFloat suggests a value from the uniform distribution
	// on [low, high)
	SuggestFloat(name string, low, high float64) (float64, error)

	// SuggestLogFloat suggests a value from the log-uniform
	// distribution on [low, high). Both bounds must be positive.
	SuggestLogFloat(name string, low, high float64) (float64, error)

	// SuggestInt suggests an integer from the uniform distribution
	// on [low, high], inclusive of both bounds
	SuggestInt(name string, low, high int) (int, error)

	// SuggestIndex suggests an index into a categorical candidate
	// set of size numChoices. Returned values are in [0, numChoices).
	SuggestIndex(name string, numChoices int) (int, error)
}

// Categorical suggests one element of a declared candidate set. The
// suggested element is always a member of choices.
func Categorical[T any](t Trial, name string, choices []T) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, errors.Errorf("categorical: no choices declared for "+
			"parameter %q", name)
	}

	i, err := t.SuggestIndex(name, len(choices))
	if err != nil {
		return zero, errors.Wrapf(err, "categorical: could not suggest %q",
			name)
	}

	return choices[i], nil
}
