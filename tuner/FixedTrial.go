package tuner

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FixedTrial implements Trial by replaying a fixed set of parameter
// values instead of sampling them. Float and integer parameters are
// looked up by name; categorical parameters are stored as the index
// into their candidate set. Suggesting a parameter that has no fixed
// value is an error.
//
// FixedTrial exists so that samplers can be driven deterministically,
// for example in tests or when re-evaluating a known configuration.
type FixedTrial struct {
	id     string
	values map[string]interface{}
}

// NewFixedTrial returns a new FixedTrial that replays values. Map
// values must be float64 for float parameters and int for integer and
// categorical-index parameters.
func NewFixedTrial(values map[string]interface{}) *FixedTrial {
	return &FixedTrial{
		id:     uuid.NewString(),
		values: values,
	}
}

// ID returns the identifier of the trial
func (f *FixedTrial) ID() string {
	return f.id
}

// SuggestFloat returns the fixed value for the named parameter
func (f *FixedTrial) SuggestFloat(name string, low,
	high float64) (float64, error) {
	return f.float(name, low, high)
}

// SuggestLogFloat returns the fixed value for the named parameter
func (f *FixedTrial) SuggestLogFloat(name string, low,
	high float64) (float64, error) {
	return f.float(name, low, high)
}

func (f *FixedTrial) float(name string, low, high float64) (float64, error) {
	v, ok := f.values[name]
	if !ok {
		return 0, errors.Errorf("fixedtrial: no value fixed for parameter %q",
			name)
	}

	var value float64
	switch fixed := v.(type) {
	case float64:
		value = fixed
	case int:
		value = float64(fixed)
	default:
		return 0, errors.Errorf("fixedtrial: parameter %q fixed to "+
			"non-float value %v", name, v)
	}

	if value < low || value > high {
		return 0, errors.Errorf("fixedtrial: fixed value %v for parameter "+
			"%q outside declared range [%v, %v]", value, name, low, high)
	}

	return value, nil
}

// SuggestInt returns the fixed value for the named parameter
func (f *FixedTrial) SuggestInt(name string, low, high int) (int, error) {
	v, ok := f.values[name]
	if !ok {
		return 0, errors.Errorf("fixedtrial: no value fixed for parameter %q",
			name)
	}

	value, ok := v.(int)
	if !ok {
		return 0, errors.Errorf("fixedtrial: parameter %q fixed to "+
			"non-integer value %v", name, v)
	}
	if value < low || value > high {
		return 0, errors.Errorf("fixedtrial: fixed value %v for parameter "+
			"%q outside declared range [%v, %v]", value, name, low, high)
	}

	return value, nil
}

// SuggestIndex returns the fixed categorical index for the named
// parameter
func (f *FixedTrial) SuggestIndex(name string, numChoices int) (int, error) {
	v, ok := f.values[name]
	if !ok {
		return 0, errors.Errorf("fixedtrial: no index fixed for parameter %q",
			name)
	}

	index, ok := v.(int)
	if !ok {
		return 0, errors.Errorf("fixedtrial: parameter %q fixed to "+
			"non-index value %v", name, v)
	}
	if index < 0 || index >= numChoices {
		return 0, errors.Errorf("fixedtrial: fixed index %v for parameter "+
			"%q outside candidate set of size %v", index, name, numChoices)
	}

	return index, nil
}
