package tuner

import (
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSearchTrial implements Trial by sampling every suggestion
// independently and uniformly from its declared distribution. It is
// the reference Trial implementation and the baseline search strategy.
//
// A RandomSearchTrial records every parameter it suggests so that the
// configuration a sampler built from it can be related back to the raw
// suggested values.
//
// RandomSearchTrial is not safe for concurrent use. Search loops
// should construct one trial per iteration.
type RandomSearchTrial struct {
	id     string
	rng    *rand.Rand
	params map[string]interface{}
}

// NewRandomSearchTrial returns a new RandomSearchTrial whose
// suggestions are drawn from a source seeded with seed.
func NewRandomSearchTrial(seed uint64) *RandomSearchTrial {
	return &RandomSearchTrial{
		id:     uuid.NewString(),
		rng:    rand.New(rand.NewSource(seed)),
		params: make(map[string]interface{}),
	}
}

// ID returns the identifier of the trial
func (r *RandomSearchTrial) ID() string {
	return r.id
}

// Params returns all parameters suggested so far, keyed by name. For
// categorical parameters the suggested index is recorded.
func (r *RandomSearchTrial) Params() map[string]interface{} {
	params := make(map[string]interface{}, len(r.params))
	for name, value := range r.params {
		params[name] = value
	}
	return params
}

// SuggestFloat suggests a value from the uniform distribution on
// [low, high)
func (r *RandomSearchTrial) SuggestFloat(name string, low,
	high float64) (float64, error) {
	if low >= high {
		return 0, errors.Errorf("suggestfloat: invalid range [%v, %v) for "+
			"parameter %q", low, high, name)
	}

	u := distuv.Uniform{Min: low, Max: high, Src: r.rng}
	value := u.Rand()
	r.params[name] = value

	return value, nil
}

// SuggestLogFloat suggests a value from the log-uniform distribution
// on [low, high)
func (r *RandomSearchTrial) SuggestLogFloat(name string, low,
	high float64) (float64, error) {
	if low <= 0 || high <= 0 {
		return 0, errors.Errorf("suggestlogfloat: bounds must be positive "+
			"for parameter %q", name)
	}
	if low >= high {
		return 0, errors.Errorf("suggestlogfloat: invalid range [%v, %v) "+
			"for parameter %q", low, high, name)
	}

	u := distuv.Uniform{Min: math.Log(low), Max: math.Log(high), Src: r.rng}
	value := math.Exp(u.Rand())
	r.params[name] = value

	return value, nil
}

// SuggestInt suggests an integer from the uniform distribution on
// [low, high], inclusive of both bounds
func (r *RandomSearchTrial) SuggestInt(name string, low,
	high int) (int, error) {
	if low > high {
		return 0, errors.Errorf("suggestint: invalid range [%v, %v] for "+
			"parameter %q", low, high, name)
	}

	value := low + r.rng.Intn(high-low+1)
	r.params[name] = value

	return value, nil
}

// SuggestIndex suggests an index into a categorical candidate set of
// size numChoices
func (r *RandomSearchTrial) SuggestIndex(name string,
	numChoices int) (int, error) {
	if numChoices < 1 {
		return 0, errors.Errorf("suggestindex: parameter %q needs at least "+
			"one choice", name)
	}

	index := r.rng.Intn(numChoices)
	r.params[name] = index

	return index, nil
}
