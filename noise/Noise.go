// Package noise implements the action noise processes added to the
// deterministic policies of DDPG-style algorithms during exploration.
package noise

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Type describes different types of action noise that are available
type Type string

// Available action noise types
const (
	None              Type = "none"
	Normal            Type = "normal"
	OrnsteinUhlenbeck Type = "ornstein-uhlenbeck"
)

// Default Ornstein-Uhlenbeck process constants
const (
	defaultTheta float64 = 0.15
	defaultDt    float64 = 1e-2
)

// ActionNoise is a noise process sampled once per environment step and
// added to the actions of a deterministic policy.
type ActionNoise interface {
	// Sample returns the next noise vector, one element per action
	// dimension
	Sample() []float64

	// Reset restarts the process. Called at episode boundaries.
	Reset()
}

// Config implements a serializable configuration of an ActionNoise
type Config struct {
	Type  Type      `json:"type"`
	Mean  []float64 `json:"mean"`
	Sigma []float64 `json:"sigma"`

	// Ornstein-Uhlenbeck process parameters
	Theta float64 `json:"theta,omitempty"`
	Dt    float64 `json:"dt,omitempty"`
}

// NewNormal returns the configuration of zero-mean Gaussian action
// noise with standard deviation std in each of nActions dimensions.
func NewNormal(nActions int, std float64) *Config {
	return &Config{
		Type:  Normal,
		Mean:  make([]float64, nActions),
		Sigma: constant(std, nActions),
	}
}

// NewOrnsteinUhlenbeck returns the configuration of a zero-mean
// Ornstein-Uhlenbeck process with standard deviation std in each of
// nActions dimensions.
func NewOrnsteinUhlenbeck(nActions int, std float64) *Config {
	return &Config{
		Type:  OrnsteinUhlenbeck,
		Mean:  make([]float64, nActions),
		Sigma: constant(std, nActions),
		Theta: defaultTheta,
		Dt:    defaultDt,
	}
}

// Create creates and returns the ActionNoise that the Config describes
func (c *Config) Create(seed uint64) (ActionNoise, error) {
	if len(c.Mean) != len(c.Sigma) {
		return nil, fmt.Errorf("create: invalid number of standard "+
			"deviations \n\twant(%v) \n\thave(%v)", len(c.Mean), len(c.Sigma))
	}

	switch c.Type {
	case Normal:
		return newNormalNoise(c.Mean, c.Sigma, seed), nil
	case OrnsteinUhlenbeck:
		return newOrnsteinUhlenbeckNoise(c.Mean, c.Sigma, c.Theta, c.Dt,
			seed), nil
	default:
		return nil, fmt.Errorf("create: illegal action noise type %q", c.Type)
	}
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *Config) Validate() error {
	if c.Type != Normal && c.Type != OrnsteinUhlenbeck {
		return fmt.Errorf("validate: illegal action noise type %q", c.Type)
	}
	if len(c.Mean) != len(c.Sigma) {
		return fmt.Errorf("validate: invalid number of standard "+
			"deviations \n\twant(%v) \n\thave(%v)", len(c.Mean), len(c.Sigma))
	}
	for _, sigma := range c.Sigma {
		if sigma < 0 {
			return fmt.Errorf("validate: standard deviations must be "+
				"non-negative \n\thave(%v)", sigma)
		}
	}

	return nil
}

// constant returns a vector of n elements, all set to value
func constant(value float64, n int) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		vec[i] = value
	}
	return vec
}

// standardNormals returns one standard normal distribution per action
// dimension, sharing a single random source.
func standardNormals(n int, seed uint64) []distuv.Normal {
	src := rand.NewSource(seed)
	dists := make([]distuv.Normal, n)
	for i := range dists {
		dists[i] = distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	}
	return dists
}
