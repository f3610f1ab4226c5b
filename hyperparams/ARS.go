package hyperparams

import (
	"fmt"

	"github.com/peter1706/iu-reinforcement-learning-assignment/solver"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
	"github.com/peter1706/iu-reinforcement-learning-assignment/utils/intutils"
)

// ARSConfig implements a sampled configuration of the augmented random
// search algorithm
type ARSConfig struct {
	NDelta       int     `json:"n_delta"`
	LearningRate float64 `json:"learning_rate"`
	DeltaStd     float64 `json:"delta_std"`
	NTop         int     `json:"n_top"`
	ZeroPolicy   bool    `json:"zero_policy"`
}

// Algorithm returns the algorithm the configuration is for
func (c *ARSConfig) Algorithm() Algorithm {
	return ARS
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *ARSConfig) Validate() error {
	if c.NDelta < 1 {
		return fmt.Errorf("validate: at least one direction must be "+
			"sampled per update \n\twant(>0) \n\thave(%v)", c.NDelta)
	}

	if c.NTop < 1 || c.NTop > c.NDelta {
		return fmt.Errorf("validate: top directions must be in [1, %v] "+
			"\n\thave(%v)", c.NDelta, c.NTop)
	}

	if c.DeltaStd <= 0 {
		return fmt.Errorf("validate: exploration noise must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.DeltaStd)
	}

	return nil
}

// Solver returns the solver used to update the linear policy with the
// sampled learning rate
func (c *ARSConfig) Solver() (*solver.Solver, error) {
	return solver.NewVanilla(c.LearningRate, c.NDelta, -1.0)
}

// SampleARS is a Sampler for augmented random search hyperparameters
func SampleARS(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	// Number of random perturbation directions sampled per update
	nDelta, err := tuner.Categorical(t, "n_delta", []int{4, 8, 6, 32, 64})
	if err != nil {
		return nil, err
	}

	learningRate, err := t.SuggestLogFloat("learning_rate", 1e-5, 1)
	if err != nil {
		return nil, err
	}

	// Standard deviation of the policy perturbations
	deltaStd, err := tuner.Categorical(t, "delta_std",
		[]float64{0.01, 0.02, 0.025, 0.03, 0.05, 0.1, 0.2, 0.3})
	if err != nil {
		return nil, err
	}

	// Fraction of the best-performing directions kept for the update
	topFracSize, err := tuner.Categorical(t, "top_frac_size",
		[]float64{0.1, 0.2, 0.3, 0.5, 0.8, 0.9, 1.0})
	if err != nil {
		return nil, err
	}

	zeroPolicy, err := tuner.Categorical(t, "zero_policy",
		[]bool{true, false})
	if err != nil {
		return nil, err
	}

	nTop := intutils.Max(int(topFracSize*float64(nDelta)), 1)

	return &ARSConfig{
		NDelta:       nDelta,
		LearningRate: learningRate,
		DeltaStd:     deltaStd,
		NTop:         nTop,
		ZeroPolicy:   zeroPolicy,
	}, nil
}
