package hyperparams

import (
	"fmt"

	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// TQCConfig implements a sampled configuration of the TQC algorithm:
// SAC with truncated quantile critics.
type TQCConfig struct {
	SACConfig

	// TopQuantilesToDropPerNet is the number of topmost quantiles
	// truncated from each critic when forming the target
	TopQuantilesToDropPerNet int `json:"top_quantiles_to_drop_per_net"`
}

// Algorithm returns the algorithm the configuration is for
func (c *TQCConfig) Algorithm() Algorithm {
	return TQC
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *TQCConfig) Validate() error {
	if err := c.SACConfig.Validate(); err != nil {
		return err
	}

	if c.PolicyConfig.NQuantiles < 1 {
		return fmt.Errorf("validate: distributional critics need a "+
			"positive number of quantiles \n\twant(>0) \n\thave(%v)",
			c.PolicyConfig.NQuantiles)
	}

	if c.TopQuantilesToDropPerNet < 0 ||
		c.TopQuantilesToDropPerNet >= c.PolicyConfig.NQuantiles {
		return fmt.Errorf("validate: dropped quantiles must be in [0, %v] "+
			"\n\thave(%v)", c.PolicyConfig.NQuantiles-1,
			c.TopQuantilesToDropPerNet)
	}

	return nil
}

// SampleTQC is a Sampler for TQC hyperparameters. It samples the SAC
// hyperparameters and augments them with the quantile knobs of the
// truncated critics.
func SampleTQC(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	base, err := sampleSAC(t, nActions, nEnvs, args)
	if err != nil {
		return nil, err
	}

	nQuantiles, err := t.SuggestInt("n_quantiles", 5, 50)
	if err != nil {
		return nil, err
	}

	// At least one quantile per critic must survive the truncation
	topQuantilesToDrop, err := t.SuggestInt("top_quantiles_to_drop_per_net",
		0, nQuantiles-1)
	if err != nil {
		return nil, err
	}

	config := &TQCConfig{
		SACConfig:                *base,
		TopQuantilesToDropPerNet: topQuantilesToDrop,
	}
	config.PolicyConfig.NQuantiles = nQuantiles

	return config, nil
}
