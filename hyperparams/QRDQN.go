package hyperparams

import (
	"fmt"

	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// QRDQNConfig implements a sampled configuration of the QR-DQN
// algorithm: DQN with a quantile regression critic.
type QRDQNConfig struct {
	DQNConfig
}

// Algorithm returns the algorithm the configuration is for
func (c *QRDQNConfig) Algorithm() Algorithm {
	return QRDQN
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *QRDQNConfig) Validate() error {
	if err := c.DQNConfig.Validate(); err != nil {
		return err
	}

	if c.PolicyConfig.NQuantiles < 1 {
		return fmt.Errorf("validate: distributional critics need a "+
			"positive number of quantiles \n\twant(>0) \n\thave(%v)",
			c.PolicyConfig.NQuantiles)
	}

	return nil
}

// SampleQRDQN is a Sampler for QR-DQN hyperparameters. It samples the
// DQN hyperparameters and augments the policy configuration with the
// number of quantiles of the critic.
func SampleQRDQN(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	base, err := sampleDQN(t, nActions, nEnvs, args)
	if err != nil {
		return nil, err
	}

	nQuantiles, err := t.SuggestInt("n_quantiles", 5, 200)
	if err != nil {
		return nil, err
	}

	config := &QRDQNConfig{DQNConfig: *base}
	config.PolicyConfig.NQuantiles = nQuantiles

	return config, nil
}
