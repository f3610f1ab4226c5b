package hyperparams

import (
	"fmt"

	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// RecurrentPPOConfig implements a sampled configuration of the
// recurrent PPO variant, which replaces the feedforward policy with an
// LSTM policy.
type RecurrentPPOConfig struct {
	PPOConfig
}

// Algorithm returns the algorithm the configuration is for
func (c *RecurrentPPOConfig) Algorithm() Algorithm {
	return RecurrentPPO
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *RecurrentPPOConfig) Validate() error {
	if err := c.PPOConfig.Validate(); err != nil {
		return err
	}

	if c.PolicyConfig.LSTMHiddenSize < 1 {
		return fmt.Errorf("validate: LSTM hidden size must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.PolicyConfig.LSTMHiddenSize)
	}

	return nil
}

// SampleRecurrentPPO is a Sampler for recurrent PPO hyperparameters.
// It samples the PPO hyperparameters and augments the policy
// configuration with the recurrent knobs.
func SampleRecurrentPPO(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	base, err := samplePPO(t, nActions, nEnvs, args)
	if err != nil {
		return nil, err
	}

	enableCriticLSTM, err := tuner.Categorical(t, "enable_critic_lstm",
		[]bool{false, true})
	if err != nil {
		return nil, err
	}

	lstmHiddenSize, err := tuner.Categorical(t, "lstm_hidden_size",
		[]int{16, 32, 64, 128, 256, 512})
	if err != nil {
		return nil, err
	}

	config := &RecurrentPPOConfig{PPOConfig: *base}
	config.PolicyConfig.EnableCriticLSTM = enableCriticLSTM
	config.PolicyConfig.LSTMHiddenSize = lstmHiddenSize

	return config, nil
}
