package hyperparams

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/noise"
	"github.com/peter1706/iu-reinforcement-learning-assignment/solver"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// DDPGConfig implements a sampled configuration of the DDPG algorithm
type DDPGConfig struct {
	Gamma         float64 `json:"gamma"`
	Tau           float64 `json:"tau"`
	LearningRate  float64 `json:"learning_rate"`
	BatchSize     int     `json:"batch_size"`
	BufferSize    int     `json:"buffer_size"`
	TrainFreq     int     `json:"train_freq"`
	GradientSteps int     `json:"gradient_steps"`

	PolicyConfig DeterministicPolicyConfig `json:"policy_kwargs"`

	// ActionNoise is nil when exploring without noise
	ActionNoise *noise.Config `json:"action_noise,omitempty"`

	// ReplayBufferConfig is only set when tuning with a hindsight
	// experience replay buffer
	ReplayBufferConfig *expreplay.HERConfig `json:"replay_buffer_kwargs,omitempty"`
}

// Algorithm returns the algorithm the configuration is for
func (c *DDPGConfig) Algorithm() Algorithm {
	return DDPG
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *DDPGConfig) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("validate: batch size must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.BatchSize)
	}

	if c.BufferSize < c.BatchSize {
		return fmt.Errorf("validate: replay buffer must hold at least one "+
			"batch \n\twant(>=%v) \n\thave(%v)", c.BatchSize, c.BufferSize)
	}

	if c.Tau <= 0 || c.Tau > 1 {
		return fmt.Errorf("validate: Polyak averaging constant must be in "+
			"(0, 1] \n\thave(%v)", c.Tau)
	}

	if c.ActionNoise != nil {
		if err := c.ActionNoise.Validate(); err != nil {
			return err
		}
	}

	if c.ReplayBufferConfig != nil {
		return c.ReplayBufferConfig.Validate()
	}

	return nil
}

// Solver returns the solver used to fit the actor and critic networks
// with the sampled learning rate
func (c *DDPGConfig) Solver() (*solver.Solver, error) {
	return solver.NewDefaultAdam(c.LearningRate, c.BatchSize)
}

// SampleDDPG is a Sampler for DDPG hyperparameters
func SampleDDPG(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	gamma, err := tuner.Categorical(t, "gamma",
		[]float64{0.9, 0.95, 0.98, 0.99, 0.995, 0.999, 0.9999})
	if err != nil {
		return nil, err
	}

	learningRate, err := t.SuggestLogFloat("learning_rate", 1e-5, 1)
	if err != nil {
		return nil, err
	}

	batchSize, err := tuner.Categorical(t, "batch_size",
		[]int{16, 32, 64, 100, 128, 256, 512, 1024, 2048})
	if err != nil {
		return nil, err
	}

	bufferSize, err := tuner.Categorical(t, "buffer_size",
		[]int{10_000, 100_000, 1_000_000})
	if err != nil {
		return nil, err
	}

	// Polyak averaging constant of the target network updates
	tau, err := tuner.Categorical(t, "tau",
		[]float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.08})
	if err != nil {
		return nil, err
	}

	trainFreq, err := tuner.Categorical(t, "train_freq",
		[]int{1, 4, 8, 16, 32, 64, 128, 256, 512})
	if err != nil {
		return nil, err
	}
	gradientSteps := trainFreq

	noiseType, err := tuner.Categorical(t, "noise_type",
		[]noise.Type{noise.OrnsteinUhlenbeck, noise.Normal, noise.None})
	if err != nil {
		return nil, err
	}

	noiseStd, err := t.SuggestFloat("noise_std", 0, 1)
	if err != nil {
		return nil, err
	}

	netArchName, err := tuner.Categorical(t, "net_arch",
		[]string{"small", "medium", "big"})
	if err != nil {
		return nil, err
	}

	netArch, ok := offPolicyNetArchs[netArchName]
	if !ok {
		return nil, errors.Errorf("sampleddpg: unknown network "+
			"architecture %q", netArchName)
	}

	config := &DDPGConfig{
		Gamma:         gamma,
		Tau:           tau,
		LearningRate:  learningRate,
		BatchSize:     batchSize,
		BufferSize:    bufferSize,
		TrainFreq:     trainFreq,
		GradientSteps: gradientSteps,
		PolicyConfig:  DeterministicPolicyConfig{NetArch: netArch},
	}

	switch noiseType {
	case noise.Normal:
		config.ActionNoise = noise.NewNormal(nActions, noiseStd)
	case noise.OrnsteinUhlenbeck:
		config.ActionNoise = noise.NewOrnsteinUhlenbeck(nActions, noiseStd)
	}

	if args.UsingHERReplayBuffer {
		config.ReplayBufferConfig, err = sampleHER(t, args.HER)
		if err != nil {
			return nil, err
		}
	}

	return config, nil
}
