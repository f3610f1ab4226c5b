package hyperparams

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/solver"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// auto lets the training routine tune a coefficient itself
const auto string = "auto"

// SACConfig implements a sampled configuration of the SAC algorithm
type SACConfig struct {
	Gamma          float64 `json:"gamma"`
	LearningRate   float64 `json:"learning_rate"`
	BatchSize      int     `json:"batch_size"`
	BufferSize     int     `json:"buffer_size"`
	LearningStarts int     `json:"learning_starts"`
	TrainFreq      int     `json:"train_freq"`
	GradientSteps  int     `json:"gradient_steps"`
	EntCoef        string  `json:"ent_coef"`
	Tau            float64 `json:"tau"`
	TargetEntropy  string  `json:"target_entropy"`

	PolicyConfig SACPolicyConfig `json:"policy_kwargs"`

	// ReplayBufferConfig is only set when tuning with a hindsight
	// experience replay buffer
	ReplayBufferConfig *expreplay.HERConfig `json:"replay_buffer_kwargs,omitempty"`
}

// Algorithm returns the algorithm the configuration is for
func (c *SACConfig) Algorithm() Algorithm {
	return SAC
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *SACConfig) Validate() error {
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

	if c.GradientSteps != c.TrainFreq {
		return fmt.Errorf("validate: gradient steps are tied to the "+
			"training frequency \n\twant(%v) \n\thave(%v)", c.TrainFreq,
			c.GradientSteps)
	}

	if c.ReplayBufferConfig != nil {
		return c.ReplayBufferConfig.Validate()
	}

	return nil
}

// Solver returns the solver used to fit the policy and critic networks
// with the sampled learning rate
func (c *SACConfig) Solver() (*solver.Solver, error) {
	return solver.NewDefaultAdam(c.LearningRate, c.BatchSize)
}

// SampleSAC is a Sampler for SAC hyperparameters
func SampleSAC(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	config, err := sampleSAC(t, nActions, nEnvs, args)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func sampleSAC(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (*SACConfig, error) {
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
		[]int{16, 32, 64, 128, 256, 512, 1024, 2048})
	if err != nil {
		return nil, err
	}

	// Maximum number of transitions stored in the replay buffer
	bufferSize, err := tuner.Categorical(t, "buffer_size",
		[]int{10_000, 100_000, 1_000_000})
	if err != nil {
		return nil, err
	}

	// Transitions collected before the first gradient update
	learningStarts, err := tuner.Categorical(t, "learning_starts",
		[]int{0, 1000, 10_000, 20_000})
	if err != nil {
		return nil, err
	}

	trainFreq, err := tuner.Categorical(t, "train_freq",
		[]int{1, 4, 8, 16, 32, 64, 128, 256, 512})
	if err != nil {
		return nil, err
	}

	// Polyak averaging constant of the target network updates
	tau, err := tuner.Categorical(t, "tau",
		[]float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.08})
	if err != nil {
		return nil, err
	}

	// Sampling the gradient steps independently takes too much search
	// time; tie them to the training frequency instead.
	gradientSteps := trainFreq

	logStdInit, err := t.SuggestFloat("log_std_init", -4, 1)
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
		return nil, errors.Errorf("samplesac: unknown network "+
			"architecture %q", netArchName)
	}

	config := &SACConfig{
		Gamma:          gamma,
		LearningRate:   learningRate,
		BatchSize:      batchSize,
		BufferSize:     bufferSize,
		LearningStarts: learningStarts,
		TrainFreq:      trainFreq,
		GradientSteps:  gradientSteps,
		EntCoef:        auto,
		Tau:            tau,
		TargetEntropy:  auto,
		PolicyConfig: SACPolicyConfig{
			LogStdInit: logStdInit,
			NetArch:    netArch,
		},
	}

	if args.UsingHERReplayBuffer {
		config.ReplayBufferConfig, err = sampleHER(t, args.HER)
		if err != nil {
			return nil, err
		}
	}

	return config, nil
}
