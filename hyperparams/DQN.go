package hyperparams

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/network"
	"github.com/peter1706/iu-reinforcement-learning-assignment/solver"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
	"github.com/peter1706/iu-reinforcement-learning-assignment/utils/intutils"
)

// dqnNetArchs maps the net_arch candidate names of the DQN sampler to
// concrete architectures
var dqnNetArchs = map[string][]int{
	"identity": nil,
	"small":    {64},
	"medium":   {64, 64},
	"large":    {256, 256},
}

// DQNConfig implements a sampled configuration of the DQN algorithm
type DQNConfig struct {
	Gamma                float64 `json:"gamma"`
	LearningRate         float64 `json:"learning_rate"`
	BatchSize            int     `json:"batch_size"`
	BufferSize           int     `json:"buffer_size"`
	TrainFreq            int     `json:"train_freq"`
	GradientSteps        int     `json:"gradient_steps"`
	ExplorationFraction  float64 `json:"exploration_fraction"`
	ExplorationFinalEps  float64 `json:"exploration_final_eps"`
	TargetUpdateInterval int     `json:"target_update_interval"`
	LearningStarts       int     `json:"learning_starts"`

	Policy       PolicyType      `json:"policy"`
	PolicyConfig DQNPolicyConfig `json:"policy_kwargs"`

	// ReplayBufferConfig is only set when tuning with a hindsight
	// experience replay buffer
	ReplayBufferConfig *expreplay.HERConfig `json:"replay_buffer_kwargs,omitempty"`
}

// Algorithm returns the algorithm the configuration is for
func (c *DQNConfig) Algorithm() Algorithm {
	return DQN
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *DQNConfig) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("validate: batch size must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.BatchSize)
	}

	if c.BufferSize < c.BatchSize {
		return fmt.Errorf("validate: replay buffer must hold at least one "+
			"batch \n\twant(>=%v) \n\thave(%v)", c.BatchSize, c.BufferSize)
	}

	if c.GradientSteps < 1 {
		return fmt.Errorf("validate: gradient steps must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.GradientSteps)
	}

	if c.ExplorationFraction <= 0 || c.ExplorationFraction > 1 {
		return fmt.Errorf("validate: exploration fraction must be in "+
			"(0, 1] \n\thave(%v)", c.ExplorationFraction)
	}

	if c.ExplorationFinalEps < 0 || c.ExplorationFinalEps > 1 {
		return fmt.Errorf("validate: final exploration rate must be in "+
			"[0, 1] \n\thave(%v)", c.ExplorationFinalEps)
	}

	if c.TargetUpdateInterval < 1 {
		return fmt.Errorf("validate: target networks must be updated at "+
			"positive timestep intervals \n\twant(>0) \n\thave(%v)",
			c.TargetUpdateInterval)
	}

	if c.ReplayBufferConfig != nil {
		return c.ReplayBufferConfig.Validate()
	}

	return nil
}

// Solver returns the solver used to fit the Q-network with the sampled
// learning rate
func (c *DQNConfig) Solver() (*solver.Solver, error) {
	return solver.NewDefaultAdam(c.LearningRate, c.BatchSize)
}

// SampleDQN is a Sampler for DQN hyperparameters
func SampleDQN(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	config, err := sampleDQN(t, nActions, nEnvs, args)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func sampleDQN(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (*DQNConfig, error) {
	gamma, err := tuner.Categorical(t, "gamma",
		[]float64{0.8, 0.85, 0.9, 0.95, 0.98, 0.99, 0.995, 0.999, 0.9999})
	if err != nil {
		return nil, err
	}

	learningRate, err := t.SuggestLogFloat("learning_rate", 1e-5, 1)
	if err != nil {
		return nil, err
	}

	// Minibatch size of the gradient updates sampled from the replay
	// buffer
	batchSize, err := tuner.Categorical(t, "batch_size",
		[]int{4, 8, 16, 32, 64, 128, 256, 512})
	if err != nil {
		return nil, err
	}

	// Maximum number of transitions stored in the replay buffer
	bufferSize, err := tuner.Categorical(t, "buffer_size",
		[]int{10_000, 50_000, 100_000, 500_000, 1_000_000})
	if err != nil {
		return nil, err
	}

	// Floor of the epsilon-greedy exploration schedule
	explorationFinalEps, err := t.SuggestFloat("exploration_final_eps",
		0.01, 0.2)
	if err != nil {
		return nil, err
	}

	// Fraction of the training period over which epsilon decays to
	// its final value
	explorationFraction, err := t.SuggestFloat("exploration_fraction",
		0.1, 0.5)
	if err != nil {
		return nil, err
	}

	targetUpdateInterval, err := tuner.Categorical(t,
		"target_update_interval",
		[]int{1000, 5000, 10_000, 15_000, 20_000, 50_000})
	if err != nil {
		return nil, err
	}

	// Transitions collected before the first gradient update
	learningStarts, err := tuner.Categorical(t, "learning_starts",
		[]int{1000, 2000, 5000, 10_000, 20_000, 50_000})
	if err != nil {
		return nil, err
	}

	// Steps between gradient updates of the Q-network
	trainFreq, err := tuner.Categorical(t, "train_freq",
		[]int{1, 4, 8, 16, 128, 256, 1000})
	if err != nil {
		return nil, err
	}

	subsampleSteps, err := tuner.Categorical(t, "subsample_steps",
		[]int{1, 2, 4, 8})
	if err != nil {
		return nil, err
	}

	// Perform a fraction of the environment steps as gradient steps
	// after each rollout
	gradientSteps := intutils.Max(trainFreq/subsampleSteps, 1)

	netArchName, err := tuner.Categorical(t, "net_arch",
		[]string{"identity", "small", "medium", "large"})
	if err != nil {
		return nil, err
	}

	activationName, err := tuner.Categorical(t, "activation_fn",
		[]string{"sigmoid", "tanh", "relu", "elu", "leaky_relu"})
	if err != nil {
		return nil, err
	}

	netArch, ok := dqnNetArchs[netArchName]
	if !ok {
		return nil, errors.Errorf("sampledqn: unknown network "+
			"architecture %q", netArchName)
	}

	activation, err := network.ActivationOf(activationName)
	if err != nil {
		return nil, errors.Wrap(err, "sampledqn: could not look up "+
			"activation")
	}

	config := &DQNConfig{
		Gamma:                gamma,
		LearningRate:         learningRate,
		BatchSize:            batchSize,
		BufferSize:           bufferSize,
		TrainFreq:            trainFreq,
		GradientSteps:        gradientSteps,
		ExplorationFraction:  explorationFraction,
		ExplorationFinalEps:  explorationFinalEps,
		TargetUpdateInterval: targetUpdateInterval,
		LearningStarts:       learningStarts,
		Policy:               CnnPolicy,
		PolicyConfig: DQNPolicyConfig{
			NetArch:    netArch,
			Activation: activation,
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
