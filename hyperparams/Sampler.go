// Package hyperparams implements per-algorithm hyperparameter samplers
// for a family of reinforcement learning algorithms. Each sampler draws
// values from the declared distributions of a tuner.Trial and returns a
// typed, JSON-serializable configuration that a training routine
// consumes. The samplers hold no state; a search loop calls one sampler
// per trial.
package hyperparams

import (
	"github.com/pkg/errors"

	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// Algorithm represents a specific reinforcement learning algorithm
// whose hyperparameters can be sampled.
type Algorithm string

// Available algorithms
const (
	A2C          Algorithm = "a2c"
	ARS          Algorithm = "ars"
	DDPG         Algorithm = "ddpg"
	DQN          Algorithm = "dqn"
	QRDQN        Algorithm = "qrdqn"
	SAC          Algorithm = "sac"
	TQC          Algorithm = "tqc"
	PPO          Algorithm = "ppo"
	RecurrentPPO Algorithm = "ppo_lstm"
	TD3          Algorithm = "td3"
	TRPO         Algorithm = "trpo"
)

// Config represents a sampled hyperparameter configuration for a
// single algorithm
type Config interface {
	// Algorithm returns the algorithm the configuration is for
	Algorithm() Algorithm

	// Validate returns an error describing whether or not the
	// configuration is valid.
	Validate() error
}

// AdditionalArgs carries search-level context that is not itself
// sampled: whether the off-policy algorithms train with a hindsight
// experience replay buffer, and the base configuration of that buffer.
type AdditionalArgs struct {
	UsingHERReplayBuffer bool
	HER                  expreplay.HERConfig
}

// Sampler samples a hyperparameter configuration for one algorithm.
// nActions is the cardinality of the action space and nEnvs the number
// of vectorized environments collecting experience.
type Sampler func(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error)

// Samplers maps each algorithm to its hyperparameter Sampler
var Samplers = map[Algorithm]Sampler{
	A2C:          SampleA2C,
	ARS:          SampleARS,
	DDPG:         SampleDDPG,
	DQN:          SampleDQN,
	QRDQN:        SampleQRDQN,
	SAC:          SampleSAC,
	TQC:          SampleTQC,
	PPO:          SamplePPO,
	RecurrentPPO: SampleRecurrentPPO,
	TD3:          SampleTD3,
	TRPO:         SampleTRPO,
}

// For returns the Sampler registered for the given algorithm
func For(algorithm Algorithm) (Sampler, error) {
	sampler, ok := Samplers[algorithm]
	if !ok {
		return nil, errors.Errorf("for: no sampler registered for "+
			"algorithm %q", algorithm)
	}

	return sampler, nil
}
