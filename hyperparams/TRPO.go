package hyperparams

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/peter1706/iu-reinforcement-learning-assignment/network"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// trpoNetArchs maps the net_arch candidate names of the TRPO sampler
// to concrete architectures
var trpoNetArchs = map[string]*network.ActorCriticArch{
	"small":  {Pi: []int{64, 64}, Vf: []int{64, 64}},
	"medium": {Pi: []int{256, 256}, Vf: []int{256, 256}},
}

// TRPOConfig implements a sampled configuration of the TRPO algorithm
type TRPOConfig struct {
	NSteps         int     `json:"n_steps"`
	BatchSize      int     `json:"batch_size"`
	Gamma          float64 `json:"gamma"`
	CGMaxSteps     int     `json:"cg_max_steps"`
	NCriticUpdates int     `json:"n_critic_updates"`
	TargetKL       float64 `json:"target_kl"`
	LearningRate   float64 `json:"learning_rate"`
	GAELambda      float64 `json:"gae_lambda"`

	PolicyConfig ActorCriticPolicyConfig `json:"policy_kwargs"`
}

// Algorithm returns the algorithm the configuration is for
func (c *TRPOConfig) Algorithm() Algorithm {
	return TRPO
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *TRPOConfig) Validate() error {
	if c.NSteps < 1 {
		return fmt.Errorf("validate: rollout length must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.NSteps)
	}

	if c.BatchSize < 1 || c.BatchSize > c.NSteps {
		return fmt.Errorf("validate: batch size must be in [1, rollout "+
			"length] \n\twant(<=%v) \n\thave(%v)", c.NSteps, c.BatchSize)
	}

	if c.CGMaxSteps < 1 {
		return fmt.Errorf("validate: conjugate gradient iterations must "+
			"be positive \n\twant(>0) \n\thave(%v)", c.CGMaxSteps)
	}

	if c.TargetKL <= 0 {
		return fmt.Errorf("validate: target KL divergence must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.TargetKL)
	}

	return nil
}

// SampleTRPO is a Sampler for TRPO hyperparameters
func SampleTRPO(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	batchSize, err := tuner.Categorical(t, "batch_size",
		[]int{8, 16, 32, 64, 128, 256, 512})
	if err != nil {
		return nil, err
	}

	nSteps, err := tuner.Categorical(t, "n_steps",
		[]int{8, 16, 32, 64, 128, 256, 512, 1024, 2048})
	if err != nil {
		return nil, err
	}

	gamma, err := tuner.Categorical(t, "gamma",
		[]float64{0.9, 0.95, 0.98, 0.99, 0.995, 0.999, 0.9999})
	if err != nil {
		return nil, err
	}

	learningRate, err := t.SuggestLogFloat("learning_rate", 1e-5, 1)
	if err != nil {
		return nil, err
	}

	// Value function fitting iterations per policy update
	nCriticUpdates, err := tuner.Categorical(t, "n_critic_updates",
		[]int{5, 10, 20, 25, 30})
	if err != nil {
		return nil, err
	}

	// Conjugate gradient iterations when solving for the step
	// direction
	cgMaxSteps, err := tuner.Categorical(t, "cg_max_steps",
		[]int{5, 10, 20, 25, 30})
	if err != nil {
		return nil, err
	}

	targetKL, err := tuner.Categorical(t, "target_kl",
		[]float64{0.1, 0.05, 0.03, 0.02, 0.01, 0.005, 0.001})
	if err != nil {
		return nil, err
	}

	gaeLambda, err := tuner.Categorical(t, "gae_lambda",
		[]float64{0.8, 0.9, 0.92, 0.95, 0.98, 0.99, 1.0})
	if err != nil {
		return nil, err
	}

	netArchName, err := tuner.Categorical(t, "net_arch",
		[]string{"small", "medium"})
	if err != nil {
		return nil, err
	}

	activationName, err := tuner.Categorical(t, "activation_fn",
		[]string{"tanh", "relu"})
	if err != nil {
		return nil, err
	}

	// TODO: clamp against the full rollout buffer (nSteps * nEnvs)
	// instead of the per-environment rollout length.
	if batchSize > nSteps {
		batchSize = nSteps
	}

	netArch, ok := trpoNetArchs[netArchName]
	if !ok {
		return nil, errors.Errorf("sampletrpo: unknown network "+
			"architecture %q", netArchName)
	}

	activation, err := network.ActivationOf(activationName)
	if err != nil {
		return nil, errors.Wrap(err, "sampletrpo: could not look up "+
			"activation")
	}

	return &TRPOConfig{
		NSteps:         nSteps,
		BatchSize:      batchSize,
		Gamma:          gamma,
		CGMaxSteps:     cgMaxSteps,
		NCriticUpdates: nCriticUpdates,
		TargetKL:       targetKL,
		LearningRate:   learningRate,
		GAELambda:      gaeLambda,
		PolicyConfig: ActorCriticPolicyConfig{
			NetArch:    netArch,
			Activation: activation,
			OrthoInit:  false,
		},
	}, nil
}
