package hyperparams

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/peter1706/iu-reinforcement-learning-assignment/network"
	"github.com/peter1706/iu-reinforcement-learning-assignment/solver"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// PPOConfig implements a sampled configuration of the PPO algorithm
type PPOConfig struct {
	NSteps       int     `json:"n_steps"`
	BatchSize    int     `json:"batch_size"`
	Gamma        float64 `json:"gamma"`
	LearningRate float64 `json:"learning_rate"`
	EntCoef      float64 `json:"ent_coef"`
	ClipRange    float64 `json:"clip_range"`
	NEpochs      int     `json:"n_epochs"`
	GAELambda    float64 `json:"gae_lambda"`
	MaxGradNorm  float64 `json:"max_grad_norm"`
	VFCoef       float64 `json:"vf_coef"`

	Policy       PolicyType              `json:"policy"`
	PolicyConfig ActorCriticPolicyConfig `json:"policy_kwargs"`
}

// Algorithm returns the algorithm the configuration is for
func (c *PPOConfig) Algorithm() Algorithm {
	return PPO
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *PPOConfig) Validate() error {
	if c.NSteps < 1 {
		return fmt.Errorf("validate: rollout length must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.NSteps)
	}

	if c.BatchSize < 1 || c.BatchSize > c.NSteps {
		return fmt.Errorf("validate: batch size must be in [1, rollout "+
			"length] \n\twant(<=%v) \n\thave(%v)", c.NSteps, c.BatchSize)
	}

	if c.Gamma < 0 || c.Gamma >= 1 {
		return fmt.Errorf("validate: discount factor must be in [0, 1) "+
			"\n\thave(%v)", c.Gamma)
	}

	if c.NEpochs < 1 {
		return fmt.Errorf("validate: rollouts must be replayed a positive "+
			"number of epochs \n\twant(>0) \n\thave(%v)", c.NEpochs)
	}

	return nil
}

// Solver returns the solver used to fit the policy and value networks
// with the sampled learning rate
func (c *PPOConfig) Solver() (*solver.Solver, error) {
	return solver.NewAdam(c.LearningRate, 1e-8, 0.9, 0.999, c.BatchSize,
		c.MaxGradNorm)
}

// SamplePPO is a Sampler for PPO hyperparameters
func SamplePPO(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	config, err := samplePPO(t, nActions, nEnvs, args)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func samplePPO(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (*PPOConfig, error) {
	// Minibatch size of the gradient updates performed on the rollout
	// buffer. Clamped against the rollout length below.
	batchSize, err := tuner.Categorical(t, "batch_size",
		[]int{4, 8, 16, 32, 64, 128, 256, 512})
	if err != nil {
		return nil, err
	}

	// Steps collected from a single environment before an update, so
	// the rollout buffer holds nSteps * nEnvs transitions
	nSteps, err := tuner.Categorical(t, "n_steps",
		[]int{4, 8, 16, 32, 64, 128, 256, 512, 1024})
	if err != nil {
		return nil, err
	}

	gamma, err := tuner.Categorical(t, "gamma",
		[]float64{0.8, 0.85, 0.9, 0.95, 0.98, 0.99, 0.995, 0.999, 0.9999})
	if err != nil {
		return nil, err
	}

	learningRate, err := t.SuggestLogFloat("learning_rate", 1e-5, 1)
	if err != nil {
		return nil, err
	}

	// Weight of the entropy term in the loss
	entCoef, err := t.SuggestLogFloat("ent_coef", 1e-8, 0.05)
	if err != nil {
		return nil, err
	}

	// Limit on policy change during an optimization step
	clipRange, err := tuner.Categorical(t, "clip_range",
		[]float64{0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4})
	if err != nil {
		return nil, err
	}

	// How often each rollout is replayed for gradient updates
	nEpochs, err := tuner.Categorical(t, "n_epochs",
		[]int{1, 3, 5, 7, 10, 15, 20})
	if err != nil {
		return nil, err
	}

	// Bias-variance trade-off of the advantage estimates
	gaeLambda, err := tuner.Categorical(t, "gae_lambda",
		[]float64{0.8, 0.85, 0.9, 0.92, 0.95, 0.98, 0.99, 1.0})
	if err != nil {
		return nil, err
	}

	maxGradNorm, err := tuner.Categorical(t, "max_grad_norm",
		[]float64{0.3, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0})
	if err != nil {
		return nil, err
	}

	vfCoef, err := t.SuggestFloat("vf_coef", 0.1, 1)
	if err != nil {
		return nil, err
	}

	netArchName, err := tuner.Categorical(t, "net_arch",
		[]string{"identity", "small", "medium", "medium_pi", "medium_vf",
			"large"})
	if err != nil {
		return nil, err
	}

	orthoInit, err := tuner.Categorical(t, "ortho_init", []bool{false, true})
	if err != nil {
		return nil, err
	}

	activationName, err := tuner.Categorical(t, "activation_fn",
		[]string{"sigmoid", "tanh", "relu", "elu", "leaky_relu"})
	if err != nil {
		return nil, err
	}

	// TODO: clamp against the full rollout buffer (nSteps * nEnvs)
	// instead of the per-environment rollout length, and prefer batch
	// sizes that divide it evenly.
	if batchSize > nSteps {
		batchSize = nSteps
	}

	netArch, ok := actorCriticNetArchs[netArchName]
	if !ok {
		return nil, errors.Errorf("sampleppo: unknown network "+
			"architecture %q", netArchName)
	}

	activation, err := network.ActivationOf(activationName)
	if err != nil {
		return nil, errors.Wrap(err, "sampleppo: could not look up "+
			"activation")
	}

	return &PPOConfig{
		NSteps:       nSteps,
		BatchSize:    batchSize,
		Gamma:        gamma,
		LearningRate: learningRate,
		EntCoef:      entCoef,
		ClipRange:    clipRange,
		NEpochs:      nEpochs,
		GAELambda:    gaeLambda,
		MaxGradNorm:  maxGradNorm,
		VFCoef:       vfCoef,
		Policy:       CnnPolicy,
		PolicyConfig: ActorCriticPolicyConfig{
			NetArch:    netArch,
			Activation: activation,
			OrthoInit:  orthoInit,
		},
	}, nil
}
