package hyperparams

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/peter1706/iu-reinforcement-learning-assignment/network"
	"github.com/peter1706/iu-reinforcement-learning-assignment/solver"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// A2CConfig implements a sampled configuration of the A2C algorithm
type A2CConfig struct {
	NSteps       int     `json:"n_steps"`
	Gamma        float64 `json:"gamma"`
	GAELambda    float64 `json:"gae_lambda"`
	LearningRate float64 `json:"learning_rate"`
	EntCoef      float64 `json:"ent_coef"`
	MaxGradNorm  float64 `json:"max_grad_norm"`
	UseRMSProp   bool    `json:"use_rms_prop"`
	VFCoef       float64 `json:"vf_coef"`

	Policy       PolicyType              `json:"policy"`
	PolicyConfig ActorCriticPolicyConfig `json:"policy_kwargs"`
}

// Algorithm returns the algorithm the configuration is for
func (c *A2CConfig) Algorithm() Algorithm {
	return A2C
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c *A2CConfig) Validate() error {
	if c.NSteps < 1 {
		return fmt.Errorf("validate: rollout length must be positive "+
			"\n\twant(>0) \n\thave(%v)", c.NSteps)
	}

	if c.Gamma < 0 || c.Gamma >= 1 {
		return fmt.Errorf("validate: discount factor must be in [0, 1) "+
			"\n\thave(%v)", c.Gamma)
	}

	return nil
}

// Solver returns the solver used to fit the policy and value networks:
// RMSProp when UseRMSProp is set and Adam otherwise. The max gradient
// norm becomes the solver's clipping threshold.
func (c *A2CConfig) Solver() (*solver.Solver, error) {
	if c.UseRMSProp {
		return solver.NewRMSProp(c.LearningRate, 1e-5, 0.99, c.NSteps,
			c.MaxGradNorm)
	}

	return solver.NewAdam(c.LearningRate, 1e-8, 0.9, 0.999, c.NSteps,
		c.MaxGradNorm)
}

// SampleA2C is a Sampler for A2C hyperparameters
func SampleA2C(t tuner.Trial, nActions, nEnvs int,
	args AdditionalArgs) (Config, error) {
	gamma, err := tuner.Categorical(t, "gamma",
		[]float64{0.8, 0.85, 0.9, 0.95, 0.98, 0.99, 0.995, 0.999, 0.9999})
	if err != nil {
		return nil, err
	}

	maxGradNorm, err := tuner.Categorical(t, "max_grad_norm",
		[]float64{0.3, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0})
	if err != nil {
		return nil, err
	}

	// Whether to fit with PyTorch-style RMSProp rather than Adam
	useRMSProp, err := tuner.Categorical(t, "use_rms_prop",
		[]bool{false, true})
	if err != nil {
		return nil, err
	}

	gaeLambda, err := tuner.Categorical(t, "gae_lambda",
		[]float64{0.8, 0.85, 0.9, 0.92, 0.95, 0.98, 0.99, 1.0})
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

	learningRate, err := t.SuggestLogFloat("learning_rate", 1e-5, 1)
	if err != nil {
		return nil, err
	}

	// Weight of the entropy term in the loss
	entCoef, err := t.SuggestLogFloat("ent_coef", 1e-8, 0.05)
	if err != nil {
		return nil, err
	}

	vfCoef, err := t.SuggestFloat("vf_coef", 0.1, 1)
	if err != nil {
		return nil, err
	}

	orthoInit, err := tuner.Categorical(t, "ortho_init", []bool{false, true})
	if err != nil {
		return nil, err
	}

	netArchName, err := tuner.Categorical(t, "net_arch",
		[]string{"identity", "small", "medium", "medium_pi", "medium_vf",
			"large"})
	if err != nil {
		return nil, err
	}

	activationName, err := tuner.Categorical(t, "activation_fn",
		[]string{"sigmoid", "tanh", "relu", "elu", "leaky_relu"})
	if err != nil {
		return nil, err
	}

	netArch, ok := actorCriticNetArchs[netArchName]
	if !ok {
		return nil, errors.Errorf("samplea2c: unknown network "+
			"architecture %q", netArchName)
	}

	activation, err := network.ActivationOf(activationName)
	if err != nil {
		return nil, errors.Wrap(err, "samplea2c: could not look up "+
			"activation")
	}

	return &A2CConfig{
		NSteps:       nSteps,
		Gamma:        gamma,
		GAELambda:    gaeLambda,
		LearningRate: learningRate,
		EntCoef:      entCoef,
		MaxGradNorm:  maxGradNorm,
		UseRMSProp:   useRMSProp,
		VFCoef:       vfCoef,
		Policy:       CnnPolicy,
		PolicyConfig: ActorCriticPolicyConfig{
			NetArch:    netArch,
			Activation: activation,
			OrthoInit:  orthoInit,
		},
	}, nil
}
