package hyperparams

import (
	"math"

	"github.com/peter1706/iu-reinforcement-learning-assignment/initwfn"
	"github.com/peter1706/iu-reinforcement-learning-assignment/network"
)

// PolicyType represents the class of policy network an algorithm
// trains
type PolicyType string

const (
	CnnPolicy PolicyType = "CnnPolicy"
	MlpPolicy PolicyType = "MlpPolicy"
)

// ActorCriticPolicyConfig configures the policy and value networks of
// the on-policy actor-critic algorithms.
type ActorCriticPolicyConfig struct {
	// NetArch is nil when the networks share the feature extractor
	// output directly
	NetArch    *network.ActorCriticArch `json:"net_arch"`
	Activation *network.Activation      `json:"activation_fn"`
	OrthoInit  bool                     `json:"ortho_init"`

	// Recurrent policies only
	EnableCriticLSTM bool `json:"enable_critic_lstm,omitempty"`
	LSTMHiddenSize   int  `json:"lstm_hidden_size,omitempty"`
}

// InitWFn returns the weight initializer the policy configuration
// describes: orthogonal initialization when OrthoInit is set, Glorot
// uniform otherwise.
func (c ActorCriticPolicyConfig) InitWFn() (*initwfn.InitWFn, error) {
	if c.OrthoInit {
		return initwfn.NewOrthogonal(math.Sqrt2, 0)
	}
	return initwfn.NewGlorotU(1.0)
}

// SACPolicyConfig configures the policy and critic networks of the
// SAC family.
type SACPolicyConfig struct {
	LogStdInit float64 `json:"log_std_init"`
	NetArch    []int   `json:"net_arch"`

	// NQuantiles is only set for distributional critics (TQC)
	NQuantiles int `json:"n_quantiles,omitempty"`
}

// DeterministicPolicyConfig configures the actor and critic networks
// of the deterministic policy gradient algorithms (TD3, DDPG).
type DeterministicPolicyConfig struct {
	NetArch []int `json:"net_arch"`
}

// DQNPolicyConfig configures the Q-network of the DQN family
type DQNPolicyConfig struct {
	// NetArch is nil when the Q-values are predicted directly from
	// the feature extractor output
	NetArch    []int               `json:"net_arch"`
	Activation *network.Activation `json:"activation_fn"`

	// NQuantiles is only set for distributional critics (QR-DQN)
	NQuantiles int `json:"n_quantiles,omitempty"`
}

// actorCriticNetArchs maps the net_arch candidate names of the
// on-policy samplers to concrete architectures. Independent policy and
// value networks usually work best when not working with images; with
// a CnnPolicy the architecture describes the fully connected head
// after the CNN.
var actorCriticNetArchs = map[string]*network.ActorCriticArch{
	"identity":  nil,
	"small":     {Pi: []int{64}, Vf: []int{64}},
	"medium":    {Pi: []int{64, 64}, Vf: []int{64, 64}},
	"medium_pi": {Pi: []int{64}, Vf: []int{64, 64}},
	"medium_vf": {Pi: []int{64, 64}, Vf: []int{64}},
	"large":     {Pi: []int{256, 256}, Vf: []int{256, 256}},
}

// offPolicyNetArchs maps the net_arch candidate names of the
// off-policy samplers to concrete architectures
var offPolicyNetArchs = map[string][]int{
	"small":  {64, 64},
	"medium": {256, 256},
	"big":    {400, 300},
}
