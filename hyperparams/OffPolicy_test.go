package hyperparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/noise"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// sacTrialValues returns fixed trial values that exercise every
// hyperparameter the SAC sampler draws
func sacTrialValues() map[string]interface{} {
	return map[string]interface{}{
		"gamma":           3, // 0.99
		"learning_rate":   7.3e-4,
		"batch_size":      4, // 256
		"buffer_size":     2, // 1_000_000
		"learning_starts": 1, // 1000
		"train_freq":      5, // 64
		"tau":             1, // 0.005
		"log_std_init":    -3.0,
		"net_arch":        2, // big
	}
}

// dqnTrialValues returns fixed trial values that exercise every
// hyperparameter the DQN sampler draws
func dqnTrialValues() map[string]interface{} {
	return map[string]interface{}{
		"gamma":                  5, // 0.99
		"learning_rate":          1e-4,
		"batch_size":             3, // 32
		"buffer_size":            1, // 50_000
		"exploration_final_eps":  0.05,
		"exploration_fraction":   0.2,
		"target_update_interval": 2, // 10_000
		"learning_starts":        3, // 10_000
		"train_freq":             6, // 1000
		"subsample_steps":        3, // 8
		"net_arch":               2, // medium
		"activation_fn":          2, // relu
	}
}

func TestSampleSAC(t *testing.T) {
	trial := tuner.NewFixedTrial(sacTrialValues())

	sampled, err := SampleSAC(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, SAC, sampled.Algorithm())

	config, ok := sampled.(*SACConfig)
	require.True(t, ok)

	assert.Equal(t, 0.99, config.Gamma)
	assert.Equal(t, 7.3e-4, config.LearningRate)
	assert.Equal(t, 256, config.BatchSize)
	assert.Equal(t, 1_000_000, config.BufferSize)
	assert.Equal(t, 1000, config.LearningStarts)
	assert.Equal(t, 0.005, config.Tau)
	assert.Equal(t, -3.0, config.PolicyConfig.LogStdInit)
	assert.Equal(t, []int{400, 300}, config.PolicyConfig.NetArch)

	// The entropy knobs are tuned by the training routine itself
	assert.Equal(t, "auto", config.EntCoef)
	assert.Equal(t, "auto", config.TargetEntropy)

	// Gradient steps are tied to the training frequency
	assert.Equal(t, 64, config.TrainFreq)
	assert.Equal(t, config.TrainFreq, config.GradientSteps)

	assert.Nil(t, config.ReplayBufferConfig)
}

func TestSampleDQN(t *testing.T) {
	trial := tuner.NewFixedTrial(dqnTrialValues())

	sampled, err := SampleDQN(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, DQN, sampled.Algorithm())

	config, ok := sampled.(*DQNConfig)
	require.True(t, ok)

	assert.Equal(t, 0.99, config.Gamma)
	assert.Equal(t, 32, config.BatchSize)
	assert.Equal(t, 50_000, config.BufferSize)
	assert.Equal(t, 0.05, config.ExplorationFinalEps)
	assert.Equal(t, 0.2, config.ExplorationFraction)
	assert.Equal(t, 10_000, config.TargetUpdateInterval)
	assert.Equal(t, 10_000, config.LearningStarts)
	assert.Equal(t, []int{64, 64}, config.PolicyConfig.NetArch)
	assert.Equal(t, "relu", config.PolicyConfig.Activation.String())

	// Gradient steps subsample the training frequency
	assert.Equal(t, 1000, config.TrainFreq)
	assert.Equal(t, 125, config.GradientSteps)
}

func TestSampleDQNGradientStepsFloor(t *testing.T) {
	// Subsampling a short training frequency still performs at least
	// one gradient step per rollout
	values := dqnTrialValues()
	values["train_freq"] = 0      // 1
	values["subsample_steps"] = 3 // 8
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleDQN(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)

	config := sampled.(*DQNConfig)
	assert.Equal(t, 1, config.TrainFreq)
	assert.Equal(t, 1, config.GradientSteps)
}

func TestSampleTD3ActionNoise(t *testing.T) {
	values := map[string]interface{}{
		"gamma":         3, // 0.99
		"learning_rate": 1e-3,
		"batch_size":    3, // 100
		"buffer_size":   2, // 1_000_000
		"tau":           1, // 0.005
		"train_freq":    4, // 32
		"noise_type":    0, // ornstein-uhlenbeck
		"noise_std":     0.5,
		"net_arch":      0, // small
	}
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleTD3(trial, 3, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, TD3, sampled.Algorithm())

	config, ok := sampled.(*TD3Config)
	require.True(t, ok)
	assert.Equal(t, 100, config.BatchSize)
	assert.Equal(t, config.TrainFreq, config.GradientSteps)
	assert.Equal(t, []int{64, 64}, config.PolicyConfig.NetArch)

	// One noise dimension per action dimension
	require.NotNil(t, config.ActionNoise)
	assert.Equal(t, noise.OrnsteinUhlenbeck, config.ActionNoise.Type)
	assert.Len(t, config.ActionNoise.Mean, 3)
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, config.ActionNoise.Sigma)
	assert.Greater(t, config.ActionNoise.Theta, 0.0)

	// Noiseless exploration leaves the noise configuration unset
	values["noise_type"] = 2 // none
	trial = tuner.NewFixedTrial(values)

	sampled, err = SampleTD3(trial, 3, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Nil(t, sampled.(*TD3Config).ActionNoise)
}

func TestSampleDDPGActionNoise(t *testing.T) {
	values := map[string]interface{}{
		"gamma":         3, // 0.99
		"learning_rate": 1e-3,
		"batch_size":    2, // 64
		"buffer_size":   1, // 100_000
		"tau":           2, // 0.01
		"train_freq":    3, // 16
		"noise_type":    1, // normal
		"noise_std":     0.3,
		"net_arch":      1, // medium
	}
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleDDPG(trial, 2, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, DDPG, sampled.Algorithm())

	config, ok := sampled.(*DDPGConfig)
	require.True(t, ok)
	assert.Equal(t, config.TrainFreq, config.GradientSteps)
	assert.Equal(t, []int{256, 256}, config.PolicyConfig.NetArch)

	require.NotNil(t, config.ActionNoise)
	assert.Equal(t, noise.Normal, config.ActionNoise.Type)
	assert.Equal(t, []float64{0.3, 0.3}, config.ActionNoise.Sigma)
}

func TestSampleTQC(t *testing.T) {
	values := sacTrialValues()
	values["n_quantiles"] = 24
	values["top_quantiles_to_drop_per_net"] = 5
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleTQC(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, TQC, sampled.Algorithm())

	config, ok := sampled.(*TQCConfig)
	require.True(t, ok)
	assert.Equal(t, 24, config.PolicyConfig.NQuantiles)
	assert.Equal(t, 5, config.TopQuantilesToDropPerNet)

	// The base SAC hyperparameters survive the augmentation
	assert.Equal(t, 256, config.BatchSize)
	assert.Equal(t, "auto", config.EntCoef)
}

func TestTQCConfigValidateQuantiles(t *testing.T) {
	values := sacTrialValues()
	values["n_quantiles"] = 24
	values["top_quantiles_to_drop_per_net"] = 5
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleTQC(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)

	// At least one quantile per critic must survive the truncation
	config := sampled.(*TQCConfig)
	config.TopQuantilesToDropPerNet = config.PolicyConfig.NQuantiles
	assert.Error(t, config.Validate())
}

func TestSampleQRDQN(t *testing.T) {
	values := dqnTrialValues()
	values["n_quantiles"] = 170
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleQRDQN(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, QRDQN, sampled.Algorithm())

	config, ok := sampled.(*QRDQNConfig)
	require.True(t, ok)
	assert.Equal(t, 170, config.PolicyConfig.NQuantiles)

	// The base DQN hyperparameters survive the augmentation
	assert.Equal(t, 32, config.BatchSize)
	assert.Equal(t, 125, config.GradientSteps)
}

func TestSampleARS(t *testing.T) {
	values := map[string]interface{}{
		"n_delta":       3, // 32
		"learning_rate": 0.02,
		"delta_std":     2, // 0.025
		"top_frac_size": 2, // 0.3
		"zero_policy":   0, // true
	}
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleARS(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, ARS, sampled.Algorithm())

	config, ok := sampled.(*ARSConfig)
	require.True(t, ok)
	assert.Equal(t, 32, config.NDelta)
	assert.Equal(t, 0.02, config.LearningRate)
	assert.Equal(t, 0.025, config.DeltaStd)
	assert.True(t, config.ZeroPolicy)

	// n_top is the truncated fraction of the sampled directions
	assert.Equal(t, 9, config.NTop)
}

func TestSampleARSTopDirectionsFloor(t *testing.T) {
	// A small direction count with a small fraction still keeps at
	// least one direction for the update
	values := map[string]interface{}{
		"n_delta":       0, // 4
		"learning_rate": 0.02,
		"delta_std":     2, // 0.025
		"top_frac_size": 0, // 0.1
		"zero_policy":   1, // false
	}
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleARS(trial, 4, 1, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())

	config := sampled.(*ARSConfig)
	assert.Equal(t, 4, config.NDelta)
	assert.Equal(t, 1, config.NTop)
	assert.False(t, config.ZeroPolicy)
}

func TestSampleTRPO(t *testing.T) {
	values := map[string]interface{}{
		"batch_size":       4, // 128
		"n_steps":          4, // 128
		"gamma":            3, // 0.99
		"learning_rate":    1e-3,
		"n_critic_updates": 1, // 10
		"cg_max_steps":     2, // 20
		"target_kl":        4, // 0.01
		"gae_lambda":       3, // 0.95
		"net_arch":         1, // medium
		"activation_fn":    0, // tanh
	}
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleTRPO(trial, 4, 8, AdditionalArgs{})
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())
	assert.Equal(t, TRPO, sampled.Algorithm())

	config, ok := sampled.(*TRPOConfig)
	require.True(t, ok)
	assert.Equal(t, 128, config.NSteps)
	assert.Equal(t, 128, config.BatchSize)
	assert.Equal(t, 10, config.NCriticUpdates)
	assert.Equal(t, 20, config.CGMaxSteps)
	assert.Equal(t, 0.01, config.TargetKL)
	assert.Equal(t, 0.95, config.GAELambda)
	assert.False(t, config.PolicyConfig.OrthoInit)

	require.NotNil(t, config.PolicyConfig.NetArch)
	assert.Equal(t, []int{256, 256}, config.PolicyConfig.NetArch.Pi)
}

func TestSampleHER(t *testing.T) {
	base := expreplay.HERConfig{
		OnlineSampling:   true,
		MaxEpisodeLength: 50,
	}
	args := AdditionalArgs{UsingHERReplayBuffer: true, HER: base}

	values := sacTrialValues()
	values["n_sampled_goal"] = 4
	values["goal_selection_strategy"] = 2 // future
	trial := tuner.NewFixedTrial(values)

	sampled, err := SampleSAC(trial, 4, 1, args)
	require.NoError(t, err)
	require.NoError(t, sampled.Validate())

	config := sampled.(*SACConfig)
	require.NotNil(t, config.ReplayBufferConfig)
	assert.Equal(t, 4, config.ReplayBufferConfig.NSampledGoal)
	assert.Equal(t, expreplay.Future,
		config.ReplayBufferConfig.GoalSelectionStrategy)

	// The base configuration is carried over, never mutated
	assert.True(t, config.ReplayBufferConfig.OnlineSampling)
	assert.Equal(t, 50, config.ReplayBufferConfig.MaxEpisodeLength)
	assert.Equal(t, 0, args.HER.NSampledGoal)
}
