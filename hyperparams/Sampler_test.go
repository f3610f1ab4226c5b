package hyperparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// replayBufferOf returns the replay buffer configuration of the
// off-policy configurations and nil for everything else
func replayBufferOf(config Config) *expreplay.HERConfig {
	switch c := config.(type) {
	case *SACConfig:
		return c.ReplayBufferConfig
	case *TQCConfig:
		return c.ReplayBufferConfig
	case *TD3Config:
		return c.ReplayBufferConfig
	case *DDPGConfig:
		return c.ReplayBufferConfig
	case *DQNConfig:
		return c.ReplayBufferConfig
	case *QRDQNConfig:
		return c.ReplayBufferConfig
	default:
		return nil
	}
}

func TestFor(t *testing.T) {
	for algorithm := range Samplers {
		sampler, err := For(algorithm)
		require.NoError(t, err)
		assert.NotNil(t, sampler)
	}

	_, err := For(Algorithm("dyna"))
	assert.Error(t, err)
}

// TestSamplersProduceValidConfigs draws many random trials through
// every registered sampler and checks that each draw produces a valid
// configuration for the right algorithm.
func TestSamplersProduceValidConfigs(t *testing.T) {
	for algorithm, sampler := range Samplers {
		algorithm, sampler := algorithm, sampler
		t.Run(string(algorithm), func(t *testing.T) {
			for seed := uint64(0); seed < 25; seed++ {
				trial := tuner.NewRandomSearchTrial(seed)

				config, err := sampler(trial, 4, 8, AdditionalArgs{})
				require.NoError(t, err)
				require.NoError(t, config.Validate())
				assert.Equal(t, algorithm, config.Algorithm())
			}
		})
	}
}

// TestSamplersWithHERReplayBuffer checks that the off-policy samplers
// tune the hindsight experience replay knobs when the search uses a
// hindsight replay buffer.
func TestSamplersWithHERReplayBuffer(t *testing.T) {
	offPolicy := []Algorithm{SAC, TQC, TD3, DDPG, DQN, QRDQN}
	args := AdditionalArgs{
		UsingHERReplayBuffer: true,
		HER: expreplay.HERConfig{
			OnlineSampling:   true,
			MaxEpisodeLength: 100,
		},
	}

	for _, algorithm := range offPolicy {
		algorithm := algorithm
		t.Run(string(algorithm), func(t *testing.T) {
			sampler, err := For(algorithm)
			require.NoError(t, err)

			for seed := uint64(0); seed < 10; seed++ {
				trial := tuner.NewRandomSearchTrial(seed)

				config, err := sampler(trial, 4, 8, args)
				require.NoError(t, err)
				require.NoError(t, config.Validate())

				replay := replayBufferOf(config)
				require.NotNil(t, replay)
				assert.GreaterOrEqual(t, replay.NSampledGoal, 1)
				assert.LessOrEqual(t, replay.NSampledGoal, 5)
				assert.Contains(t,
					[]expreplay.GoalSelectionStrategy{expreplay.Final,
						expreplay.Episode, expreplay.Future},
					replay.GoalSelectionStrategy)
				assert.True(t, replay.OnlineSampling)
			}
		})
	}
}

// TestOnPolicySamplersIgnoreHER checks that the on-policy samplers
// never attach a replay buffer configuration, with or without a
// hindsight replay buffer requested.
func TestOnPolicySamplersIgnoreHER(t *testing.T) {
	args := AdditionalArgs{UsingHERReplayBuffer: true}

	for _, algorithm := range []Algorithm{A2C, ARS, PPO, RecurrentPPO,
		TRPO} {
		sampler, err := For(algorithm)
		require.NoError(t, err)

		trial := tuner.NewRandomSearchTrial(14)
		config, err := sampler(trial, 4, 8, args)
		require.NoError(t, err)
		assert.Nil(t, replayBufferOf(config))
	}
}

// TestSamplerParamsRecorded checks that a sampler reports every drawn
// hyperparameter back to the trial.
func TestSamplerParamsRecorded(t *testing.T) {
	trial := tuner.NewRandomSearchTrial(3)

	_, err := SamplePPO(trial, 4, 8, AdditionalArgs{})
	require.NoError(t, err)

	params := trial.Params()
	for _, name := range []string{"batch_size", "n_steps", "gamma",
		"learning_rate", "ent_coef", "clip_range", "n_epochs", "gae_lambda",
		"max_grad_norm", "vf_coef", "net_arch", "ortho_init",
		"activation_fn"} {
		assert.Contains(t, params, name)
	}
}
