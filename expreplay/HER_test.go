package expreplay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHERConfigValidate(t *testing.T) {
	config := HERConfig{
		NSampledGoal:          4,
		GoalSelectionStrategy: Future,
		OnlineSampling:        true,
	}
	assert.NoError(t, config.Validate())

	config.GoalSelectionStrategy = GoalSelectionStrategy("random")
	assert.Error(t, config.Validate())

	config.GoalSelectionStrategy = Final
	config.NSampledGoal = 0
	assert.Error(t, config.Validate())
}

func TestHERConfigJSONKeys(t *testing.T) {
	config := HERConfig{
		NSampledGoal:          4,
		GoalSelectionStrategy: Episode,
		OnlineSampling:        true,
		MaxEpisodeLength:      100,
	}

	encoded, err := json.Marshal(config)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))

	for _, key := range []string{"n_sampled_goal", "goal_selection_strategy",
		"online_sampling", "max_episode_length"} {
		assert.Contains(t, fields, key)
	}

	decoded := HERConfig{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, config, decoded)
}
