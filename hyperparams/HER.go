package hyperparams

import (
	"github.com/peter1706/iu-reinforcement-learning-assignment/expreplay"
	"github.com/peter1706/iu-reinforcement-learning-assignment/tuner"
)

// sampleHER samples the hindsight experience replay knobs on top of
// the base replay buffer configuration carried by AdditionalArgs. The
// base configuration is copied, never mutated.
func sampleHER(t tuner.Trial,
	base expreplay.HERConfig) (*expreplay.HERConfig, error) {
	config := base

	nSampledGoal, err := t.SuggestInt("n_sampled_goal", 1, 5)
	if err != nil {
		return nil, err
	}

	strategy, err := tuner.Categorical(t, "goal_selection_strategy",
		[]expreplay.GoalSelectionStrategy{expreplay.Final, expreplay.Episode,
			expreplay.Future})
	if err != nil {
		return nil, err
	}

	config.NSampledGoal = nSampledGoal
	config.GoalSelectionStrategy = strategy

	return &config, nil
}
