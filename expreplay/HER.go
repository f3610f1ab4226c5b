// Package expreplay describes replay buffer configurations for
// off-policy learning. The buffers themselves are a training-routine
// responsibility; this package only provides the serializable
// configurations that hyperparameter samplers produce.
package expreplay

import "fmt"

// GoalSelectionStrategy describes how a hindsight experience replay
// buffer relabels the goals of stored transitions.
type GoalSelectionStrategy string

// Available goal selection strategies
const (
	// Final relabels with the goal achieved at the end of the episode
	Final GoalSelectionStrategy = "final"

	// Episode relabels with a goal achieved at a random step of the
	// episode
	Episode GoalSelectionStrategy = "episode"

	// Future relabels with a goal achieved after the transition, in
	// the same episode
	Future GoalSelectionStrategy = "future"
)

// HERConfig implements a configuration of a hindsight experience
// replay buffer.
type HERConfig struct {
	// NSampledGoal is the number of relabelled goals sampled per
	// stored transition
	NSampledGoal int `json:"n_sampled_goal"`

	GoalSelectionStrategy GoalSelectionStrategy `json:"goal_selection_strategy"`

	// OnlineSampling relabels goals at sampling time rather than at
	// storage time
	OnlineSampling bool `json:"online_sampling"`

	// MaxEpisodeLength bounds episode length when the environment
	// does not expose a time limit of its own. 0 means unset.
	MaxEpisodeLength int `json:"max_episode_length,omitempty"`
}

// Validate returns an error describing whether or not the
// configuration is valid.
func (c HERConfig) Validate() error {
	switch c.GoalSelectionStrategy {
	case Final, Episode, Future:
	default:
		return fmt.Errorf("validate: illegal goal selection strategy %q",
			c.GoalSelectionStrategy)
	}

	if c.NSampledGoal < 1 {
		return fmt.Errorf("validate: at least one goal must be sampled per "+
			"transition \n\twant(>0) \n\thave(%v)", c.NSampledGoal)
	}

	return nil
}
