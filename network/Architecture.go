package network

import "fmt"

// ActorCriticArch describes the hidden layer widths of separate policy
// and value networks. When an image observation is used, the
// architecture describes the fully connected head that follows the
// convolutional feature extractor.
type ActorCriticArch struct {
	Pi []int `json:"pi"` // Policy network hidden layer widths
	Vf []int `json:"vf"` // Value network hidden layer widths
}

// String implements the fmt.Stringer interface
func (a *ActorCriticArch) String() string {
	return fmt.Sprintf("{Pi: %v Vf: %v}", a.Pi, a.Vf)
}
