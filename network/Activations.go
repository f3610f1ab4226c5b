// Package network describes policy network architectures and
// activation functions at the configuration level. It does not build
// networks; it provides the serializable descriptors that a training
// routine consumes.
package network

import (
	"encoding/json"
	"fmt"

	G "gorgonia.org/gorgonia"
)

type activationType string

const (
	sigmoid   activationType = "sigmoid"
	tanh      activationType = "tanh"
	relu      activationType = "relu"
	elu       activationType = "elu"
	leakyRelu activationType = "leaky_relu"
	identity  activationType = "identity"
	nil_      activationType = "nil"
)

// leakyReluSlope is the slope of LeakyReLU on negative inputs
const leakyReluSlope float64 = 0.01

// Activation represents an activation function type
type Activation struct {
	activationType
	f func(x *G.Node) (*G.Node, error)
}

// ActivationOf returns the Activation registered under name
func ActivationOf(name string) (*Activation, error) {
	switch activationType(name) {
	case sigmoid:
		return Sigmoid(), nil
	case tanh:
		return TanH(), nil
	case relu:
		return ReLU(), nil
	case elu:
		return ELU(), nil
	case leakyRelu:
		return LeakyReLU(), nil
	case identity:
		return Identity(), nil
	default:
		return nil, fmt.Errorf("activationof: illegal Activation type %q",
			name)
	}
}

// Fwd performs the forward pass of an Activation
func (a *Activation) Fwd(x *G.Node) (*G.Node, error) {
	return a.f(x)
}

// String implements the Stringer interface
func (a *Activation) String() string {
	return string(a.activationType)
}

// IsIdentity returns whether or not the Activation is the identity
// function.
func (a *Activation) IsIdentity() bool {
	return a.activationType == identity
}

// IsNil returns whether an activation is nil
func (a *Activation) IsNil() bool {
	return a.activationType == nil_
}

// MarshalJSON implements the json.Marshaler interface
func (a *Activation) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a.activationType))
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (a *Activation) UnmarshalJSON(encoded []byte) error {
	var name string
	if err := json.Unmarshal(encoded, &name); err != nil {
		return err
	}

	decoded, err := ActivationOf(name)
	if err != nil {
		return err
	}
	*a = *decoded

	return nil
}

// GobEncode implements the GobEncoder interface
func (a *Activation) GobEncode() ([]byte, error) {
	return []byte(a.activationType), nil
}

// GobDecode implements the GobDecoder interface
func (a *Activation) GobDecode(encoded []byte) error {
	decoded, err := ActivationOf(string(encoded))
	if err != nil {
		return fmt.Errorf("gobdecode: illegal Activation type")
	}
	*a = *decoded

	return nil
}

// Nil returns a nil *Activation
func Nil() *Activation {
	return &Activation{
		activationType: nil_,
		f:              nil,
	}
}

// Identity returns an identity *Activation
func Identity() *Activation {
	return &Activation{
		activationType: identity,
		f: func(x *G.Node) (*G.Node, error) {
			return x, nil
		},
	}
}

// Sigmoid returns a sigmoid *Activation
func Sigmoid() *Activation {
	return &Activation{
		activationType: sigmoid,
		f:              G.Sigmoid,
	}
}

// TanH returns a tanh *Activation
func TanH() *Activation {
	return &Activation{
		activationType: tanh,
		f:              G.Tanh,
	}
}

// ReLU returns a ReLU *Activation
func ReLU() *Activation {
	return &Activation{
		activationType: relu,
		f:              G.Rectify,
	}
}

// ELU returns an ELU *Activation. The forward pass is composed from
// primitive operations as relu(x) - relu(1 - exp(x)), which equals
// exp(x) - 1 on negative inputs and x elsewhere.
func ELU() *Activation {
	return &Activation{
		activationType: elu,
		f: func(x *G.Node) (*G.Node, error) {
			positive, err := G.Rectify(x)
			if err != nil {
				return nil, err
			}

			expX, err := G.Exp(x)
			if err != nil {
				return nil, err
			}
			shifted, err := G.Sub(G.NewConstant(1.0), expX)
			if err != nil {
				return nil, err
			}
			negative, err := G.Rectify(shifted)
			if err != nil {
				return nil, err
			}

			return G.Sub(positive, negative)
		},
	}
}

// LeakyReLU returns a LeakyReLU *Activation with slope 0.01 on
// negative inputs, composed as relu(x) - slope * relu(-x).
func LeakyReLU() *Activation {
	return &Activation{
		activationType: leakyRelu,
		f: func(x *G.Node) (*G.Node, error) {
			positive, err := G.Rectify(x)
			if err != nil {
				return nil, err
			}

			negX, err := G.Neg(x)
			if err != nil {
				return nil, err
			}
			negative, err := G.Rectify(negX)
			if err != nil {
				return nil, err
			}
			scaled, err := G.Mul(G.NewConstant(leakyReluSlope), negative)
			if err != nil {
				return nil, err
			}

			return G.Sub(positive, scaled)
		},
	}
}
