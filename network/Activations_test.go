package network

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationOf(t *testing.T) {
	names := []string{"sigmoid", "tanh", "relu", "elu", "leaky_relu",
		"identity"}

	for _, name := range names {
		activation, err := ActivationOf(name)
		require.NoError(t, err)
		assert.Equal(t, name, activation.String())
	}

	_, err := ActivationOf("softplus")
	assert.Error(t, err)

	// The nil activation cannot be looked up by name
	_, err = ActivationOf("nil")
	assert.Error(t, err)
}

func TestActivationPredicates(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.False(t, Identity().IsNil())

	assert.True(t, Nil().IsNil())
	assert.False(t, Nil().IsIdentity())

	assert.False(t, ReLU().IsIdentity())
	assert.False(t, ReLU().IsNil())
}

func TestActivationJSON(t *testing.T) {
	encoded, err := json.Marshal(TanH())
	require.NoError(t, err)
	assert.Equal(t, `"tanh"`, string(encoded))

	decoded := new(Activation)
	require.NoError(t, json.Unmarshal(encoded, decoded))
	assert.Equal(t, "tanh", decoded.String())

	// Decoding fails fast on unknown names
	err = json.Unmarshal([]byte(`"softplus"`), new(Activation))
	assert.Error(t, err)
}

func TestActivationGob(t *testing.T) {
	encoded, err := LeakyReLU().GobEncode()
	require.NoError(t, err)

	decoded := new(Activation)
	require.NoError(t, decoded.GobDecode(encoded))
	assert.Equal(t, "leaky_relu", decoded.String())

	assert.Error(t, decoded.GobDecode([]byte("softplus")))
}

func TestActorCriticArchString(t *testing.T) {
	arch := &ActorCriticArch{Pi: []int{64}, Vf: []int{64, 64}}
	assert.Contains(t, arch.String(), "64")

	encoded, err := json.Marshal(arch)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	assert.Contains(t, fields, "pi")
	assert.Contains(t, fields, "vf")
}
