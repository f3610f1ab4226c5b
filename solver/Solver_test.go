package solver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdam(t *testing.T) {
	s, err := NewAdam(3e-4, 1e-8, 0.9, 0.999, 64, 0.5)
	require.NoError(t, err)

	assert.Equal(t, Adam, s.Type)
	assert.NotNil(t, s.Solver)

	config, ok := s.Config.(AdamConfig)
	require.True(t, ok)
	assert.Equal(t, 3e-4, config.StepSize)
	assert.Equal(t, 64, config.Batch)
	assert.Equal(t, 0.5, config.Clip)
}

func TestNewDefaultAdam(t *testing.T) {
	s, err := NewDefaultAdam(1e-3, 256)
	require.NoError(t, err)

	config, ok := s.Config.(AdamConfig)
	require.True(t, ok)
	assert.Equal(t, 1e-8, config.Epsilon)
	assert.Equal(t, 0.9, config.Beta1)
	assert.Equal(t, 0.999, config.Beta2)
	assert.LessOrEqual(t, config.Clip, 0.0)
}

func TestNewRMSProp(t *testing.T) {
	s, err := NewRMSProp(7e-4, 1e-5, 0.99, 16, 0.5)
	require.NoError(t, err)

	assert.Equal(t, RMSProp, s.Type)
	assert.NotNil(t, s.Solver)

	config, ok := s.Config.(RMSPropConfig)
	require.True(t, ok)
	assert.Equal(t, 0.99, config.Rho)
}

func TestNewVanilla(t *testing.T) {
	s, err := NewVanilla(0.02, 32, -1.0)
	require.NoError(t, err)

	assert.Equal(t, Vanilla, s.Type)
	assert.NotNil(t, s.Solver)
}

func TestSolverJSON(t *testing.T) {
	for _, s := range []func() (*Solver, error){
		func() (*Solver, error) { return NewAdam(3e-4, 1e-8, 0.9, 0.999, 64, 0.5) },
		func() (*Solver, error) { return NewRMSProp(7e-4, 1e-5, 0.99, 16, -1.0) },
		func() (*Solver, error) { return NewVanilla(0.02, 32, 0.5) },
	} {
		original, err := s()
		require.NoError(t, err)

		encoded, err := json.Marshal(original)
		require.NoError(t, err)

		decoded := new(Solver)
		require.NoError(t, json.Unmarshal(encoded, decoded))

		assert.Equal(t, original.Type, decoded.Type)
		assert.Equal(t, original.Config, decoded.Config)
		assert.NotNil(t, decoded.Solver)
	}
}

func TestConfigValidType(t *testing.T) {
	assert.True(t, AdamConfig{}.ValidType(Adam))
	assert.False(t, AdamConfig{}.ValidType(Vanilla))

	assert.True(t, RMSPropConfig{}.ValidType(RMSProp))
	assert.False(t, RMSPropConfig{}.ValidType(Adam))

	assert.True(t, VanillaConfig{}.ValidType(Vanilla))
	assert.False(t, VanillaConfig{}.ValidType(RMSProp))
}
