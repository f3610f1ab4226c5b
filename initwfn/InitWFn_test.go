package initwfn

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gorgonia.org/tensor"
)

func TestOrthogonalSquare(t *testing.T) {
	config := OrthogonalConfig{Gain: 1, Seed: 42}
	weights := config.Create()(tensor.Float64, 8, 8).([]float64)
	require.Len(t, weights, 64)

	// The columns of a square orthogonal matrix are orthonormal
	w := mat.NewDense(8, 8, weights)
	var gram mat.Dense
	gram.Mul(w.T(), w)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-10)
		}
	}
}

func TestOrthogonalWide(t *testing.T) {
	// A wide matrix is semi-orthogonal: its rows are orthonormal
	config := OrthogonalConfig{Gain: 1, Seed: 13}
	weights := config.Create()(tensor.Float64, 2, 6).([]float64)
	require.Len(t, weights, 12)

	w := mat.NewDense(2, 6, weights)
	var gram mat.Dense
	gram.Mul(w, w.T())

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, gram.At(i, j), 1e-10)
		}
	}
}

func TestOrthogonalGain(t *testing.T) {
	config := OrthogonalConfig{Gain: math.Sqrt2, Seed: 7}
	weights := config.Create()(tensor.Float64, 4, 4).([]float64)

	w := mat.NewDense(4, 4, weights)
	var gram mat.Dense
	gram.Mul(w.T(), w)

	// The gain scales every singular value, so the Gram matrix picks
	// up the squared gain on its diagonal
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 2.0, gram.At(i, i), 1e-10)
	}
}

func TestOrthogonalFloat32(t *testing.T) {
	config := OrthogonalConfig{Gain: 1, Seed: 3}
	weights, ok := config.Create()(tensor.Float32, 3, 5).([]float32)
	require.True(t, ok)
	assert.Len(t, weights, 15)
}

func TestNewOrthogonal(t *testing.T) {
	wfn, err := NewOrthogonal(math.Sqrt2, 0)
	require.NoError(t, err)
	assert.Equal(t, Orthogonal, wfn.Type)
	assert.NotNil(t, wfn.InitWFn())
}

func TestInitWFnJSON(t *testing.T) {
	wfn, err := NewOrthogonal(math.Sqrt2, 11)
	require.NoError(t, err)

	encoded, err := json.Marshal(wfn)
	require.NoError(t, err)

	decoded := new(InitWFn)
	require.NoError(t, json.Unmarshal(encoded, decoded))

	assert.Equal(t, Orthogonal, decoded.Type)
	assert.Equal(t, wfn.Config, decoded.Config)
	assert.NotNil(t, decoded.InitWFn())

	glorot, err := NewGlorotU(1.0)
	require.NoError(t, err)

	encoded, err = json.Marshal(glorot)
	require.NoError(t, err)

	decoded = new(InitWFn)
	require.NoError(t, json.Unmarshal(encoded, decoded))
	assert.Equal(t, GlorotU, decoded.Type)
}
