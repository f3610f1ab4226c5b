package initwfn

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// OrthogonalConfig implements a configuration of the orthogonal
// initialization algorithm. Weights are initialized to a semi-orthogonal
// matrix obtained from the singular value decomposition of a Gaussian
// draw, scaled by Gain.
//
// Gorgonia provides no orthogonal InitWFn, so this package computes one.
type OrthogonalConfig struct {
	Gain float64
	Seed uint64
}

// NewOrthogonal returns a new orthogonal weight initializer
func NewOrthogonal(gain float64, seed uint64) (*InitWFn, error) {
	config := OrthogonalConfig{
		Gain: gain,
		Seed: seed,
	}

	return newInitWFn(config)
}

// Type returns the type of initialization algorithm described by the
// configuration.
func (o OrthogonalConfig) Type() Type {
	return Orthogonal
}

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (o OrthogonalConfig) Create() G.InitWFn {
	return func(dt tensor.Dtype, s ...int) interface{} {
		rows := 1
		cols := 1
		if len(s) > 0 {
			rows = s[0]
		}
		for _, dim := range s[1:] {
			cols *= dim
		}

		data := orthogonalMatrix(o.Gain, o.Seed, rows, cols)

		switch dt {
		case tensor.Float64:
			return data
		case tensor.Float32:
			converted := make([]float32, len(data))
			for i, v := range data {
				converted[i] = float32(v)
			}
			return converted
		default:
			panic(fmt.Sprintf("orthogonal: unsupported dtype %v", dt))
		}
	}
}

// orthogonalMatrix returns a (rows x cols) semi-orthogonal matrix in
// row-major order, scaled by gain.
func orthogonalMatrix(gain float64, seed uint64, rows, cols int) []float64 {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	draw := make([]float64, rows*cols)
	for i := range draw {
		draw[i] = normal.Rand()
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(rows, cols, draw), mat.SVDThin); !ok {
		// SVD of a Gaussian draw should not fail to converge; keep the
		// scaled draw if it somehow does.
		for i := range draw {
			draw[i] *= gain
		}
		return draw
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// The thin U factor has shape (rows x min(rows, cols)) and V has
	// shape (cols x min(rows, cols)). Whichever factor matches the
	// requested shape is the orthogonal initialization.
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rows >= cols {
				out[i*cols+j] = gain * u.At(i, j)
			} else {
				out[i*cols+j] = gain * v.At(j, i)
			}
		}
	}

	return out
}
