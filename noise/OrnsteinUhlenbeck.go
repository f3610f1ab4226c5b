package noise

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ornsteinUhlenbeckNoise implements a temporally correlated
// Ornstein-Uhlenbeck noise process:
//
//	x' = x + θ(μ - x)dt + σ√(dt) N(0, 1)
type ornsteinUhlenbeckNoise struct {
	mean  []float64
	sigma []float64
	theta float64
	dt    float64

	prev  []float64
	dists []distuv.Normal
}

func newOrnsteinUhlenbeckNoise(mean, sigma []float64, theta,
	dt float64, seed uint64) *ornsteinUhlenbeckNoise {
	return &ornsteinUhlenbeckNoise{
		mean:  mean,
		sigma: sigma,
		theta: theta,
		dt:    dt,
		prev:  make([]float64, len(mean)),
		dists: standardNormals(len(mean), seed),
	}
}

// Sample returns the next noise vector of the process
func (o *ornsteinUhlenbeckNoise) Sample() []float64 {
	sqrtDt := math.Sqrt(o.dt)
	for i := range o.prev {
		o.prev[i] += o.theta*(o.mean[i]-o.prev[i])*o.dt +
			o.sigma[i]*sqrtDt*o.dists[i].Rand()
	}

	sample := make([]float64, len(o.prev))
	copy(sample, o.prev)
	return sample
}

// Reset restarts the process from its mean
func (o *ornsteinUhlenbeckNoise) Reset() {
	copy(o.prev, o.mean)
}
