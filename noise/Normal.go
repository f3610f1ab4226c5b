package noise

import "gonum.org/v1/gonum/stat/distuv"

// normalNoise implements uncorrelated Gaussian action noise
type normalNoise struct {
	mean  []float64
	sigma []float64
	dists []distuv.Normal
}

func newNormalNoise(mean, sigma []float64, seed uint64) *normalNoise {
	return &normalNoise{
		mean:  mean,
		sigma: sigma,
		dists: standardNormals(len(mean), seed),
	}
}

// Sample returns the next noise vector
func (n *normalNoise) Sample() []float64 {
	sample := make([]float64, len(n.mean))
	for i := range sample {
		sample[i] = n.mean[i] + n.sigma[i]*n.dists[i].Rand()
	}
	return sample
}

// Reset is a no-op since samples are uncorrelated across steps
func (n *normalNoise) Reset() {}
