package bases

import (
	"math/rand"
)

// Sample draws a single nucleotide from w.
//
// The draw r is uniform on (1, total] and is compared against the running
// sum of the weights in A, C, G, T order: r <= A gives 'A', r <= A+C gives
// 'C', r <= A+C+G gives 'G' and anything above gives 'T'. Callers must pass
// a positive total; an all-zero tuple has no defined result.
func Sample(rng *rand.Rand, w Weights) byte {
	total := w.Total()
	r := total - rng.Float64()*(total-1)

	switch {
	case r <= w[0]:
		return 'A'
	case r <= w[0]+w[1]:
		return 'C'
	case r <= w[0]+w[1]+w[2]:
		return 'G'
	default:
		return 'T'
	}
}

// SampleInto overwrites every position of dst with an independent draw from w.
func SampleInto(rng *rand.Rand, w Weights, dst []byte) {
	for i := range dst {
		dst[i] = Sample(rng, w)
	}
}
