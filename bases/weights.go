// Package bases holds the nucleotide alphabet, the start and stop codons and
// the weighted base sampler shared by the generator and the profiler.
package bases

import (
	"gonum.org/v1/gonum/floats"
)

// Alphabet is the canonical nucleotide order used by every weight tuple.
const Alphabet = "ACGT"

// Weights holds one non-negative weight per nucleotide, ordered A, C, G, T.
type Weights [4]float64

// Total returns the summed weight of all four nucleotides.
func (w Weights) Total() float64 {
	return floats.Sum(w[:])
}

// Index returns the position of base in Alphabet, or -1 when it is not a nucleotide.
func Index(base byte) int {
	switch base {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return -1
}

// Background base frequencies (percent) used to fill a synthetic sequence
// outside the inserted motif and codons.
var (
	PositiveUpstream   = Weights{31.1, 19.6, 15.5, 33.8}
	PositiveDownstream = Weights{26.1, 23.0, 20.4, 29.7}
	NegativeUpstream   = Weights{31.4, 18.4, 18.5, 31.7}
	NegativeDownstream = Weights{31.3, 18.1, 18.5, 31.4}
)
