// Package pwm reads a position weight matrix into a table of nucleotide
// weights keyed by offset from the first base of the start codon.
package pwm

import (
	"sort"

	"synthetic_tis/bases"
)

// Table maps an offset relative to the start codon (0, 1 and 2 excluded)
// to the weights of the four nucleotides at that offset.
type Table map[int]bases.Weights

// Positions returns the offsets covered by a motif of half-span l, in the
// order the weight columns appear in the file: -l..-1 then 3..l+2.
func Positions(l int) []int {
	position := make([]int, 0, 2*l)
	for j := -l; j < l+3; j++ {
		if j >= 0 && j <= 2 {
			continue // start codon
		}
		position = append(position, j)
	}
	return position
}

// Offsets returns the table keys in ascending order.
func (t Table) Offsets() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
