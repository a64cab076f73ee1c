package tis_gen

import (
	"synthetic_tis/bases"
)

// insertUpstreamStarts plants zero, one or two start codons in the upstream
// codon slots that precede the consensus and returns how many were planted.
// A slot next to the consensus may still overwrite some of its bases.
func (g *Generator) insertUpstreamStarts(seq Sequence) int {
	n := g.rng.Intn(3)

	// codon slots that stay clear of the consensus
	inLen := (g.length - (g.motifSpan + 5)) / 3

	switch {
	case n == 0 || inLen < 0:
		return 0
	case n == 1 || inLen == 0:
		pos := g.rng.Intn(inLen + 1)
		copy(seq[pos*3:pos*3+3], bases.Start)
		return 1
	default:
		pos1 := g.rng.Intn(inLen)
		pos2 := pos1 + 1 + g.rng.Intn(inLen-pos1)
		copy(seq[pos1*3:pos1*3+3], bases.Start)
		copy(seq[pos2*3:pos2*3+3], bases.Start)
		return 2
	}
}
