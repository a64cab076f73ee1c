package tis_gen

import (
	"synthetic_tis/bases"
)

// insertConsensus samples every offset of the weight table around the start
// codon. Offsets are visited in ascending order so a seeded run is repeatable.
func (g *Generator) insertConsensus(seq Sequence) {
	for _, off := range g.offsets {
		seq[g.length+off] = bases.Sample(g.rng, g.table[off])
	}
}

// insertStop writes a random stop codon into a random downstream codon slot
// past the consensus region and returns the slot.
func (g *Generator) insertStop(seq Sequence) int {
	stop := bases.Stops[g.rng.Intn(len(bases.Stops))]

	lo, hi := stopSlots(g.length, g.motifSpan)
	slot := lo + g.rng.Intn(hi-lo+1)
	copy(seq[slot*3:slot*3+3], stop)
	return slot
}

// stopSlots returns the inclusive codon slot range for the negative stop codon.
func stopSlots(length, motifSpan int) (int, int) {
	inLen := ceilDiv(length, 3)
	return inLen + ceilDiv(motifSpan+5, 3), inLen * 2
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
