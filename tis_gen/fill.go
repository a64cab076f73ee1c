package tis_gen

import (
	"synthetic_tis/bases"
)

// fill replaces every remaining placeholder with a base drawn from the
// background frequencies of the class and region.
func (g *Generator) fill(seq Sequence, class Class) {
	upstream, downstream := bases.PositiveUpstream, bases.PositiveDownstream
	if class == Negative {
		upstream, downstream = bases.NegativeUpstream, bases.NegativeDownstream
	}

	for i := range seq {
		if !isPlaceholder(seq[i]) {
			continue
		}
		switch {
		case i < g.length:
			seq[i] = bases.Sample(g.rng, upstream)
		case i >= g.length+3:
			seq[i] = bases.Sample(g.rng, downstream)
		}
	}
}

// RemoveStops walks the downstream codons of a positive sequence and redraws
// any stop codon from the positive downstream frequencies. Each codon is
// visited once and redrawn until it is no longer a stop. It returns the
// number of codons that were replaced.
func (g *Generator) RemoveStops(seq Sequence) int {
	replaced := 0
	for p := g.length + 3; p+3 <= len(seq); p += 3 {
		codon := seq[p : p+3]
		if !bases.IsStop(codon) {
			continue
		}
		replaced++
		for bases.IsStop(codon) {
			bases.SampleInto(g.rng, bases.PositiveDownstream, codon)
		}
	}
	g.Stats.StopsReplaced += replaced
	return replaced
}
