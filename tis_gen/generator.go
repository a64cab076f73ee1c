package tis_gen

import (
	"fmt"
	"math/rand"
	"time"

	"synthetic_tis/bases"
	"synthetic_tis/pwm"
)

// Class selects which sample a sequence is built as.
type Class int

const (
	Positive Class = iota
	Negative
)

func (c Class) String() string {
	if c == Negative {
		return "neg"
	}
	return "pos"
}

// Stats counts what a Generator has produced.
type Stats struct {
	Positives      int
	Negatives      int
	UpstreamStarts int
	StopsReplaced  int
}

// Generator builds positive and negative sequences from one weight table and
// one random stream. It is not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	table     pwm.Table
	offsets   []int
	length    int
	motifSpan int

	Stats Stats
}

// NewRand returns a random stream for seed; seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewGenerator validates length and motifSpan and returns a Generator that
// draws from rng. table is read only.
func NewGenerator(rng *rand.Rand, table pwm.Table, length, motifSpan int) (*Generator, error) {
	if err := Validate(length, motifSpan); err != nil {
		return nil, err
	}
	offsets := table.Offsets()
	for _, off := range offsets {
		if off < -motifSpan || off > motifSpan+2 {
			return nil, &ValidationError{Field: "motif-span", Value: motifSpan, Reason: fmt.Sprintf("weight table offset %d is outside the consensus", off)}
		}
	}
	return &Generator{
		rng:       rng,
		table:     table,
		offsets:   offsets,
		length:    length,
		motifSpan: motifSpan,
	}, nil
}

// Length returns the upstream and downstream half-length.
func (g *Generator) Length() int { return g.length }

// Generate builds one sequence of the given class. Positive sequences are
// returned before stop codon removal; see RemoveStops.
func (g *Generator) Generate(class Class) Sequence {
	seq := Skeleton(bases.Start, g.length)

	switch class {
	case Positive:
		g.insertConsensus(seq)
		g.Stats.UpstreamStarts += g.insertUpstreamStarts(seq)
		g.Stats.Positives++
	case Negative:
		g.insertStop(seq)
		g.Stats.Negatives++
	}

	g.fill(seq, class)
	return seq
}
