package tis_gen

import (
	"errors"
	"fmt"

	"synthetic_tis/bases"
	"synthetic_tis/pwm"
	"synthetic_tis/seqio"
)

// SequenceWriter receives finished sequences.
type SequenceWriter interface {
	WriteSequence(seq []byte) error
}

// Params configures one WriteTIS run.
type Params struct {
	Rows      int
	PWMPath   string
	PosPath   string
	NegPath   string
	Length    int
	MotifSpan int
	Seed      int64
	Format    string
	Gzip      bool
}

// Summary describes a finished run.
type Summary struct {
	Rows    int
	PosPath string
	NegPath string
	Stats   Stats
}

// Write generates rows positive/negative pairs from g. Stop codons downstream
// of the start codon are removed from each positive before it is written.
func Write(g *Generator, rows int, pos, neg SequenceWriter) error {
	for i := 0; i < rows; i++ {
		positive := g.Generate(Positive)
		negative := g.Generate(Negative)
		g.RemoveStops(positive)

		if err := pos.WriteSequence(positive); err != nil {
			return fmt.Errorf("failed to write positive sequence %d: %w", i+1, err)
		}
		if err := neg.WriteSequence(negative); err != nil {
			return fmt.Errorf("failed to write negative sequence %d: %w", i+1, err)
		}
	}
	return nil
}

// WriteTIS loads the weight matrix, generates p.Rows pairs and writes the
// positive and negative corpora. Parameters are validated before any file is
// touched.
func WriteTIS(p Params) (Summary, error) {
	if err := Validate(p.Length, p.MotifSpan); err != nil {
		return Summary{}, err
	}
	if p.Rows < 0 {
		return Summary{}, &ValidationError{Field: "rows", Value: p.Rows, Reason: "must not be negative"}
	}
	if p.Format == "" {
		p.Format = seqio.Lines
	}
	if !seqio.ValidFormat(p.Format) {
		return Summary{}, fmt.Errorf("unknown output format %q", p.Format)
	}

	table, err := pwm.Load(p.PWMPath, p.MotifSpan)
	if err != nil {
		return Summary{}, err
	}
	g, err := NewGenerator(NewRand(p.Seed), table, p.Length, p.MotifSpan)
	if err != nil {
		return Summary{}, err
	}

	pos, err := seqio.Create(p.PosPath, p.Format, Positive.String(), p.Gzip)
	if err != nil {
		return Summary{}, err
	}
	neg, err := seqio.Create(p.NegPath, p.Format, Negative.String(), p.Gzip)
	if err != nil {
		_ = pos.Close()
		return Summary{}, err
	}

	werr := Write(g, p.Rows, pos, neg)
	err = errors.Join(werr, pos.Close(), neg.Close())
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Rows:    p.Rows,
		PosPath: pos.Path(),
		NegPath: neg.Path(),
		Stats:   g.Stats,
	}, nil
}

// SequenceLength returns the length of every generated sequence.
func SequenceLength(length int) int {
	return 2*length + len(bases.Start)
}
