// Package profile summarises a generated corpus: lengths, the fixed start
// codon, in-frame stop codons, GC content, per-position base composition and
// downstream codon usage.
package profile

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"synthetic_tis/bases"
	"synthetic_tis/seqio"
)

// Report holds the statistics of one corpus.
type Report struct {
	FileName string
	Length   int // expected half-length

	Sequences       int
	BadLength       int
	InvalidBases    int
	StartAtTIS      int // sequences with ATG at [Length, Length+3)
	UpstreamStarts  int // in-frame ATG codons before the TIS
	DownstreamStops int // in-frame stop codons after the TIS
	WithStop        int // sequences holding at least one downstream stop

	GCContent []float64 // percent, one per sequence
	MeanGC    float64
	StdDevGC  float64

	// Composition[i][b] counts base b (A, C, G, T order) at position i.
	Composition [][4]float64
	Codons      map[string]int
}

// Compute streams the corpus at path and builds its Report. length is the
// half-length the corpus was generated with.
func Compute(path string, length int) (*Report, error) {
	if length <= 0 {
		return nil, fmt.Errorf("length must be positive, got %d", length)
	}
	r := &Report{
		FileName:    path,
		Length:      length,
		Composition: make([][4]float64, 2*length+3),
		Codons:      make(map[string]int),
	}
	if err := seqio.Stream(path, r.add); err != nil {
		return nil, err
	}
	if len(r.GCContent) > 0 {
		r.MeanGC = stat.Mean(r.GCContent, nil)
	}
	if len(r.GCContent) > 1 {
		r.StdDevGC = stat.StdDev(r.GCContent, nil)
	}
	return r, nil
}

func (r *Report) add(id string, seq []byte) error {
	r.Sequences++
	if len(seq) != len(r.Composition) {
		r.BadLength++
		return nil
	}

	gc := 0
	for i, b := range seq {
		idx := bases.Index(b)
		if idx < 0 {
			r.InvalidBases++
			continue
		}
		r.Composition[i][idx]++
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	r.GCContent = append(r.GCContent, float64(gc)/float64(len(seq))*100)

	if bases.IsStart(seq[r.Length : r.Length+3]) {
		r.StartAtTIS++
	}
	for p := 0; p+3 <= r.Length; p += 3 {
		if bases.IsStart(seq[p : p+3]) {
			r.UpstreamStarts++
		}
	}

	hasStop := false
	for p := r.Length + 3; p+3 <= len(seq); p += 3 {
		codon := seq[p : p+3]
		r.Codons[string(codon)]++
		if bases.IsStop(codon) {
			r.DownstreamStops++
			hasStop = true
		}
	}
	if hasStop {
		r.WithStop++
	}
	return nil
}

// RegionFrequencies returns the base counts of the upstream region (before the
// TIS) and the downstream region (after it).
func (r *Report) RegionFrequencies() (up, down bases.Weights) {
	for i, counts := range r.Composition {
		switch {
		case i < r.Length:
			for b := range counts {
				up[b] += counts[b]
			}
		case i >= r.Length+3:
			for b := range counts {
				down[b] += counts[b]
			}
		}
	}
	return up, down
}

// GoodnessOfFit compares observed base counts with the expected weights and
// returns the chi-square statistic and its p-value (3 degrees of freedom).
func GoodnessOfFit(observed, expected bases.Weights) (float64, float64) {
	n := observed.Total()
	total := expected.Total()
	if n == 0 || total == 0 {
		return 0, 1
	}
	chi := 0.0
	for b := range observed {
		e := expected[b] / total * n
		if e == 0 {
			continue
		}
		d := observed[b] - e
		chi += d * d / e
	}
	return chi, distuv.ChiSquared{K: 3}.Survival(chi)
}
