package profile

import (
	"fmt"
	"io"
	"strings"

	"synthetic_tis/bases"
)

// Expected holds the background weights the filler used for a corpus.
type Expected struct {
	Upstream   bases.Weights
	Downstream bases.Weights
}

// ExpectedFor returns the filler weights of the positive or negative class.
func ExpectedFor(negative bool) Expected {
	if negative {
		return Expected{bases.NegativeUpstream, bases.NegativeDownstream}
	}
	return Expected{bases.PositiveUpstream, bases.PositiveDownstream}
}

// PrintReport writes a human readable summary of r to w. top limits the codon
// usage table; 0 hides it.
func PrintReport(w io.Writer, r *Report, exp Expected, top int) {
	fmt.Fprintf(w, "TIS Corpus Report: %s\n", r.FileName)
	fmt.Fprintln(w, strings.Repeat("-", 40))

	fmt.Fprintf(w, "Total sequences: %d\n", r.Sequences)
	if r.BadLength > 0 {
		fmt.Fprintf(w, "Sequences not %d bp long: %d\n", len(r.Composition), r.BadLength)
	} else {
		fmt.Fprintf(w, "All sequences are %d bp long\n", len(r.Composition))
	}
	if r.InvalidBases > 0 {
		fmt.Fprintf(w, "Invalid (non-ACGT) bases: %d\n", r.InvalidBases)
	}
	fmt.Fprintf(w, "ATG at the TIS: %d\n", r.StartAtTIS)
	fmt.Fprintf(w, "In-frame upstream ATG codons: %d\n", r.UpstreamStarts)
	fmt.Fprintf(w, "In-frame downstream stop codons: %d (in %d sequences)\n", r.DownstreamStops, r.WithStop)
	fmt.Fprintf(w, "GC content: %.2f%% (sd %.2f)\n", r.MeanGC, r.StdDevGC)

	up, down := r.RegionFrequencies()
	fmt.Fprintln(w, "\nRegion\tA(%)\tC(%)\tG(%)\tT(%)\tchi2\tp")
	printRegion(w, "upstream", up, exp.Upstream)
	printRegion(w, "downstream", down, exp.Downstream)

	if top <= 0 {
		return
	}
	usage := r.CodonUsage("freq")
	if top > len(usage) {
		top = len(usage)
	}
	fmt.Fprintln(w, "\nCodon\tCount\tRelative_Freq(%)")
	for _, item := range usage[:top] {
		fmt.Fprintf(w, "%s\t%d\t%.2f\n", item.Codon, item.Count, item.RelPct)
	}
}

func printRegion(w io.Writer, name string, observed, expected bases.Weights) {
	total := observed.Total()
	if total == 0 {
		fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\t-\n", name)
		return
	}
	chi, p := GoodnessOfFit(observed, expected)
	fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.3g\n", name,
		observed[0]/total*100, observed[1]/total*100, observed[2]/total*100, observed[3]/total*100, chi, p)
}
