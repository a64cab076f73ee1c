package profile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"synthetic_tis/bases"
)

// length 3: 3 upstream, ATG, 3 downstream
const corpus = `ATGATGCCC
GGGATGTAA
AAAATGTTT
ACG
`

func writeCorpus(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.pos")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompute(t *testing.T) {
	r, err := Compute(writeCorpus(t, corpus), 3)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"sequences", r.Sequences, 4},
		{"bad length", r.BadLength, 1},
		{"start at TIS", r.StartAtTIS, 3},
		{"upstream starts", r.UpstreamStarts, 1},
		{"downstream stops", r.DownstreamStops, 1},
		{"with stop", r.WithStop, 1},
		{"codons", r.Codons["TTT"], 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	// position 0 holds A, G, A
	if got := r.Composition[0]; got != [4]float64{2, 0, 1, 0} {
		t.Errorf("Composition[0] = %v", got)
	}
	if len(r.GCContent) != 3 {
		t.Fatalf("GCContent = %v", r.GCContent)
	}
	if r.MeanGC <= 0 {
		t.Errorf("MeanGC = %v", r.MeanGC)
	}
}

func TestCompute_BadLength(t *testing.T) {
	if _, err := Compute(writeCorpus(t, corpus), 0); err == nil {
		t.Error("Compute() accepted length 0")
	}
}

func TestRegionFrequencies(t *testing.T) {
	r, err := Compute(writeCorpus(t, "AAAATGCCC\n"), 3)
	if err != nil {
		t.Fatal(err)
	}
	up, down := r.RegionFrequencies()
	if up != (bases.Weights{3, 0, 0, 0}) || down != (bases.Weights{0, 3, 0, 0}) {
		t.Errorf("RegionFrequencies() = %v, %v", up, down)
	}
}

func TestGoodnessOfFit(t *testing.T) {
	chi, p := GoodnessOfFit(bases.Weights{25, 25, 25, 25}, bases.Weights{1, 1, 1, 1})
	if chi != 0 || p < 0.99 {
		t.Errorf("perfect fit: chi %v p %v", chi, p)
	}
	chi, p = GoodnessOfFit(bases.Weights{100, 0, 0, 0}, bases.Weights{1, 1, 1, 1})
	if chi < 100 || p > 0.001 {
		t.Errorf("poor fit: chi %v p %v", chi, p)
	}
	if _, p := GoodnessOfFit(bases.Weights{}, bases.Weights{1, 1, 1, 1}); p != 1 {
		t.Errorf("empty observation p = %v", p)
	}
}

func TestAllKmers(t *testing.T) {
	kmers := AllKmers(3)
	if len(kmers) != 64 {
		t.Fatalf("len(AllKmers(3)) = %d", len(kmers))
	}
	if kmers[0] != "AAA" || kmers[63] != "TTT" {
		t.Errorf("AllKmers(3) bounds = %s, %s", kmers[0], kmers[63])
	}
}

func TestCodonUsage(t *testing.T) {
	r := &Report{Codons: map[string]int{"GCC": 3, "TAA": 1}}
	usage := r.CodonUsage("freq")
	if len(usage) != 64 {
		t.Fatalf("len = %d", len(usage))
	}
	if usage[0].Codon != "GCC" || usage[0].RelPct != 75 {
		t.Errorf("top codon = %+v", usage[0])
	}
	if alpha := r.CodonUsage("alpha"); alpha[0].Codon != "AAA" {
		t.Errorf("alpha first = %s", alpha[0].Codon)
	}
}

func TestPrintReport(t *testing.T) {
	r, err := Compute(writeCorpus(t, corpus), 3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	PrintReport(&buf, r, ExpectedFor(false), 5)
	out := buf.String()
	for _, want := range []string{"Total sequences: 4", "ATG at the TIS: 3", "upstream", "Codon\tCount"} {
		if !strings.Contains(out, want) {
			t.Errorf("report lacks %q:\n%s", want, out)
		}
	}
}

func TestWritePlot(t *testing.T) {
	r, err := Compute(writeCorpus(t, corpus), 3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WritePlot(&buf, r); err != nil {
		t.Fatalf("WritePlot() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("WritePlot() did not produce SVG")
	}
	if err := WritePlot(&buf, &Report{}); err == nil {
		t.Error("WritePlot() on an empty report returned no error")
	}
}
