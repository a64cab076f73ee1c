package bases

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestSample_Alphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tables := []Weights{
		PositiveUpstream,
		PositiveDownstream,
		NegativeUpstream,
		NegativeDownstream,
		{1, 1, 1, 1},
		{352, 361, 154, 132},
	}
	for _, w := range tables {
		for i := 0; i < 2000; i++ {
			b := Sample(rng, w)
			if !strings.ContainsRune(Alphabet, rune(b)) {
				t.Fatalf("Sample(%v) = %q, not a nucleotide", w, b)
			}
		}
	}
}

func TestSample_Degenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tests := []struct {
		name string
		w    Weights
		want byte
	}{
		{"only A", Weights{5, 0, 0, 0}, 'A'},
		{"only C", Weights{0, 5, 0, 0}, 'C'},
		{"only G", Weights{0, 0, 5, 0}, 'G'},
		{"only T", Weights{0, 0, 0, 5}, 'T'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				if got := Sample(rng, tt.w); got != tt.want {
					t.Fatalf("Sample(%v) = %q, want %q", tt.w, got, tt.want)
				}
			}
		})
	}
}

// The draw lives on (1, total], so the first bucket loses one unit of width.
func TestSample_ChiSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	w := Weights{10, 20, 30, 40}
	const n = 100000

	var observed [4]float64
	for i := 0; i < n; i++ {
		observed[Index(Sample(rng, w))]++
	}

	span := w.Total() - 1
	expected := [4]float64{
		(w[0] - 1) / span * n,
		w[1] / span * n,
		w[2] / span * n,
		w[3] / span * n,
	}

	chi := 0.0
	for i := range observed {
		d := observed[i] - expected[i]
		chi += d * d / expected[i]
	}
	limit := distuv.ChiSquared{K: 3}.Quantile(0.999)
	if chi > limit {
		t.Errorf("chi-square %.2f above %.2f; observed %v expected %v", chi, limit, observed, expected)
	}
}

func TestSample_Proportional(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := PositiveUpstream
	const n = 200000

	var counts [4]float64
	for i := 0; i < n; i++ {
		counts[Index(Sample(rng, w))]++
	}
	for i := range counts {
		got := counts[i] / n
		want := w[i] / w.Total()
		if math.Abs(got-want) > 0.02 {
			t.Errorf("base %c: frequency %.4f, want about %.4f", Alphabet[i], got, want)
		}
	}
}

func TestSampleInto(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	dst := []byte("uuuuuuuu")
	SampleInto(rng, Weights{0, 0, 3, 0}, dst)
	if string(dst) != "GGGGGGGG" {
		t.Errorf("SampleInto() = %s, want GGGGGGGG", dst)
	}
}

func TestCodons(t *testing.T) {
	tests := []struct {
		codon string
		stop  bool
		start bool
	}{
		{"TAA", true, false},
		{"TAG", true, false},
		{"TGA", true, false},
		{"ATG", false, true},
		{"TTA", false, false},
		{"AT", false, false},
	}
	for _, tt := range tests {
		if got := IsStop([]byte(tt.codon)); got != tt.stop {
			t.Errorf("IsStop(%s) = %v, want %v", tt.codon, got, tt.stop)
		}
		if got := IsStart([]byte(tt.codon)); got != tt.start {
			t.Errorf("IsStart(%s) = %v, want %v", tt.codon, got, tt.start)
		}
	}
}

func TestIndex(t *testing.T) {
	for i := 0; i < len(Alphabet); i++ {
		if got := Index(Alphabet[i]); got != i {
			t.Errorf("Index(%c) = %d, want %d", Alphabet[i], got, i)
		}
	}
	if got := Index('N'); got != -1 {
		t.Errorf("Index(N) = %d, want -1", got)
	}
}
