package profile

import (
	"sort"
)

// AllKmers returns every k-length string over A, C, G and T in lexical order.
func AllKmers(k int) []string {
	var kmers []string

	var build func(prefix string, depth int)
	build = func(prefix string, depth int) {
		if depth == 0 {
			kmers = append(kmers, prefix)
			return
		}
		for _, base := range "ACGT" {
			build(prefix+string(base), depth-1)
		}
	}
	build("", k)
	return kmers
}

// CodonCount is one row of a codon usage table.
type CodonCount struct {
	Codon  string
	Count  int
	RelPct float64
}

// CodonUsage lists all 64 codons with their downstream in-frame counts,
// sorted by "freq" (descending count) or "alpha".
func (r *Report) CodonUsage(sortBy string) []CodonCount {
	total := 0
	for _, c := range r.Codons {
		total += c
	}

	var result []CodonCount
	for _, codon := range AllKmers(3) {
		count := r.Codons[codon]
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		result = append(result, CodonCount{codon, count, pct})
	}

	if sortBy == "freq" {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Count > result[j].Count
		})
	}
	return result
}
