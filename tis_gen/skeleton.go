// Package tis_gen builds synthetic sequences around a translation initiation
// site: positives carry a consensus motif and upstream start codons, negatives
// a downstream stop codon, and the remainder is filled from background base
// frequencies.
package tis_gen

// Placeholders for bases not yet chosen.
const (
	upstreamMark   = 'u'
	downstreamMark = 'd'
)

// Sequence is a synthetic sequence under construction. Its length is fixed at
// 2*length+3; stages only overwrite positions.
type Sequence []byte

func (s Sequence) String() string { return string(s) }

// Skeleton lays out length upstream placeholders, the start codon and length
// downstream placeholders.
func Skeleton(start []byte, length int) Sequence {
	seq := make(Sequence, 0, 2*length+len(start))
	for i := 0; i < length; i++ {
		seq = append(seq, upstreamMark)
	}
	seq = append(seq, start...)
	for i := 0; i < length; i++ {
		seq = append(seq, downstreamMark)
	}
	return seq
}

func isPlaceholder(b byte) bool {
	return b == upstreamMark || b == downstreamMark
}
