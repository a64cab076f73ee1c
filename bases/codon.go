package bases

import "bytes"

// Start is the translation start codon.
var Start = []byte("ATG")

// Stops lists the three stop codons.
var Stops = [][]byte{
	[]byte("TAA"),
	[]byte("TAG"),
	[]byte("TGA"),
}

// IsStop reports whether codon is one of TAA, TAG or TGA.
func IsStop(codon []byte) bool {
	for _, stop := range Stops {
		if bytes.Equal(codon, stop) {
			return true
		}
	}
	return false
}

// IsStart reports whether codon is ATG.
func IsStart(codon []byte) bool {
	return bytes.Equal(codon, Start)
}
