package pwm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"synthetic_tis/bases"
)

// Load reads the weight matrix at path for a motif of half-span l.
func Load(path string, l int) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weight matrix: %w", err)
	}
	defer func() { _ = fh.Close() }()

	return Read(fh, path, l)
}

// Read parses a weight matrix from r. name is only used in error messages.
//
// The input has four whitespace separated rows, one per nucleotide in any
// order, each holding the nucleotide letter followed by 2*l weights. Column
// k of the weights is stored under Positions(l)[k-1]. Blank lines are skipped
// and columns past 2*l are ignored.
func Read(r io.Reader, name string, l int) (Table, error) {
	var rows [4][]float64
	seen := 0

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		seen++
		if seen > 4 {
			return nil, &FormatError{Path: name, Line: ln, Reason: "there should be 4 rows, one for each nucleotide"}
		}

		idx := -1
		if len(f[0]) == 1 {
			idx = bases.Index(f[0][0])
		}
		if idx < 0 {
			return nil, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("row label %q is not one of A, C, G, T", f[0])}
		}
		if rows[idx] != nil {
			return nil, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("duplicate row for %s", f[0])}
		}
		if len(f)-1 < 2*l {
			return nil, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("expected %d weights, found %d", 2*l, len(f)-1)}
		}

		weights := make([]float64, 2*l)
		for k := range weights {
			v, err := strconv.ParseFloat(f[k+1], 64)
			if err != nil {
				return nil, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("bad weight in column %d", k+1), Err: err}
			}
			if v < 0 {
				return nil, &FormatError{Path: name, Line: ln, Reason: fmt.Sprintf("negative weight %v in column %d", v, k+1)}
			}
			weights[k] = v
		}
		rows[idx] = weights
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weight matrix: %w", err)
	}
	if seen != 4 {
		return nil, &FormatError{Path: name, Reason: fmt.Sprintf("there should be 4 rows, one for each nucleotide, found %d", seen)}
	}

	// rows are already in A, C, G, T order
	position := Positions(l)
	table := make(Table, 2*l)
	for k, off := range position {
		table[off] = bases.Weights{rows[0][k], rows[1][k], rows[2][k], rows[3][k]}
	}
	return table, nil
}
