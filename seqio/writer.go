// Package seqio writes and reads the synthetic sequence corpora, either one
// sequence per line or as FASTA, optionally gzip compressed.
package seqio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// Output formats.
const (
	Lines = "lines"
	FASTA = "fasta"
)

// FastaWidth is the line width used when wrapping FASTA records.
const FastaWidth = 60

// ValidFormat reports whether format is one of Lines or FASTA.
func ValidFormat(format string) bool {
	return format == Lines || format == FASTA
}

// Writer appends sequences to a corpus.
type Writer struct {
	path   string
	format string
	prefix string
	count  int

	buf *bufio.Writer
	gz  *gzip.Writer
	fh  *os.File
}

// NewWriter wraps w. prefix names FASTA records (">prefix_1", ">prefix_2", ...).
func NewWriter(w io.Writer, format, prefix string) (*Writer, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Writer{format: format, prefix: prefix, buf: bufio.NewWriter(w)}, nil
}

// Create truncates or creates the corpus at path. With gz set, ".gz" is
// appended to the path and the output is compressed.
func Create(path, format, prefix string, gz bool) (*Writer, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if gz {
		path += ".gz"
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := &Writer{path: path, format: format, prefix: prefix, fh: fh}
	if gz {
		w.gz = gzip.NewWriter(fh)
		w.buf = bufio.NewWriter(w.gz)
	} else {
		w.buf = bufio.NewWriter(fh)
	}
	return w, nil
}

// Path returns the file written by a Writer from Create, including any ".gz".
func (w *Writer) Path() string { return w.path }

// Count returns the number of sequences written so far.
func (w *Writer) Count() int { return w.count }

// WriteSequence appends one newline terminated record.
func (w *Writer) WriteSequence(seq []byte) error {
	w.count++
	if w.format == FASTA {
		if _, err := fmt.Fprintf(w.buf, ">%s_%d\n", w.prefix, w.count); err != nil {
			return err
		}
		_, err := w.buf.WriteString(WrapFasta(seq, FastaWidth))
		return err
	}
	if _, err := w.buf.Write(seq); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// Close flushes buffered output and closes the gzip stream and file, if any.
func (w *Writer) Close() error {
	err := w.buf.Flush()
	if w.gz != nil {
		if cerr := w.gz.Close(); err == nil {
			err = cerr
		}
	}
	if w.fh != nil {
		if cerr := w.fh.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// WrapFasta breaks seq every width characters, each line newline terminated.
func WrapFasta(seq []byte, width int) string {
	var out []byte
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out = append(out, seq[i:end]...)
		out = append(out, '\n')
	}
	return string(out)
}
