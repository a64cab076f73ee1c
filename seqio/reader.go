package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Handler receives one record. seq is only valid for the duration of the call.
type Handler func(id string, seq []byte) error

// Stream reads the corpus at path and calls handler for every record. Gzip
// input is detected from its magic bytes. A file whose first non-empty line
// starts with '>' is read as FASTA; otherwise every non-empty line is one
// record named "line_N".
func Stream(path string, handler Handler) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var reader io.Reader = br
	magic, _ := br.Peek(2)
	if len(magic) == 2 && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}

	return StreamReader(reader, handler)
}

// StreamReader is Stream over an already opened, uncompressed reader.
func StreamReader(r io.Reader, handler Handler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		fasta     bool
		decided   bool
		currentID string
		buffer    []byte
		lineNum   int
	)

	flush := func() error {
		if currentID == "" {
			return nil
		}
		if err := handler(currentID, buffer); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !decided {
			fasta = line[0] == '>'
			decided = true
		}

		if !fasta {
			id := fmt.Sprintf("line_%d", lineNum)
			if err := handler(id, bytes.ToUpper(line)); err != nil {
				return fmt.Errorf("handler error (%s): %w", id, err)
			}
			continue
		}

		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimPrefix(string(line), ">")
			buffer = buffer[:0]
			continue
		}
		buffer = append(buffer, bytes.ToUpper(line)...)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	if fasta {
		return flush()
	}
	return nil
}
