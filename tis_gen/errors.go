package tis_gen

import "fmt"

// ValidationError reports a generation parameter that is out of range. It is
// returned before any file is opened.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// Validate checks the sequence half-length and motif half-span.
func Validate(length, motifSpan int) error {
	if length <= 0 || length%3 != 0 {
		return &ValidationError{Field: "length", Value: length, Reason: "length must be a positive multiple of 3"}
	}
	if motifSpan < 0 {
		return &ValidationError{Field: "motif-span", Value: motifSpan, Reason: "must not be negative"}
	}
	if motifSpan > length {
		return &ValidationError{Field: "motif-span", Value: motifSpan, Reason: fmt.Sprintf("consensus does not fit in an upstream region of %d bases", length)}
	}
	if lo, hi := stopSlots(length, motifSpan); lo > hi {
		return &ValidationError{Field: "motif-span", Value: motifSpan, Reason: fmt.Sprintf("no downstream codon past the consensus for length %d", length)}
	}
	return nil
}
