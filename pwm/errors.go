package pwm

import "fmt"

// FormatError reports a weight-matrix file that does not have the expected shape.
type FormatError struct {
	Path   string
	Line   int // 0 when the problem concerns the whole file
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, msg)
}

func (e *FormatError) Unwrap() error { return e.Err }
