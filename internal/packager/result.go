package packager

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Status classifies the outcome of one item.
type Status int

const (
	// StatusCopied means the item was written to the destination.
	StatusCopied Status = iota
	// StatusNotFound means a source file (or manifest entry) is missing.
	StatusNotFound
	// StatusIOError means reading or writing failed for another reason.
	StatusIOError
	// StatusInvalid means the name cannot map to a path inside the source root.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusNotFound:
		return "not found"
	case StatusIOError:
		return "io error"
	case StatusInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of packaging a single component.
type Result struct {
	Name   string
	Source string // source path, or the missing file for StatusNotFound
	Dest   string
	Status Status
	Bytes  int64
	Err    error
}

// OK reports whether the item was written.
func (r Result) OK() bool { return r.Status == StatusCopied }

// classify maps an item error onto a Status. Only a source that does not
// exist counts as not found; every other failure is an I/O error.
func classify(err error) Status {
	if err == nil {
		return StatusCopied
	}
	var se *sourceError
	if errors.As(err, &se) && errors.Is(se.Err, fs.ErrNotExist) {
		return StatusNotFound
	}
	return StatusIOError
}

// Summary lists per-item results in input order.
type Summary struct {
	Action  string // past-tense verb for the final line, e.g. "Copied"
	Results []Result
}

// Succeeded returns the number of items written.
func (s *Summary) Succeeded() int { return s.count(StatusCopied) }

// Failed returns the number of items not written, for any reason.
func (s *Summary) Failed() int { return len(s.Results) - s.Succeeded() }

// NotFound returns the number of items with a missing source.
func (s *Summary) NotFound() int { return s.count(StatusNotFound) }

// IOErrors returns the number of items that failed with an I/O error.
func (s *Summary) IOErrors() int { return s.count(StatusIOError) }

// Invalid returns the number of items rejected before any I/O.
func (s *Summary) Invalid() int { return s.count(StatusInvalid) }

func (s *Summary) count(status Status) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Print writes one line per item followed by a single summary line.
func (s *Summary) Print(w io.Writer) {
	for _, r := range s.Results {
		switch r.Status {
		case StatusCopied:
			fmt.Fprintf(w, "  ✓ %s\n", r.Name)
		case StatusNotFound:
			if r.Source == "" {
				fmt.Fprintf(w, "  ✗ %s: %v\n", r.Name, r.Err)
				continue
			}
			fmt.Fprintf(w, "  ✗ %s: not found (%s)\n", r.Name, r.Source)
		default:
			fmt.Fprintf(w, "  ✗ %s: %s: %v\n", r.Name, r.Status, r.Err)
		}
	}

	action := s.Action
	if action == "" {
		action = "Packaged"
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d of %d %s (%d not found, %d failed).\n",
		action, s.Succeeded(), len(s.Results), pluralize(len(s.Results)),
		s.NotFound(), s.IOErrors()+s.Invalid())
}

func pluralize(n int) string {
	if n == 1 {
		return "component"
	}
	return "components"
}
