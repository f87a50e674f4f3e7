package validware

import (
	"errors"
	"fmt"
	"strings"
)

// Issue is a single raw validation failure as reported by a validation
// engine: where it happened, what went wrong, and an optional machine tag
// (for example "required" or "email").
type Issue struct {
	Location Location
	Message  string
	Type     string
}

// Issues is a collection of validation failures that implements error, so a
// failed parse can travel through ordinary error returns.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		tag := it.Type
		if tag == "" {
			tag = "invalid"
		}
		field := it.Location.String()
		if field == "" {
			field = "request"
		}
		fmt.Fprintf(b, "%s at %s", tag, field)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
