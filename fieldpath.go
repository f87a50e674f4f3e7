package validware

import (
	"strconv"
	"strings"
)

// Source categories a Location may start with. They mirror the places a web
// framework pulls request values from.
const (
	InBody   = "body"
	InQuery  = "query"
	InPath   = "path"
	InHeader = "header"
	InCookie = "cookie"
)

// Segment is one element of a Location: either a field name or a non-negative
// array index.
type Segment struct {
	name    string
	index   int
	isIndex bool
}

// Key returns a field-name segment.
func Key(name string) Segment { return Segment{name: name} }

// Index returns an array-index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether the segment is an array index.
func (s Segment) IsIndex() bool { return s.isIndex }

// Name returns the field name for key segments; empty for index segments.
func (s Segment) Name() string { return s.name }

// Int returns the index for index segments; zero for key segments.
func (s Segment) Int() int { return s.index }

// Location is the ordered path to the request value a validation failure
// refers to. The first segment may be a source category such as InBody or
// InQuery.
type Location []Segment

// String renders the location as a dotted field path. Index segments merge
// into the preceding component as a bracketed suffix (users[0].email). A
// leading InBody category is dropped because the request body is the implied
// context; every other category stays as the first component exactly once
// (query.page, header.custom-header). An index with no preceding component
// renders as a bare bracket ([0].name).
func (l Location) String() string {
	parts := make([]string, 0, len(l))
	for _, seg := range l {
		if seg.isIndex {
			suffix := "[" + strconv.Itoa(seg.index) + "]"
			if len(parts) == 0 {
				parts = append(parts, suffix)
				continue
			}
			parts[len(parts)-1] += suffix
			continue
		}
		if seg.name == InBody && len(parts) == 0 {
			continue
		}
		parts = append(parts, seg.name)
	}
	return strings.Join(parts, ".")
}

// ParsePointer converts an RFC 6901 JSON Pointer such as "/body/users/0/email"
// into a Location. Tokens made of digits become index segments; "~1" and "~0"
// unescape to "/" and "~".
func ParsePointer(p string) Location {
	if p == "" || p == "/" {
		return nil
	}
	var loc Location
	for _, tok := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		if tok == "" {
			continue
		}
		if isDigits(tok) {
			n, _ := strconv.Atoi(tok)
			loc = append(loc, Index(n))
			continue
		}
		tok = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")
		loc = append(loc, Key(tok))
	}
	return loc
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
