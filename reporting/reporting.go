// Package reporting carries verification errors together with the exact
// location of the offending value inside an instance graph.
package reporting

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Segment is one addressing step from the root of a graph towards a value:
// either a field name or a position inside an ordered sequence field.
type Segment interface {
	isSegment()
}

// NameSegment addresses a field by its schema name.
type NameSegment struct {
	Name string
}

func (NameSegment) isSegment() {}

// IndexSegment addresses a position inside an ordered sequence field.
type IndexSegment struct {
	Index int
}

func (IndexSegment) isSegment() {}

// Error describes a single violated invariant and the path to the value that
// violates it. Segments are prepended as the error propagates outward, so a
// fully propagated error reads root-to-leaf.
type Error struct {
	cause string

	// Stored leaf-to-root so PrependSegment is a constant-time append.
	reversed []Segment
}

// NewError builds an error with an empty path.
func NewError(cause string) *Error {
	return &Error{cause: cause}
}

// NewErrorf formats a cause and builds an error with an empty path.
func NewErrorf(format string, args ...any) *Error {
	return NewError(fmt.Sprintf(format, args...))
}

// Cause returns the human-readable description of the violation.
func (e *Error) Cause() string {
	return e.cause
}

// PrependSegment adds one leading segment to the error's path. Earlier
// prepends keep their relative order.
func (e *Error) PrependSegment(segment Segment) {
	e.reversed = append(e.reversed, segment)
}

// PathSegments returns the path root-to-leaf as a fresh slice.
func (e *Error) PathSegments() []Segment {
	segments := make([]Segment, len(e.reversed))
	for i, segment := range e.reversed {
		segments[len(segments)-1-i] = segment
	}
	return segments
}

// Error formats the violation with its JSON path.
func (e *Error) Error() string {
	if e == nil {
		return "verification <nil>"
	}
	path := JSONPath(e.PathSegments())
	if path == "" {
		return e.cause
	}
	return fmt.Sprintf("%s at %s", e.cause, path)
}

// List is an error wrapping one or more verification errors.
type List []*Error

// Error returns a compact summary of the verification errors.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no verification errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z_0-9]*$`)

// JSONPath renders segments as a JSON path: the first name bare, later names
// dotted, names that are not plain identifiers bracket-quoted, indices
// bracketed.
func JSONPath(segments []Segment) string {
	var b strings.Builder
	for i, segment := range segments {
		switch s := segment.(type) {
		case NameSegment:
			if identifierRe.MatchString(s.Name) {
				if i > 0 {
					b.WriteByte('.')
				}
				b.WriteString(s.Name)
			} else {
				b.WriteString(`["`)
				b.WriteString(escapeJSONName(s.Name))
				b.WriteString(`"]`)
			}
		case IndexSegment:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}

// RelativeXPath renders segments as an XPath without the leading slash, so
// the result can be embedded in a report with a document prefix.
func RelativeXPath(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch s := segment.(type) {
		case NameSegment:
			parts = append(parts, escapeXPathName(s.Name))
		case IndexSegment:
			parts = append(parts, "*["+strconv.Itoa(s.Index)+"]")
		}
	}
	return strings.Join(parts, "/")
}

func escapeJSONName(name string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\t", `\t`,
		"\b", `\b`,
		"\n", `\n`,
		"\r", `\r`,
		"\f", `\f`,
	)
	return replacer.Replace(name)
}

func escapeXPathName(name string) string {
	// Ampersand and angle brackets cannot occur in valid field names, but
	// escaping them keeps bug reports readable.
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"/", "&#47;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(name)
}
