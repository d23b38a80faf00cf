// Package render turns a loaded book into an HTML document body and splices
// it into a static page template. All markup goes through Stream, which owns
// escaping and tag pairing; rendering is a single synchronous pass.
package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"pbc/book"
)

// attr is a convenience constructor for ordered markup attributes.
func attr(key, value string) book.Attr {
	return book.Attr{Key: key, Value: value}
}

// Stream writes markup to the underlying writer. The first write error is
// sticky and reported via Err; emission calls after a failure are no-ops so
// rendering code stays free of error plumbing on every tag.
type Stream struct {
	w   io.Writer
	err error
}

func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Err reports the first error encountered while writing.
func (s *Stream) Err() error {
	return s.err
}

func (s *Stream) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

// normalizeAttrKey maps internal attribute identifiers to their markup
// spelling: "clazz" avoids the reserved word, underscores become hyphens
// (data_string -> data-string).
func normalizeAttrKey(key string) string {
	if key == "clazz" {
		return "class"
	}
	return strings.ReplaceAll(key, "_", "-")
}

func (s *Stream) writeAttrs(attrs []book.Attr) {
	for _, a := range attrs {
		s.write(" ")
		s.write(normalizeAttrKey(a.Key))
		s.write(`="`)
		s.write(html.EscapeString(a.Value))
		s.write(`"`)
	}
}

// Tag emits a self-closing tag.
func (s *Stream) Tag(name string, attrs ...book.Attr) {
	s.write("<")
	s.write(name)
	s.writeAttrs(attrs)
	s.write(" />")
}

// OpenTag emits an opening tag. Prefer PairTag which guarantees the close.
func (s *Stream) OpenTag(name string, attrs ...book.Attr) {
	s.write("<")
	s.write(name)
	s.writeAttrs(attrs)
	s.write(">")
}

// CloseTag emits a closing tag.
func (s *Stream) CloseTag(name string) {
	s.write("</")
	s.write(name)
	s.write(">")
}

// Text emits escaped text content.
func (s *Stream) Text(txt string) {
	s.write(html.EscapeString(txt))
}

// PairTag runs body between the opening and closing tags. The closing tag is
// emitted even when body fails, so output nesting stays balanced on error
// paths that do not abort the whole document.
func (s *Stream) PairTag(name string, attrs []book.Attr, body func() error) error {
	s.OpenTag(name, attrs...)
	defer s.CloseTag(name)
	return body()
}

// PairTagIf wraps body in the tag only when cond holds, otherwise body runs
// with no wrapper.
func (s *Stream) PairTagIf(cond bool, name string, attrs []book.Attr, body func() error) error {
	if !cond {
		return body()
	}
	return s.PairTag(name, attrs, body)
}

// EmptyPairTag emits an open/close pair with no content.
func (s *Stream) EmptyPairTag(name string, attrs ...book.Attr) {
	s.OpenTag(name, attrs...)
	s.CloseTag(name)
}
