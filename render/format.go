package render

import (
	"errors"
	"strings"

	"pbc/book"
)

// maxFormatDepth bounds recursion over authored format trees. Legitimate
// books nest a handful of styles at most; hitting the limit means broken or
// hostile input, not a rendering bug.
const maxFormatDepth = 64

var ErrFormatTooDeep = errors.New("format tree nesting exceeds supported depth")

// FormatTree renders a formatting tree: escaped text leaves with explicit
// line break elements, styled nodes wrapped in their markup, children in
// declared order.
func (r *Renderer) FormatTree(s *Stream, t *book.FormatTree) error {
	return r.walkFormat(s, t, 0)
}

func (r *Renderer) walkFormat(s *Stream, t *book.FormatTree, depth int) error {
	if t == nil {
		return nil
	}
	if depth > maxFormatDepth {
		return ErrFormatTooDeep
	}

	switch t.Kind {
	case book.FormatText:
		for n, line := range strings.Split(t.Text, "\n") {
			if n > 0 {
				s.Tag("br")
			}
			s.Text(line)
		}
		return nil
	case book.FormatBase:
		for _, child := range t.Children {
			if err := r.walkFormat(s, child, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		name, attrs, err := styleOpenTag(t)
		if err != nil {
			return err
		}
		return s.PairTag(name, attrs, func() error {
			for _, child := range t.Children {
				if err := r.walkFormat(s, child, depth+1); err != nil {
					return err
				}
			}
			return nil
		})
	}
}
