package book

import "strings"

// Inline text decoration recognized by the format walker. The shape of the
// style payload is determined entirely by the tag: color carries a hex
// string, link a URL or local anchor, tooltip and cmd_click a display string,
// para an ordered attribute list, the rest carry nothing.
// ENUM(base, para, color, link, tooltip, cmd_click, obf, bold, italic, strikethrough, underline)
type StyleTag int

// Attr is a single markup attribute. Order of attributes is preserved all the
// way to the output, so they are kept as a list and not a map.
type Attr struct {
	Key   string
	Value string
}

// FormatKind discriminates FormatTree node variants.
type FormatKind int

const (
	// FormatText is a leaf carrying plain text, newlines included.
	FormatText FormatKind = iota
	// FormatBase groups children without any wrapping markup.
	FormatBase
	// FormatStyled wraps children in the markup of its style tag.
	FormatStyled
)

// FormatTree is one node of the recursive inline formatting tree. Trees are
// acyclic by construction and immutable once built.
type FormatTree struct {
	Kind     FormatKind
	Text     string   // FormatText only
	Style    StyleTag // FormatStyled only
	Value    string   // style payload for color, link, tooltip, cmd_click
	Attrs    []Attr   // style payload for para
	Children []*FormatTree
}

// TextNode returns a leaf holding txt.
func TextNode(txt string) *FormatTree {
	return &FormatTree{Kind: FormatText, Text: txt}
}

// BaseNode returns an unstyled grouping node over children.
func BaseNode(children ...*FormatTree) *FormatTree {
	return &FormatTree{Kind: FormatBase, Children: children}
}

// StyledNode returns a styled node with the given payload over children.
func StyledNode(tag StyleTag, value string, children ...*FormatTree) *FormatTree {
	return &FormatTree{Kind: FormatStyled, Style: tag, Value: value, Children: children}
}

// PlainText flattens the tree into its unstyled text content. Used where
// markup is not wanted, e.g. table of contents links.
func (t *FormatTree) PlainText() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	t.appendPlainText(&sb)
	return sb.String()
}

func (t *FormatTree) appendPlainText(sb *strings.Builder) {
	if t.Kind == FormatText {
		sb.WriteString(t.Text)
		return
	}
	for _, child := range t.Children {
		child.appendPlainText(sb)
	}
}
