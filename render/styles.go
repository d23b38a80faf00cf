package render

import (
	"fmt"
	"strings"

	"pbc/book"
)

// UnknownStyleError is fatal: an unrecognized style tag means the book data
// does not match the schema this renderer was built for.
type UnknownStyleError struct {
	Tag book.StyleTag
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown format style tag: %s", e.Tag)
}

// UnknownNamespaceError is fatal: an image referencing a namespace with no
// configured asset URL cannot be resolved.
type UnknownNamespaceError struct {
	Namespace string
}

func (e *UnknownNamespaceError) Error() string {
	return fmt.Sprintf("no asset URL configured for namespace %q", e.Namespace)
}

// styleOpenTag resolves a styled node to the element wrapping its children.
// Pure mapping from (tag, payload) to markup, the caller opens and closes.
func styleOpenTag(node *book.FormatTree) (string, []book.Attr, error) {
	switch node.Style {
	case book.StyleTagPara:
		return "p", node.Attrs, nil
	case book.StyleTagColor:
		return "span", []book.Attr{attr("style", "color: #"+node.Value)}, nil
	case book.StyleTagLink:
		link := node.Value
		if !strings.Contains(link, "://") {
			// local anchor: literal '#' inside the fragment is escaped as '@'
			link = "#" + strings.ReplaceAll(link, "#", "@")
		}
		return "a", []book.Attr{attr("href", link)}, nil
	case book.StyleTagTooltip:
		return "span", []book.Attr{attr("clazz", "has-tooltip"), attr("title", node.Value)}, nil
	case book.StyleTagCmdClick:
		return "span", []book.Attr{attr("clazz", "has-cmd_click"), attr("title", "When clicked, would execute: "+node.Value)}, nil
	case book.StyleTagObf:
		return "span", []book.Attr{attr("clazz", "obfuscated")}, nil
	case book.StyleTagBold:
		return "strong", nil, nil
	case book.StyleTagItalic:
		return "i", nil, nil
	case book.StyleTagStrikethrough:
		return "s", nil, nil
	case book.StyleTagUnderline:
		return "span", []book.Attr{attr("style", "text-decoration: underline")}, nil
	default:
		return "", nil, &UnknownStyleError{Tag: node.Style}
	}
}
