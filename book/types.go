// Package book holds the validated in-memory model of a patchwork book:
// categories, entries, pages and the inline formatting trees of their text.
// Values are immutable once loaded, rendering never mutates them.
package book

import (
	"fmt"
	"strings"
)

// ResourceLocation is a namespaced identifier in the "namespace:path" form.
type ResourceLocation struct {
	Namespace string
	Path      string
}

// ParseResourceLocation splits "namespace:path". Both parts must be present.
func ParseResourceLocation(s string) (ResourceLocation, error) {
	ns, path, ok := strings.Cut(s, ":")
	if !ok || ns == "" || path == "" {
		return ResourceLocation{}, fmt.Errorf("malformed resource location %q", s)
	}
	return ResourceLocation{Namespace: ns, Path: path}, nil
}

func (r ResourceLocation) String() string {
	return r.Namespace + ":" + r.Path
}

// Page kinds the renderer knows how to process. Anything else falls back to a
// visible placeholder instead of failing the whole book.
const (
	KindText               = "patchouli:text"
	KindEmpty              = "patchouli:empty"
	KindLink               = "patchouli:link"
	KindSpotlight          = "patchouli:spotlight"
	KindCrafting           = "patchouli:crafting"
	KindImage              = "patchouli:image"
	KindCraftingMulti      = "hexcasting:crafting_multi"
	KindBrainsweep         = "hexcasting:brainsweep"
	KindPattern            = "hexcasting:pattern"
	KindManualPattern      = "hexcasting:manual_pattern"
	KindManualPatternNosig = "hexcasting:manual_pattern_nosig"
)

// PatternOp is a single pattern operation drawn by the in-page visualizer.
type PatternOp struct {
	AngleSig  string // angle signature, e.g. "qaq"
	Direction string // compass direction the drawing starts toward
	PerWorld  bool   // pattern shape differs per world
}

// Page is one content block of an entry, a union tagged by Kind. Only the
// fields the kind requires are populated, everything else stays zero.
type Page struct {
	Kind string

	// shared optional fields
	Anchor string
	Header string
	Title  string
	Text   *FormatTree

	// link
	URL      string
	LinkText string

	// spotlight, crafting, crafting_multi
	ItemName []string

	// image
	Images []ResourceLocation

	// brainsweep
	OutputName string

	// pattern family
	Name   string
	Input  string
	Output string
	Ops    []PatternOp
}

// Entry is a named, anchorable unit composed of ordered pages. ID doubles as
// the DOM anchor and the cross-reference key.
type Entry struct {
	ID          string
	Name        *FormatTree
	Advancement string // advancement key gating the entry behind a spoiler, empty when ungated
	Pages       []Page
}

// Category is a named grouping of entries.
type Category struct {
	ID          string
	Name        *FormatTree
	Description *FormatTree
	Entries     []Entry
}

// Book is the top-level document.
type Book struct {
	Name        *FormatTree
	LandingText *FormatTree
	Categories  []Category
}
