package render

import (
	"strconv"
	"strings"

	"pbc/book"
)

func anchorTOC(s *Stream) {
	_ = s.PairTag("a", []book.Attr{
		attr("href", "#table-of-contents"),
		attr("clazz", "permalink small"),
		attr("title", "Jump to top"),
	}, func() error {
		s.EmptyPairTag("i", attr("clazz", "bi bi-box-arrow-up"))
		return nil
	})
}

func permalink(s *Stream, link string) {
	_ = s.PairTag("a", []book.Attr{
		attr("href", link),
		attr("clazz", "permalink small"),
		attr("title", "Permalink"),
	}, func() error {
		s.EmptyPairTag("i", attr("clazz", "bi bi-link-45deg"))
		return nil
	})
}

// Page renders one content block. Unknown kinds degrade to a visible
// placeholder so a single malformed page does not take the whole book down;
// unresolvable image namespaces and style tags are fatal instead.
func (r *Renderer) Page(s *Stream, pageID string, p book.Page) error {
	var anchorID string
	if p.Anchor != "" {
		anchorID = pageID + "@" + p.Anchor
	}

	err := s.PairTagIf(anchorID != "", "div", []book.Attr{attr("id", anchorID)}, func() error {
		if p.Header != "" || p.Title != "" {
			header := p.Header
			if header == "" {
				header = p.Title
			}
			if err := s.PairTag("h4", nil, func() error {
				s.Text(header)
				if anchorID != "" {
					permalink(s, "#"+anchorID)
				}
				return nil
			}); err != nil {
				return err
			}
		}
		return r.pageBody(s, anchorID, p)
	})
	if err != nil {
		return err
	}
	s.Tag("br")
	return s.Err()
}

func (r *Renderer) pageBody(s *Stream, anchorID string, p book.Page) error {
	switch p.Kind {
	case book.KindText:
		return r.FormatTree(s, p.Text)

	case book.KindEmpty:
		return nil

	case book.KindLink:
		if err := r.FormatTree(s, p.Text); err != nil {
			return err
		}
		return s.PairTag("h4", []book.Attr{attr("clazz", "linkout")}, func() error {
			return s.PairTag("a", []book.Attr{attr("href", p.URL)}, func() error {
				s.Text(p.LinkText)
				return nil
			})
		})

	case book.KindSpotlight:
		if err := s.PairTag("h4", []book.Attr{attr("clazz", "spotlight-title page-header")}, func() error {
			if len(p.ItemName) > 0 {
				s.Text(p.ItemName[0])
			}
			return nil
		}); err != nil {
			return err
		}
		return r.FormatTree(s, p.Text)

	case book.KindCrafting:
		if err := s.PairTag("blockquote", []book.Attr{attr("clazz", "crafting-info")}, func() error {
			s.Text("Depicted in the book: The crafting recipe for the ")
			for n, name := range p.ItemName {
				if n > 0 {
					s.Text(" and ")
				}
				if err := s.PairTag("code", nil, func() error {
					s.Text(name)
					return nil
				}); err != nil {
					return err
				}
			}
			s.Text(".")
			return nil
		}); err != nil {
			return err
		}
		return r.FormatTree(s, p.Text)

	case book.KindCraftingMulti:
		// unlike the plain crafting callout the list is comma separated
		// with no final "and", keep the two grammars distinct
		if err := s.PairTag("blockquote", []book.Attr{attr("clazz", "crafting-info")}, func() error {
			s.Text("Depicted in the book: Several crafting recipes, for the ")
			for n, name := range p.ItemName {
				if n > 0 {
					s.Text(", ")
				}
				if err := s.PairTag("code", nil, func() error {
					s.Text(name)
					return nil
				}); err != nil {
					return err
				}
			}
			s.Text(".")
			return nil
		}); err != nil {
			return err
		}
		return r.FormatTree(s, p.Text)

	case book.KindBrainsweep:
		if err := s.PairTag("blockquote", []book.Attr{attr("clazz", "crafting-info")}, func() error {
			s.Text("Depicted in the book: A mind-flaying recipe producing the ")
			if err := s.PairTag("code", nil, func() error {
				s.Text(p.OutputName)
				return nil
			}); err != nil {
				return err
			}
			s.Text(".")
			return nil
		}); err != nil {
			return err
		}
		return r.FormatTree(s, p.Text)

	case book.KindImage:
		if err := s.PairTag("p", []book.Attr{attr("clazz", "img-wrapper")}, func() error {
			for _, img := range p.Images {
				base, ok := r.Assets[img.Namespace]
				if !ok {
					return &UnknownNamespaceError{Namespace: img.Namespace}
				}
				s.EmptyPairTag("img", attr("src", base+"/assets/"+img.Namespace+"/"+img.Path))
			}
			return nil
		}); err != nil {
			return err
		}
		return r.FormatTree(s, p.Text)

	case book.KindPattern, book.KindManualPattern, book.KindManualPatternNosig:
		if p.Name != "" {
			if err := s.PairTag("h4", []book.Attr{attr("clazz", "pattern-title")}, func() error {
				pipe := strings.TrimSpace(p.Input + " → " + p.Output)
				var suffix string
				if p.Input != "" || p.Output != "" {
					suffix = " (" + pipe + ")"
				}
				s.Text(p.Name + suffix)
				if anchorID != "" {
					permalink(s, "#"+anchorID)
				}
				return nil
			}); err != nil {
				return err
			}
		}
		if err := s.PairTag("details", []book.Attr{attr("clazz", "spell-collapsible")}, func() error {
			s.EmptyPairTag("summary", attr("clazz", "collapse-spell"))
			for _, op := range p.Ops {
				if err := s.PairTag("canvas", []book.Attr{
					attr("clazz", "spell-viz"),
					attr("width", "216"),
					attr("height", "216"),
					attr("data_string", op.AngleSig),
					attr("data_start", strings.ToLower(op.Direction)),
					attr("data_per_world", strconv.FormatBool(op.PerWorld)),
				}, func() error {
					s.Text("Your browser does not support visualizing patterns. Pattern code: " + op.AngleSig)
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
		// unlike other kinds the text block is not optional here
		return r.FormatTree(s, p.Text)

	default:
		if err := s.PairTag("p", []book.Attr{attr("clazz", "todo-note")}, func() error {
			s.Text("TODO: Missing processor for type: " + p.Kind)
			return nil
		}); err != nil {
			return err
		}
		return r.FormatTree(s, p.Text)
	}
}
