package render

import (
	"pbc/book"
)

// Renderer holds the read-only state a single render pass needs: asset base
// URLs keyed by namespace, entry ids suppressed from output, and advancement
// keys whose entries render redacted. Blacklist and Spoilers are filled while
// the template is scanned, before Book runs; rendering never mutates them.
type Renderer struct {
	Assets    map[string]string
	Blacklist map[string]struct{}
	Spoilers  map[string]struct{}

	// Reveal disables spoiler redaction, gated content renders in the clear.
	Reveal bool
}

func NewRenderer(assets map[string]string) *Renderer {
	return &Renderer{
		Assets:    assets,
		Blacklist: make(map[string]struct{}),
		Spoilers:  make(map[string]struct{}),
	}
}

// AddBlacklist suppresses entries by id.
func (r *Renderer) AddBlacklist(ids ...string) {
	for _, id := range ids {
		r.Blacklist[id] = struct{}{}
	}
}

// AddSpoilers marks advancement keys whose entries must render redacted.
func (r *Renderer) AddSpoilers(keys ...string) {
	for _, key := range keys {
		r.Spoilers[key] = struct{}{}
	}
}

func (r *Renderer) blacklisted(id string) bool {
	_, ok := r.Blacklist[id]
	return ok
}

// entrySpoilered reports whether the entry is gated behind a spoilered
// advancement. Entries with no advancement are always visible.
func (r *Renderer) entrySpoilered(e book.Entry) bool {
	if r.Reveal || e.Advancement == "" {
		return false
	}
	_, ok := r.Spoilers[e.Advancement]
	return ok
}

// categorySpoilered holds when every entry in the category is spoilered.
func (r *Renderer) categorySpoilered(c book.Category) bool {
	for _, e := range c.Entries {
		if !r.entrySpoilered(e) {
			return false
		}
	}
	return true
}

func (r *Renderer) entry(s *Stream, e book.Entry) error {
	return s.PairTag("div", []book.Attr{attr("id", e.ID)}, func() error {
		return s.PairTagIf(r.entrySpoilered(e), "div", []book.Attr{attr("clazz", "spoilered")}, func() error {
			if err := s.PairTag("h3", []book.Attr{attr("clazz", "entry-title page-header")}, func() error {
				if err := r.FormatTree(s, e.Name); err != nil {
					return err
				}
				anchorTOC(s)
				permalink(s, "#"+e.ID)
				return nil
			}); err != nil {
				return err
			}
			for _, p := range e.Pages {
				if err := r.Page(s, e.ID, p); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (r *Renderer) category(s *Stream, c book.Category) error {
	return s.PairTag("section", []book.Attr{attr("id", c.ID)}, func() error {
		err := s.PairTagIf(r.categorySpoilered(c), "div", []book.Attr{attr("clazz", "spoilered")}, func() error {
			if err := s.PairTag("h2", []book.Attr{attr("clazz", "category-title page-header")}, func() error {
				if err := r.FormatTree(s, c.Name); err != nil {
					return err
				}
				anchorTOC(s)
				permalink(s, "#"+c.ID)
				return nil
			}); err != nil {
				return err
			}
			return r.FormatTree(s, c.Description)
		})
		if err != nil {
			return err
		}
		for _, e := range c.Entries {
			if r.blacklisted(e.ID) {
				continue
			}
			if err := r.entry(s, e); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Renderer) toc(s *Stream, b *book.Book) error {
	err := s.PairTag("h2", []book.Attr{attr("id", "table-of-contents"), attr("clazz", "page-header")}, func() error {
		s.Text("Table of Contents")
		if err := s.PairTag("a", []book.Attr{
			attr("href", "javascript:void(0)"),
			attr("clazz", "permalink toggle-link small"),
			attr("data_target", "toc-category"),
			attr("title", "Toggle all"),
		}, func() error {
			s.EmptyPairTag("i", attr("clazz", "bi bi-list-nested"))
			return nil
		}); err != nil {
			return err
		}
		permalink(s, "#table-of-contents")
		return nil
	})
	if err != nil {
		return err
	}

	for _, c := range b.Categories {
		err := s.PairTag("details", []book.Attr{attr("clazz", "toc-category")}, func() error {
			if err := s.PairTag("summary", nil, func() error {
				attrs := []book.Attr{attr("href", "#"+c.ID)}
				if r.categorySpoilered(c) {
					attrs = append(attrs, attr("clazz", "spoilered"))
				}
				return s.PairTag("a", attrs, func() error {
					s.Text(c.Name.PlainText())
					return nil
				})
			}); err != nil {
				return err
			}
			return s.PairTag("ul", nil, func() error {
				for _, e := range c.Entries {
					// blacklisted entries get no anchor target, so they
					// are kept out of the listing as well
					if r.blacklisted(e.ID) {
						continue
					}
					err := s.PairTag("li", nil, func() error {
						attrs := []book.Attr{attr("href", "#"+e.ID)}
						if r.entrySpoilered(e) {
							attrs = append(attrs, attr("clazz", "spoilered"))
						}
						return s.PairTag("a", attrs, func() error {
							s.Text(e.Name.PlainText())
							return nil
						})
					})
					if err != nil {
						return err
					}
				}
				return nil
			})
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Book renders the complete document body: header with title and landing
// text, table of contents, then every category in declared order.
func (r *Renderer) Book(s *Stream, b *book.Book) error {
	err := s.PairTag("div", []book.Attr{attr("clazz", "container")}, func() error {
		err := s.PairTag("header", []book.Attr{attr("clazz", "jumbotron")}, func() error {
			if err := s.PairTag("h1", []book.Attr{attr("clazz", "book-title")}, func() error {
				return r.FormatTree(s, b.Name)
			}); err != nil {
				return err
			}
			return r.FormatTree(s, b.LandingText)
		})
		if err != nil {
			return err
		}
		if err := s.PairTag("nav", nil, func() error {
			return r.toc(s, b)
		}); err != nil {
			return err
		}
		return s.PairTag("main", []book.Attr{attr("clazz", "book-body")}, func() error {
			for _, c := range b.Categories {
				if err := r.category(s, c); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	return s.Err()
}
