package book

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"
)

// Localizer resolves localization keys to display strings. The loader runs
// every authored text field through it before format parsing; a nil Localizer
// leaves keys untouched.
type Localizer interface {
	Localize(key string) (string, error)
}

type rawPatternOp struct {
	Signature string `yaml:"signature"`
	Direction string `yaml:"direction"`
	PerWorld  bool   `yaml:"per_world"`
}

// stringList accepts either a single scalar or a sequence of scalars.
type stringList []string

func (l *stringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*l = stringList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		*l = stringList(ss)
		return nil
	default:
		return fmt.Errorf("line %d: item_name must be a string or a list of strings", node.Line)
	}
}

// Pages stay loosely typed on purpose: unknown page kinds and their private
// fields must survive loading so the renderer can degrade gracefully.
type rawPage struct {
	Type       string         `yaml:"type"`
	Anchor     string         `yaml:"anchor"`
	Header     string         `yaml:"header"`
	Title      string         `yaml:"title"`
	Text       string         `yaml:"text"`
	URL        string         `yaml:"url"`
	LinkText   string         `yaml:"link_text"`
	ItemName   stringList     `yaml:"item_name"`
	Images     []string       `yaml:"images"`
	OutputName string         `yaml:"output_name"`
	Name       string         `yaml:"name"`
	Input      string         `yaml:"input"`
	Output     string         `yaml:"output"`
	Op         []rawPatternOp `yaml:"op"`
}

type rawEntry struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Advancement string      `yaml:"advancement"`
	Pages       []yaml.Node `yaml:"pages"`
}

type rawCategory struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Entries     []rawEntry `yaml:"entries"`
}

type rawBook struct {
	Name        string            `yaml:"name"`
	LandingText string            `yaml:"landing_text"`
	Macros      map[string]string `yaml:"macros"`
	Categories  []rawCategory     `yaml:"categories"`
}

type identityLocalizer struct{}

func (identityLocalizer) Localize(key string) (string, error) { return key, nil }

// loader carries localization and macro state through a single Load call.
type loader struct {
	loc    Localizer
	macros map[string]string
}

// Load decodes a merged book document. Authored format strings are localized
// and parsed here once, the returned model is ready for rendering and never
// mutated afterwards.
func Load(r io.Reader, loc Localizer) (*Book, error) {
	if loc == nil {
		loc = identityLocalizer{}
	}

	// We want to use only fields we defined, same as the configuration
	// loader. Page bodies are deferred through yaml.Node and decoded
	// leniently later, unknown page kinds keep their private fields.
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var raw rawBook
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("unable to decode book document: %w", err)
	}

	ld := &loader{loc: loc, macros: raw.Macros}

	b := &Book{}
	var err error
	if b.Name, err = ld.inline(raw.Name); err != nil {
		return nil, fmt.Errorf("book name: %w", err)
	}
	if b.LandingText, err = ld.block(raw.LandingText); err != nil {
		return nil, fmt.Errorf("book landing text: %w", err)
	}

	for _, rc := range raw.Categories {
		c, err := ld.category(rc)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", rc.ID, err)
		}
		b.Categories = append(b.Categories, c)
	}
	return b, nil
}

func (ld *loader) category(rc rawCategory) (Category, error) {
	if rc.ID == "" {
		return Category{}, fmt.Errorf("missing id")
	}
	c := Category{ID: rc.ID}
	var err error
	if c.Name, err = ld.inline(rc.Name); err != nil {
		return Category{}, fmt.Errorf("name: %w", err)
	}
	if c.Description, err = ld.block(rc.Description); err != nil {
		return Category{}, fmt.Errorf("description: %w", err)
	}
	for _, re := range rc.Entries {
		e, err := ld.entry(re)
		if err != nil {
			return Category{}, fmt.Errorf("entry %q: %w", re.ID, err)
		}
		c.Entries = append(c.Entries, e)
	}
	return c, nil
}

func (ld *loader) entry(re rawEntry) (Entry, error) {
	if re.ID == "" {
		return Entry{}, fmt.Errorf("missing id")
	}
	e := Entry{ID: re.ID, Advancement: re.Advancement}
	var err error
	if e.Name, err = ld.inline(re.Name); err != nil {
		return Entry{}, fmt.Errorf("name: %w", err)
	}
	for n, node := range re.Pages {
		p, err := ld.page(node)
		if err != nil {
			return Entry{}, fmt.Errorf("page %d: %w", n, err)
		}
		e.Pages = append(e.Pages, p)
	}
	return e, nil
}

func (ld *loader) page(node yaml.Node) (Page, error) {
	var rp rawPage
	if err := node.Decode(&rp); err != nil {
		return Page{}, err
	}
	if rp.Type == "" {
		return Page{}, fmt.Errorf("missing type")
	}

	p := Page{
		Kind:   rp.Type,
		Anchor: rp.Anchor,
	}

	var err error
	if p.Header, err = ld.display(rp.Header); err != nil {
		return Page{}, err
	}
	if p.Title, err = ld.display(rp.Title); err != nil {
		return Page{}, err
	}
	if rp.Text != "" {
		if p.Text, err = ld.block(rp.Text); err != nil {
			return Page{}, fmt.Errorf("text: %w", err)
		}
	}

	p.URL = rp.URL
	if p.LinkText, err = ld.display(rp.LinkText); err != nil {
		return Page{}, err
	}
	for _, name := range rp.ItemName {
		localized, err := ld.loc.Localize(name)
		if err != nil {
			return Page{}, err
		}
		p.ItemName = append(p.ItemName, localized)
	}
	for _, img := range rp.Images {
		loc, err := ParseResourceLocation(img)
		if err != nil {
			return Page{}, fmt.Errorf("image reference: %w", err)
		}
		p.Images = append(p.Images, loc)
	}
	if p.OutputName, err = ld.display(rp.OutputName); err != nil {
		return Page{}, err
	}
	if p.Name, err = ld.display(rp.Name); err != nil {
		return Page{}, err
	}
	p.Input, p.Output = rp.Input, rp.Output
	for _, op := range rp.Op {
		p.Ops = append(p.Ops, PatternOp{
			AngleSig:  op.Signature,
			Direction: op.Direction,
			PerWorld:  op.PerWorld,
		})
	}
	return p, nil
}

// display localizes a plain display string, no format codes involved.
func (ld *loader) display(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	return ld.loc.Localize(s)
}

// block localizes and parses a formatted text block.
func (ld *loader) block(s string) (*FormatTree, error) {
	if s == "" {
		return nil, nil
	}
	localized, err := ld.loc.Localize(s)
	if err != nil {
		return nil, err
	}
	return ParseFormat(localized, ld.macros)
}

// inline localizes and parses a single-line formatted string.
func (ld *loader) inline(s string) (*FormatTree, error) {
	if s == "" {
		return nil, nil
	}
	localized, err := ld.loc.Localize(s)
	if err != nil {
		return nil, err
	}
	return ParseInline(localized, ld.macros)
}
