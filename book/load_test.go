package book

import (
	"strings"
	"testing"
)

const testBookYAML = `
name: Test Book
landing_text: Welcome to $(l)testing$()
macros:
  $(action): $(o)
categories:
  - id: cat1
    name: First Category
    description: About $(action)things$().
    entries:
      - id: e1
        name: Entry One
        advancement: adv1
        pages:
          - type: patchouli:text
            text: Hello world
          - type: patchouli:crafting
            item_name:
              - Stick
              - Stone
            text: Craft it
          - type: patchouli:spotlight
            item_name: Lonely Item
          - type: hexcasting:pattern
            name: Spell
            anchor: spell
            input: any
            output: entity
            op:
              - signature: aqweds
                direction: NORTH_EAST
                per_world: true
          - type: patchouli:image
            images:
              - hexcasting:textures/gui/example.png
          - type: mod:custom_widget
      - id: e2
        name: Entry Two
        pages:
          - type: patchouli:empty
`

func loadTestBook(t *testing.T) *Book {
	t.Helper()
	b, err := Load(strings.NewReader(testBookYAML), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return b
}

func TestLoad_Structure(t *testing.T) {
	b := loadTestBook(t)

	if got := b.Name.PlainText(); got != "Test Book" {
		t.Errorf("book name = %q, want %q", got, "Test Book")
	}
	if got := b.LandingText.PlainText(); got != "Welcome to testing" {
		t.Errorf("landing text = %q, want %q", got, "Welcome to testing")
	}
	if len(b.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(b.Categories))
	}

	c := b.Categories[0]
	if c.ID != "cat1" {
		t.Errorf("category id = %q, want %q", c.ID, "cat1")
	}
	// book macro $(action) resolves to italics, plain text stays readable
	if got := c.Description.PlainText(); got != "About things." {
		t.Errorf("category description = %q, want %q", got, "About things.")
	}
	if len(c.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(c.Entries))
	}

	e := c.Entries[0]
	if e.ID != "e1" || e.Advancement != "adv1" {
		t.Errorf("entry = {%s %s}, want {e1 adv1}", e.ID, e.Advancement)
	}
	if len(e.Pages) != 6 {
		t.Fatalf("pages = %d, want 6", len(e.Pages))
	}
	if c.Entries[1].Advancement != "" {
		t.Errorf("entry e2 advancement = %q, want empty", c.Entries[1].Advancement)
	}
}

func TestLoad_Pages(t *testing.T) {
	b := loadTestBook(t)
	pages := b.Categories[0].Entries[0].Pages

	if pages[0].Kind != KindText || pages[0].Text.PlainText() != "Hello world" {
		t.Errorf("text page = {%s %q}", pages[0].Kind, pages[0].Text.PlainText())
	}

	crafting := pages[1]
	if len(crafting.ItemName) != 2 || crafting.ItemName[0] != "Stick" || crafting.ItemName[1] != "Stone" {
		t.Errorf("crafting item names = %v, want [Stick Stone]", crafting.ItemName)
	}

	// scalar item_name decodes as a single element list
	spotlight := pages[2]
	if len(spotlight.ItemName) != 1 || spotlight.ItemName[0] != "Lonely Item" {
		t.Errorf("spotlight item names = %v, want [Lonely Item]", spotlight.ItemName)
	}

	pattern := pages[3]
	if pattern.Kind != KindPattern || pattern.Name != "Spell" || pattern.Anchor != "spell" {
		t.Errorf("pattern page = {%s %s %s}", pattern.Kind, pattern.Name, pattern.Anchor)
	}
	if len(pattern.Ops) != 1 {
		t.Fatalf("pattern ops = %d, want 1", len(pattern.Ops))
	}
	op := pattern.Ops[0]
	if op.AngleSig != "aqweds" || op.Direction != "NORTH_EAST" || !op.PerWorld {
		t.Errorf("pattern op = %+v", op)
	}

	image := pages[4]
	if len(image.Images) != 1 || image.Images[0].Namespace != "hexcasting" {
		t.Errorf("image references = %v", image.Images)
	}

	// unknown kinds survive loading untouched
	if pages[5].Kind != "mod:custom_widget" {
		t.Errorf("unknown page kind = %q, want %q", pages[5].Kind, "mod:custom_widget")
	}
}

func TestLoad_Localized(t *testing.T) {
	loc := mapLocalizer{
		"book.test.name":  "Localized Book",
		"book.test.entry": "Localized Entry",
	}
	src := `
name: book.test.name
categories:
  - id: cat1
    name: Category
    entries:
      - id: e1
        name: book.test.entry
        pages:
          - type: patchouli:empty
`
	b, err := Load(strings.NewReader(src), loc)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := b.Name.PlainText(); got != "Localized Book" {
		t.Errorf("book name = %q, want %q", got, "Localized Book")
	}
	if got := b.Categories[0].Entries[0].Name.PlainText(); got != "Localized Entry" {
		t.Errorf("entry name = %q, want %q", got, "Localized Entry")
	}
}

// mapLocalizer resolves known keys and passes everything else through.
type mapLocalizer map[string]string

func (m mapLocalizer) Localize(key string) (string, error) {
	if v, ok := m[key]; ok {
		return v, nil
	}
	return key, nil
}

func TestLoad_UnknownFieldsRejected(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "book level",
			src: `
name: Book
totally_bogus_top_level_field: true
`,
		},
		{
			name: "category level",
			src: `
name: Book
categories:
  - id: cat1
    name: Category
    bogus_category_field: 1
`,
		},
		{
			name: "entry level",
			src: `
name: Book
categories:
  - id: cat1
    name: Category
    entries:
      - id: e1
        name: Entry
        bogus_entry_field: yes
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tc.src), nil); err == nil {
				t.Error("Load() accepted unknown field, decoding must be strict")
			}
		})
	}
}

func TestLoad_UnknownPageFieldsTolerated(t *testing.T) {
	// pages stay loosely typed so unknown kinds survive with whatever
	// private fields they carry
	src := `
name: Book
categories:
  - id: cat1
    name: Category
    entries:
      - id: e1
        name: Entry
        pages:
          - type: mod:custom_widget
            widget_payload: something private
`
	b, err := Load(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := b.Categories[0].Entries[0].Pages[0].Kind; got != "mod:custom_widget" {
		t.Errorf("page kind = %q, want %q", got, "mod:custom_widget")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "missing category id",
			src: `
name: Book
categories:
  - name: No ID
`,
		},
		{
			name: "missing entry id",
			src: `
name: Book
categories:
  - id: cat1
    name: Category
    entries:
      - name: No ID
`,
		},
		{
			name: "missing page type",
			src: `
name: Book
categories:
  - id: cat1
    name: Category
    entries:
      - id: e1
        name: Entry
        pages:
          - text: typeless
`,
		},
		{
			name: "malformed image reference",
			src: `
name: Book
categories:
  - id: cat1
    name: Category
    entries:
      - id: e1
        name: Entry
        pages:
          - type: patchouli:image
            images:
              - no-namespace
`,
		},
		{
			name: "bad format code in text",
			src: `
name: Book
categories:
  - id: cat1
    name: Category
    entries:
      - id: e1
        name: Entry
        pages:
          - type: patchouli:text
            text: $(nonsense)
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tc.src), nil); err == nil {
				t.Error("Load() expected error, got none")
			}
		})
	}
}
