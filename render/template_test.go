package render

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"pbc/book"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head><title>Book</title></head>
#DO_NOT_RENDER e2
<body>
#SPOILER adv1
#DUMP_BODY_HERE
</body>
</html>
`

func TestSplice_EndToEnd(t *testing.T) {
	b := testBook(t)
	r := NewRenderer(nil)

	var out strings.Builder
	body, err := Splice(&out, strings.NewReader(testTemplate), b, r)
	if err != nil {
		t.Fatalf("Splice() error = %v", err)
	}
	got := out.String()

	// directive lines are consumed
	for _, directive := range []string{"#DO_NOT_RENDER", "#SPOILER", "#DUMP_BODY_HERE"} {
		if strings.Contains(got, directive) {
			t.Errorf("Splice() leaked directive %q into output", directive)
		}
	}

	// surrounding template lines pass through unchanged
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n<html>\n<head><title>Book</title></head>\n<body>\n") {
		t.Errorf("Splice() mangled template head: %q", got)
	}
	if !strings.HasSuffix(got, "\n</body>\n</html>\n") {
		t.Errorf("Splice() mangled template tail: %q", got)
	}

	// e1 is gated by the spoiler directive and renders redacted
	if !strings.Contains(got, `<div id="e1"><div class="spoilered">`) {
		t.Error("Splice() entry e1 must render wrapped in a spoiler div")
	}
	// e2 is blacklisted and omitted entirely
	if strings.Contains(got, `id="e2"`) || strings.Contains(got, "Hidden lore") {
		t.Error("Splice() blacklisted entry e2 must be omitted entirely")
	}

	// body is spliced at the marker position, inside <body>
	if !strings.Contains(got, "<body>\n<div class=\"container\">") {
		t.Errorf("Splice() body not at marker position: %q", got)
	}
	if !strings.Contains(got, string(body)+"\n") {
		t.Error("Splice() returned body must match the spliced output")
	}
}

func TestSplice_DirectivesAccumulate(t *testing.T) {
	tpl := "#SPOILER adv1 adv2\n#SPOILER adv3\n#DO_NOT_RENDER a b\n#DUMP_BODY_HERE\n"
	r := NewRenderer(nil)

	var out strings.Builder
	if _, err := Splice(&out, strings.NewReader(tpl), testBook(t), r); err != nil {
		t.Fatalf("Splice() error = %v", err)
	}

	for _, key := range []string{"adv1", "adv2", "adv3"} {
		if _, ok := r.Spoilers[key]; !ok {
			t.Errorf("Splice() did not collect spoiler key %q", key)
		}
	}
	for _, id := range []string{"a", "b"} {
		if _, ok := r.Blacklist[id]; !ok {
			t.Errorf("Splice() did not collect blacklist id %q", id)
		}
	}
}

func TestSplice_MissingMarker(t *testing.T) {
	var out strings.Builder
	_, err := Splice(&out, strings.NewReader("<html></html>\n"), testBook(t), NewRenderer(nil))
	if err == nil {
		t.Error("Splice() without body marker expected error, got none")
	}
}

func TestSplice_MarkerAtEOFWithoutNewline(t *testing.T) {
	var out strings.Builder
	body, err := Splice(&out, strings.NewReader("#DUMP_BODY_HERE"), testBook(t), NewRenderer(nil))
	if err != nil {
		t.Fatalf("Splice() error = %v", err)
	}
	if len(body) == 0 {
		t.Error("Splice() produced no body for marker at EOF")
	}
}

func TestVerify(t *testing.T) {
	var out strings.Builder
	body, err := Splice(&out, strings.NewReader("#DUMP_BODY_HERE\n"), testBook(t), NewRenderer(nil))
	if err != nil {
		t.Fatalf("Splice() error = %v", err)
	}
	if err := Verify(body); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	// the body really is machine readable again
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		t.Fatalf("re-parse error = %v", err)
	}
	if root := doc.Root(); root == nil || root.Tag != "div" {
		t.Errorf("re-parse root = %v, want container div", doc.Root())
	}
}

func TestVerify_RejectsBrokenMarkup(t *testing.T) {
	if err := Verify([]byte("<div><p>unclosed</div>")); err == nil {
		t.Error("Verify() of unbalanced markup expected error, got none")
	}
}

func TestSplice_AuthoredMarkupStaysEscaped(t *testing.T) {
	src := `
name: Book <script>alert(1)</script>
categories:
  - id: c1
    name: Cat
    entries:
      - id: e1
        name: Entry
        pages:
          - type: patchouli:text
            text: injected </div> tag
`
	b, err := book.Load(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var out strings.Builder
	body, err := Splice(&out, strings.NewReader("#DUMP_BODY_HERE\n"), b, NewRenderer(nil))
	if err != nil {
		t.Fatalf("Splice() error = %v", err)
	}
	if strings.Contains(string(body), "<script>") {
		t.Error("authored markup leaked into output unescaped")
	}
	if err := Verify(body); err != nil {
		t.Errorf("Verify() error = %v, escaping must keep the body well formed", err)
	}
}
