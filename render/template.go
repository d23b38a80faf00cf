package render

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"pbc/book"
)

// Template directives. Directive lines are consumed: they configure the
// render pass and never reach the output.
const (
	directiveBlacklist = "#DO_NOT_RENDER"
	directiveSpoiler   = "#SPOILER"
	directiveBody      = "#DUMP_BODY_HERE"
)

// Splice copies the template to dst line by line, collecting blacklist and
// spoiler directives into r as it goes, and substitutes the rendered book
// body (followed by a blank line) at the body marker. Directives seen after
// the marker are stripped but have no effect on the already rendered body.
// The rendered body is also returned so callers can verify it separately.
func Splice(dst io.Writer, tpl io.Reader, b *book.Book, r *Renderer) ([]byte, error) {
	var body []byte

	rd := bufio.NewReader(tpl)
	for {
		line, rerr := rd.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return nil, fmt.Errorf("unable to read template: %w", rerr)
		}
		if line != "" {
			switch {
			case strings.HasPrefix(line, directiveBlacklist):
				fields := strings.Fields(line)
				r.AddBlacklist(fields[1:]...)
			case strings.HasPrefix(line, directiveSpoiler):
				fields := strings.Fields(line)
				r.AddSpoilers(fields[1:]...)
			case strings.TrimSuffix(line, "\n") == directiveBody:
				var buf bytes.Buffer
				if err := r.Book(NewStream(&buf), b); err != nil {
					return nil, fmt.Errorf("unable to render book body: %w", err)
				}
				body = buf.Bytes()
				if _, err := dst.Write(body); err != nil {
					return nil, err
				}
				if _, err := io.WriteString(dst, "\n"); err != nil {
					return nil, err
				}
			default:
				if _, err := io.WriteString(dst, line); err != nil {
					return nil, err
				}
			}
		}
		if rerr == io.EOF {
			break
		}
	}

	if body == nil {
		return nil, fmt.Errorf("template has no %s marker", directiveBody)
	}
	return body, nil
}
