package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"pbc/book"
	"pbc/config"
)

// Values holds variables we make available for template expansion.
type Values struct {
	Context    string
	Title      string
	Language   string
	Format     string
	SourceFile string
	Categories []string
}

func buildCategories(b *book.Book) []string {
	result := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		result = append(result, c.ID)
	}
	return result
}

func expandTemplate(b *book.Book, name config.TemplateFieldName, field, language, src string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      b.Name.PlainText(),
		Language:   language,
		Format:     "html",
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Categories: buildCategories(b),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
