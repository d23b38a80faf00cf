// Package lang provides the localization lookup used while loading a book.
package lang

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pbc/book"
)

// I18n resolves localization keys to display strings for a single language.
type I18n struct {
	Lookup map[string]string
	Lang   string
	// AllowMissing makes unknown keys resolve to themselves instead of failing.
	AllowMissing bool
	// Default is consulted for keys missing from Lookup before giving up.
	Default *I18n
}

// New returns an I18n over the given lookup table.
func New(lang string, lookup map[string]string, allowMissing bool) *I18n {
	return &I18n{Lookup: lookup, Lang: lang, AllowMissing: allowMissing}
}

// Localize resolves key to its localized value. A nil receiver is a valid
// "no localization" table resolving every key to itself.
func (i *I18n) Localize(key string) (string, error) {
	if i == nil {
		return key, nil
	}
	if v, ok := i.Lookup[key]; ok {
		return v, nil
	}
	if i.Default != nil {
		if v, err := i.Default.Localize(key); err == nil {
			return v, nil
		}
	}
	if i.AllowMissing {
		return key, nil
	}
	return "", fmt.Errorf("no %s localization for key %q", i.Lang, key)
}

var titleCaser = cases.Title(language.AmericanEnglish)

// FallbackTagName derives a human readable name from a resource location when
// no localization exists for it. A two segment path reads naturally reversed
// ("saplings/almond" becomes "Almond Saplings"), longer paths are joined with
// commas in declared order.
func (i *I18n) FallbackTagName(loc book.ResourceLocation) string {
	segments := strings.Split(loc.Path, "/")
	for n, s := range segments {
		segments[n] = strings.ReplaceAll(s, "_", " ")
	}

	var name string
	if len(segments) == 2 {
		name = segments[1] + " " + segments[0]
	} else {
		name = strings.Join(segments, ", ")
	}
	return titleCaser.String(name)
}
