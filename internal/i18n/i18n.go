// Package i18n holds the menu message catalog and the text normalization
// applied to free-form user input.
package i18n

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedLocale is returned when a locale has no catalog.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Supported lists the locales the catalog carries, default first.
var Supported = []language.Tag{language.English, language.BrazilianPortuguese}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, translated := range brazilianPortuguese {
		// English entries are registered explicitly so the catalog matcher
		// never resolves an English printer to another language.
		mustSet(b, language.English, key, key)
		mustSet(b, language.BrazilianPortuguese, key, translated)
	}
	return b
}

func mustSet(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: set %s message %q: %v", tag, key, err))
	}
}

// ParseLocale resolves a BCP 47 locale string to one of the Supported tags.
// Regional variants resolve to their base language ("pt" and "pt-PT" map to
// pt-BR, "en-GB" to en).
func ParseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
	return Supported[idx], nil
}

// NewPrinter returns a printer bound to the menu catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// Fold trims, case-folds and strips diacritics so that "Eletrônico",
// " ELETRONICO " and "eletronico" compare equal.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
