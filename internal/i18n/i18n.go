// Package i18n loads the embedded gettext catalogs for the user-facing
// strings. Message ids are the English text.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is used when no locale is requested.
const DefaultLocale = "en"

//go:embed locales/*.po
var locales embed.FS

// Catalog translates message ids for one locale.
type Catalog struct {
	locale string
	po     *gotext.Po
}

// Load returns the catalog for locale. Region suffixes are ignored
// ("ru_RU.UTF-8" loads "ru"); an empty locale loads DefaultLocale.
func Load(locale string) (*Catalog, error) {
	lang := normalize(locale)

	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("i18n: unsupported locale %q (available: %s)",
			locale, strings.Join(Available(), ", "))
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{locale: lang, po: po}, nil
}

// MustLoad is Load that falls back to DefaultLocale.
func MustLoad(locale string) *Catalog {
	if c, err := Load(locale); err == nil {
		return c
	}
	c, err := Load(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the loaded language code.
func (c *Catalog) Locale() string {
	return c.locale
}

// Get translates id and applies vars printf-style. Unknown ids come back
// untranslated.
func (c *Catalog) Get(id string, vars ...any) string {
	return c.po.Get(id, vars...)
}

// Available lists the embedded locales.
func Available() []string {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(out)
	return out
}

func normalize(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
