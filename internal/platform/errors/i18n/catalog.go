// Package i18n holds the localized user-facing messages for error codes.
package i18n

import (
	"bytes"
	"maps"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code mirrors errors.Code; the errors package imports this one.
type Code = string

// DefaultLocale is used when no registered locale matches.
const DefaultLocale = "en-US"

// Catalog maps error codes to message templates for one locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{
		DefaultLocale: NewCatalog(DefaultLocale, enUS),
		"pt-BR":       NewCatalog("pt-BR", ptBR),
	}
)

// NewCatalog returns a catalog for locale. messages is copied.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	return &Catalog{locale: locale, messages: maps.Clone(messages)}
}

// RegisterCatalog adds or replaces the catalog for locale.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// GetCatalog returns the catalog best matching locale, which may be a
// single tag or an Accept-Language list. Unknown or empty locales get the
// en-US catalog.
func GetCatalog(locale string) *Catalog {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	locale = strings.TrimSpace(locale)
	if cat, ok := catalogs[locale]; ok {
		return cat
	}
	if locale != "" {
		if cat := matchCatalog(locale); cat != nil {
			return cat
		}
	}
	return catalogs[DefaultLocale]
}

// matchCatalog must be called with catalogsMu held.
func matchCatalog(locale string) *Catalog {
	requested, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(requested) == 0 {
		return nil
	}

	keys := make([]string, 0, len(catalogs))
	tags := make([]language.Tag, 0, len(catalogs))
	// The default goes first so the matcher falls back to it.
	keys = append(keys, DefaultLocale)
	tags = append(tags, language.Make(DefaultLocale))
	for key := range catalogs {
		if key == DefaultLocale {
			continue
		}
		tag, err := language.Parse(key)
		if err != nil {
			continue
		}
		keys = append(keys, key)
		tags = append(tags, tag)
	}

	_, index, confidence := language.NewMatcher(tags).Match(requested...)
	if confidence == language.No {
		return nil
	}
	return catalogs[keys[index]]
}

// Locale returns the catalog's locale.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the template for code with metadata. A missing code yields
// the code itself; a broken template yields the raw template.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
