// Package messages renders the user-facing texts of message codes from the locale files
// embedded in the binary.
package messages

import (
	"embed"
	"fmt"
	"path"
	"strconv"
	"strings"

	"shopdelivery/internal/core/ports"
	"shopdelivery/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var locales embed.FS

var _ ports.MessageCatalog = (*Catalog)(nil)

// Catalog maps language -> code -> template.
type Catalog struct {
	fallback  string
	templates map[string]map[string]string
}

// NewCatalog loads every embedded locale. fallback answers languages the catalog does not
// know and codes missing from a known language.
func NewCatalog(fallback string) (*Catalog, error) {
	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	templates := make(map[string]map[string]string, len(entries))
	for _, entry := range entries {
		data, err := locales.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", entry.Name(), err)
		}

		var codes map[string]string
		if err := yaml.Unmarshal(data, &codes); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", entry.Name(), err)
		}
		templates[strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))] = codes
	}

	fallback = normalize(fallback)
	if _, ok := templates[fallback]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("fallback", fmt.Errorf("no locale %q", fallback))
	}

	return &Catalog{fallback: fallback, templates: templates}, nil
}

// Message renders code in lang. lang may be a tag such as "vi-VN" or an Accept-Language
// value; only its primary language is used.
func (c *Catalog) Message(lang, code string, args ...any) string {
	template, ok := c.templates[normalize(lang)][code]
	if !ok {
		template, ok = c.templates[c.fallback][code]
	}
	if !ok {
		return code
	}
	return render(template, args)
}

func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.templates))
	for lang := range c.templates {
		langs = append(langs, lang)
	}
	return langs
}

func render(template string, args []any) string {
	if len(args) == 0 {
		return template
	}

	pairs := make([]string, 0, len(args)*2)
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func normalize(lang string) string {
	lang, _, _ = strings.Cut(lang, ",")
	lang, _, _ = strings.Cut(lang, ";")
	lang, _, _ = strings.Cut(lang, "-")
	return strings.ToLower(strings.TrimSpace(lang))
}
