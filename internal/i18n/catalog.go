// Package i18n localizes user-facing messages by code.
package i18n

import (
	"embed"
	"encoding/json"
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is used when no supported language matches.
const DefaultLanguage = "en"

// Catalog resolves message codes to localized strings.
type Catalog struct {
	messages map[string]map[string]string
	matcher  language.Matcher
	tags     []language.Tag
}

// NewCatalog loads all embedded locale files. File names follow
// messages.<lang>.json.
func NewCatalog() (*Catalog, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read locales")
	}

	catalog := &Catalog{messages: make(map[string]map[string]string)}

	// The default language must be first so the matcher falls back to it.
	var tags []language.Tag
	for _, entry := range entries {
		name := entry.Name()
		parts := strings.Split(name, ".")
		if len(parts) != 3 || parts[0] != "messages" || parts[2] != "json" {
			continue
		}
		lang := parts[1]

		raw, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read locale %s", name)
		}

		msgs := make(map[string]string)
		if err := json.Unmarshal(raw, &msgs); err != nil {
			return nil, errors.Wrapf(err, "failed to parse locale %s", name)
		}

		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid locale name %s", lang)
		}

		catalog.messages[lang] = msgs
		if lang == DefaultLanguage {
			tags = append([]language.Tag{tag}, tags...)
		} else {
			tags = append(tags, tag)
		}
	}

	if _, ok := catalog.messages[DefaultLanguage]; !ok {
		return nil, errors.Errorf("default locale %s missing", DefaultLanguage)
	}

	catalog.tags = tags
	catalog.matcher = language.NewMatcher(tags)

	return catalog, nil
}

// Match resolves an Accept-Language header to a supported language.
func (c *Catalog) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLanguage
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}

	_, index, _ := c.matcher.Match(tags...)
	base, _ := c.tags[index].Base()

	if _, ok := c.messages[base.String()]; !ok {
		return DefaultLanguage
	}

	return base.String()
}

// Message returns the localized message for a code, falling back to the
// default language and finally to the provided fallback text.
func (c *Catalog) Message(lang, code, fallback string) string {
	if msgs, ok := c.messages[lang]; ok {
		if msg, ok := msgs[code]; ok {
			return msg
		}
	}
	if msg, ok := c.messages[DefaultLanguage][code]; ok {
		return msg
	}

	return fallback
}
