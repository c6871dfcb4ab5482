// Package i18n serves the game's user-facing strings from embedded
// gettext catalogs.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used until Load picks another one
const DefaultLanguage = "en"

// ErrUnknownLanguage is returned for a language without a catalog
var ErrUnknownLanguage = errors.New("unknown language")

//go:embed locales/*/default.po
var locales embed.FS

var (
	mu      sync.Mutex
	catalog *gotext.Po
	loaded  string
)

// Languages returns the languages with an embedded catalog
func Languages() []string {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	slices.Sort(langs)
	return langs
}

// Load switches the active catalog
func Load(lang string) error {
	data, err := locales.ReadFile(path.Join("locales", lang, "default.po"))
	if err != nil {
		return fmt.Errorf("%q: %w", lang, ErrUnknownLanguage)
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	defer mu.Unlock()
	catalog = po
	loaded = lang
	return nil
}

// Language returns the active language
func Language() string {
	mu.Lock()
	defer mu.Unlock()
	if loaded == "" {
		return DefaultLanguage
	}
	return loaded
}

// T translates key. Translations with verbs come back unformatted, for
// fmt.Sprintf at the call site.
// Keys missing from the catalog come back unchanged.
func T(key string) string {
	mu.Lock()
	po := catalog
	mu.Unlock()

	if po == nil {
		if err := Load(DefaultLanguage); err != nil {
			return key
		}
		return T(key)
	}
	return po.Get(key)
}
