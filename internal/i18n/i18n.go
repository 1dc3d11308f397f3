// Package i18n provides the user-facing strings in ten languages.
//
// A Translator is bound to one locale. Lookups fall back to English and then
// to the key itself, so a missing string never produces an empty message.
package i18n

import (
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves translation keys for one locale.
type Translator struct {
	mu     sync.RWMutex
	locale string
}

// New creates a translator for the given host language tag, such as "de",
// "pt-BR" or "zh_CN". Unsupported languages use English.
func New(hostLanguage string) *Translator {
	return &Translator{locale: CurrentLocale(hostLanguage)}
}

// Locale returns the active two-letter locale.
func (t *Translator) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// SetLocale switches the translator to another host language.
func (t *Translator) SetLocale(hostLanguage string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locale = CurrentLocale(hostLanguage)
}

// Translate returns the string for key in the active locale, then English,
// then the key itself.
func (t *Translator) Translate(key string) string {
	return Lookup(t.Locale(), key)
}

// Lookup resolves key for a two-letter locale with the same fallbacks as
// Translate.
func Lookup(locale, key string) string {
	if s := tables[locale][key]; s != "" {
		return s
	}
	if s := tables[DefaultLocale][key]; s != "" {
		return s
	}
	return key
}

// CurrentLocale maps a host language to a supported two-letter locale.
// The language's base subtag is used; anything without a table maps to
// DefaultLocale.
func CurrentLocale(hostLanguage string) string {
	code := baseCode(hostLanguage)
	if _, ok := tables[code]; ok {
		return code
	}
	return DefaultLocale
}

func baseCode(hostLanguage string) string {
	s := strings.TrimSpace(hostLanguage)
	if s == "" {
		return DefaultLocale
	}
	// POSIX locales carry an encoding suffix, as in "de_DE.UTF-8".
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")

	if tag, err := language.Parse(s); err == nil {
		base, _ := tag.Base()
		return base.String()
	}
	if len(s) >= 2 {
		return strings.ToLower(s[:2])
	}
	return DefaultLocale
}

// Supported returns the supported locales as language tags, sorted.
func Supported() []language.Tag {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tags[i] = language.Make(code)
	}
	return tags
}

// HostLanguage reads the user's language from the POSIX locale variables.
// It returns "" when none is set or the locale is "C" or "POSIX".
func HostLanguage() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		if v == "C" || v == "POSIX" || strings.HasPrefix(v, "C.") {
			return ""
		}
		return v
	}
	return ""
}
