package models

import "strings"

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
)

var SupportedLocales = []Locale{LocaleEN, LocaleES}

// ParseLocale accepts "en", "es" and regional forms such as "es-MX".
func ParseLocale(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	for _, l := range SupportedLocales {
		if s == string(l) {
			return l, true
		}
	}
	return "", false
}

// Text is a bilingual string keyed by locale.
type Text map[Locale]string

func (t Text) Get(l Locale) string {
	if v, ok := t[l]; ok && v != "" {
		return v
	}
	return t[LocaleEN]
}

// Missing lists the supported locales that have no text.
func (t Text) Missing() []Locale {
	var out []Locale
	for _, l := range SupportedLocales {
		if strings.TrimSpace(t[l]) == "" {
			out = append(out, l)
		}
	}
	return out
}

// TextList is a bilingual ordered list keyed by locale.
type TextList map[Locale][]string

func (t TextList) Get(l Locale) []string {
	if v, ok := t[l]; ok && len(v) > 0 {
		return v
	}
	return t[LocaleEN]
}

func (t TextList) Empty() bool {
	for _, v := range t {
		if len(v) > 0 {
			return false
		}
	}
	return true
}
