// Package locale holds the user facing strings and date formats of the planner.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported UI language
type Lang string

const (
	Turkish Lang = "tr"
	English Lang = "en"
)

// Supported lists the languages in matcher preference order
var Supported = []Lang{Turkish, English}

var matcher = language.NewMatcher([]language.Tag{language.Turkish, language.English})

// Parse returns the language for a code such as "tr" or "en-GB"
func Parse(code string) (Lang, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	return match([]language.Tag{tag})
}

// Negotiate picks the language from an explicit choice, then an
// Accept-Language header, then the fallback.
func Negotiate(explicit, acceptLanguage string, fallback Lang) Lang {
	if lang, ok := Parse(explicit); ok {
		return lang
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if lang, ok := match(tags); ok {
				return lang
			}
		}
	}
	return fallback
}

func match(tags []language.Tag) (Lang, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return Supported[index], true
}

// Messages returns the string table for lang, Turkish when unknown
func (l Lang) Messages() *Messages {
	if m, ok := catalog[l]; ok {
		return m
	}
	return catalog[Turkish]
}
