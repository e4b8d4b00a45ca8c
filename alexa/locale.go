package alexa

import "strings"

// Locale identifies the language and region of the user's device, e.g.
// "en-US". The platform adds locales between releases, so any string is
// representable; the constants cover the currently published set.
type Locale string

const (
	LocaleItalian             Locale = "it-IT"
	LocaleGerman              Locale = "de-DE"
	LocaleAustralianEnglish   Locale = "en-AU"
	LocaleCanadianEnglish     Locale = "en-CA"
	LocaleBritishEnglish      Locale = "en-GB"
	LocaleIndianEnglish       Locale = "en-IN"
	LocaleAmericanEnglish     Locale = "en-US"
	LocaleJapanese            Locale = "ja-JP"
	LocaleSpanish             Locale = "es-ES"
	LocaleMexicanSpanish      Locale = "es-MX"
	LocaleAmericanSpanish     Locale = "es-US"
	LocaleHindi               Locale = "hi-IN"
	LocaleFrench              Locale = "fr-FR"
	LocaleCanadianFrench      Locale = "fr-CA"
	LocaleBrazilianPortuguese Locale = "pt-BR"
)

// Language returns the language part of the locale tag ("en" for
// "en-US"). Empty if the locale itself is empty.
func (l Locale) Language() string {
	lang, _, _ := strings.Cut(string(l), "-")
	return lang
}

// Region returns the region part of the locale tag ("US" for "en-US"),
// or "" when there is none.
func (l Locale) Region() string {
	_, region, _ := strings.Cut(string(l), "-")
	return region
}

func (l Locale) IsEnglish() bool { return l.Language() == "en" }

func (l Locale) IsFrench() bool { return l.Language() == "fr" }

func (l Locale) IsSpanish() bool { return l.Language() == "es" }
