package chromologger

import (
	"fmt"

	"golang.org/x/text/language"
)

// LocalisedString is a string that can contain multiple translations, keyed
// by BCP 47 language tag (e.g. "en", "es").
type LocalisedString map[string]string

// Format returns the translation for tag formatted with args, falling back
// to English.
func (s LocalisedString) Format(tag language.Tag, args ...interface{}) string {
	format, ok := s[tag.String()]
	if !ok {
		format = s[language.English.String()]
	}
	return fmt.Sprintf(format, args...)
}

var (
	// noticeCheckLog is printed after every Log call
	noticeCheckLog = LocalisedString{
		"en": "Check %s to see the records.",
		"es": "Revise %s para ver los registros.",
	}
	// noticeDiagnostic is printed whenever the diagnostic log is written
	noticeDiagnostic = LocalisedString{
		"en": "Check the log file at this path: %s",
		"es": `Revise el archivo "log" que se encuentra en esta ruta: %s`,
	}
)

// supportedLocales lists the languages notices are translated to. The first
// one is the default.
var supportedLocales = []language.Tag{
	language.English,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// MatchLocale finds the best supported language for the preferred locales.
// Invalid locales are ignored; English is used when nothing matches.
func MatchLocale(locales ...string) language.Tag {
	preferred := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		preferred = append(preferred, tag)
	}

	_, i, _ := localeMatcher.Match(preferred...)
	return supportedLocales[i]
}
