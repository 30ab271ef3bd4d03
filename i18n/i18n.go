// Package i18n localizes packlang's own user-facing messages.
//
// Translations are gettext PO files embedded in the binary under
// locales/{lang}/LC_MESSAGES/packlang.po and served through gotext.
// Call Init once at startup; T and N fall back to the msgid when no
// translation is loaded.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed all:locales
var locales embed.FS

// domain is the gettext domain name.
const domain = "packlang"

var loc *gotext.Locale

// Init loads translations for lang, auto-detecting from the environment
// (LANGUAGE, LC_ALL, LC_MESSAGES, LANG, in GNU gettext order) when empty.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}
	loc = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	loc.AddDomain(domain)
	loc.SetDomain(domain)
}

// T translates a message, passing through untranslated msgids unchanged.
func T(msgid string) string {
	if loc == nil {
		return msgid
	}
	return loc.Get(msgid)
}

// N translates a message with plural forms.
func N(singular, plural string, n int) string {
	if loc == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return loc.GetN(singular, plural, n)
}

func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		if idx := strings.IndexByte(val, '.'); idx >= 0 {
			val = val[:idx]
		}
		if val == "C" || val == "POSIX" || val == "" {
			continue
		}
		return val
	}
	return "en"
}
