// Package langmeta provides display metadata (native names and emoji flags)
// for Minecraft-style language codes (lowercase xx_yy, e.g. ru_ru, pt_br).
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Meta describes language display metadata.
type Meta struct {
	Name string
	Flag string
}

// Registry contains metadata for the language codes Minecraft ships with
// (the common subset modpacks actually translate into).
var Registry = map[string]Meta{
	"ar_sa": {Name: "العربية", Flag: "🇸🇦"},
	"bg_bg": {Name: "Български", Flag: "🇧🇬"},
	"cs_cz": {Name: "Čeština", Flag: "🇨🇿"},
	"da_dk": {Name: "Dansk", Flag: "🇩🇰"},
	"de_de": {Name: "Deutsch", Flag: "🇩🇪"},
	"el_gr": {Name: "Ελληνικά", Flag: "🇬🇷"},
	"en_gb": {Name: "English (UK)", Flag: "🇬🇧"},
	"en_us": {Name: "English (US)", Flag: "🇺🇸"},
	"es_ar": {Name: "Español (Argentina)", Flag: "🇦🇷"},
	"es_es": {Name: "Español (España)", Flag: "🇪🇸"},
	"es_mx": {Name: "Español (México)", Flag: "🇲🇽"},
	"fi_fi": {Name: "Suomi", Flag: "🇫🇮"},
	"fr_ca": {Name: "Français (Canada)", Flag: "🇨🇦"},
	"fr_fr": {Name: "Français", Flag: "🇫🇷"},
	"he_il": {Name: "עברית", Flag: "🇮🇱"},
	"hu_hu": {Name: "Magyar", Flag: "🇭🇺"},
	"id_id": {Name: "Bahasa Indonesia", Flag: "🇮🇩"},
	"it_it": {Name: "Italiano", Flag: "🇮🇹"},
	"ja_jp": {Name: "日本語", Flag: "🇯🇵"},
	"ko_kr": {Name: "한국어", Flag: "🇰🇷"},
	"nb_no": {Name: "Norsk bokmål", Flag: "🇳🇴"},
	"nl_nl": {Name: "Nederlands", Flag: "🇳🇱"},
	"pl_pl": {Name: "Polski", Flag: "🇵🇱"},
	"pt_br": {Name: "Português (Brasil)", Flag: "🇧🇷"},
	"pt_pt": {Name: "Português (Portugal)", Flag: "🇵🇹"},
	"ro_ro": {Name: "Română", Flag: "🇷🇴"},
	"ru_ru": {Name: "Русский", Flag: "🇷🇺"},
	"sk_sk": {Name: "Slovenčina", Flag: "🇸🇰"},
	"sv_se": {Name: "Svenska", Flag: "🇸🇪"},
	"th_th": {Name: "ไทย", Flag: "🇹🇭"},
	"tr_tr": {Name: "Türkçe", Flag: "🇹🇷"},
	"uk_ua": {Name: "Українська", Flag: "🇺🇦"},
	"vi_vn": {Name: "Tiếng Việt", Flag: "🇻🇳"},
	"zh_cn": {Name: "简体中文", Flag: "🇨🇳"},
	"zh_tw": {Name: "繁體中文", Flag: "🇹🇼"},
}

// Resolve returns best-effort metadata for a language code. Codes missing
// from the registry fall back to a BCP-47 lookup via x/text, yielding the
// English display name without a flag; failing that, the code itself.
func Resolve(code string) Meta {
	if m, ok := Registry[strings.ToLower(code)]; ok {
		return m
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return Meta{Name: code}
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return Meta{Name: code}
	}
	return Meta{Name: name}
}
