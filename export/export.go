// Package export produces contributor-facing reports of untranslated keys:
// every entry whose translated value is empty or TODO-marked, paired with
// its base text, in base key order.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/start-modpack/packlang/workspace"
)

// Pair is one untranslated key with its base text.
type Pair struct {
	Key       string
	BaseValue string
}

// Section is one category's untranslated pairs.
type Section struct {
	Category string
	Pairs    []Pair
}

// Untranslated returns the pairs for one language in one category, in base
// key order. A value counts as untranslated when it is empty or begins with
// todoMarker; a language missing from the category counts every key.
func Untranslated(cat *workspace.Category, lang, todoMarker string) []Pair {
	doc := cat.Translations[lang]
	var pairs []Pair
	for _, key := range cat.Base.Keys() {
		var v string
		if doc != nil {
			v, _ = doc.Get(key)
		}
		if v == "" || (todoMarker != "" && strings.HasPrefix(v, todoMarker)) {
			base, _ := cat.Base.Get(key)
			pairs = append(pairs, Pair{Key: key, BaseValue: base})
		}
	}
	return pairs
}

// AllUntranslated concatenates per-category results in workspace category
// order (load order). Categories with nothing untranslated are omitted.
func AllUntranslated(ws *workspace.Workspace, lang, todoMarker string) []Section {
	var sections []Section
	for _, cat := range ws.Categories() {
		pairs := Untranslated(cat, lang, todoMarker)
		if len(pairs) > 0 {
			sections = append(sections, Section{Category: cat.ID, Pairs: pairs})
		}
	}
	return sections
}

// Count returns the total number of pairs across sections.
func Count(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Pairs)
	}
	return n
}

// WriteReport renders the flat report contributors work from:
//
//	Untranslated keys for ru_ru
//	==================================================
//
//	## items
//
//	Key: item.start.crystal
//	English: Star Crystal
//	Translation: [TODO]
func WriteReport(w io.Writer, lang string, sections []Section) error {
	if _, err := fmt.Fprintf(w, "Untranslated keys for %s\n%s\n", lang, strings.Repeat("=", 50)); err != nil {
		return err
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "\n## %s\n\n", s.Category); err != nil {
			return err
		}
		for _, p := range s.Pairs {
			if _, err := fmt.Fprintf(w, "Key: %s\nEnglish: %s\nTranslation: [TODO]\n\n", p.Key, p.BaseValue); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTSV renders a machine-readable tab-delimited variant: key, base text.
func WriteTSV(w io.Writer, sections []Section) error {
	for _, s := range sections {
		for _, p := range s.Pairs {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", s.Category, p.Key, p.BaseValue); err != nil {
				return err
			}
		}
	}
	return nil
}
