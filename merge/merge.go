// Package merge keeps every translated document structurally aligned with
// its category's base document, equivalent to what msgmerge does for PO
// catalogs: same key set, same key order, existing translations preserved.
package merge

import (
	"fmt"
	"sort"

	"github.com/start-modpack/packlang/langfile"
	"github.com/start-modpack/packlang/workspace"
)

// Report describes what Sync changed in one category.
type Report struct {
	Category string
	// Added maps language → keys inserted with empty values.
	Added map[string][]string
	// Orphans maps language → keys removed because base no longer has them.
	// Orphaned keys are reported here rather than silently dropped.
	Orphans map[string][]string
	// orphanValues preserves the removed values so a caller can surface
	// what was lost.
	orphanValues map[string]string
}

// Changed reports whether Sync performed any insertion or removal.
func (r *Report) Changed() bool {
	return len(r.Added) > 0 || len(r.Orphans) > 0
}

// OrphanValue returns the removed value for a reported orphan key.
func (r *Report) OrphanValue(lang, key string) string {
	return r.orphanValues[lang+"\x00"+key]
}

// Sync reconciles every translated document in cat against its base:
//
//   - keys in base but not in the translation are inserted with empty values;
//   - keys in the translation but not in base are removed and reported;
//   - every translation is rebuilt in base key order.
//
// Sync is idempotent: a second call with no intervening edits is a no-op.
func Sync(cat *workspace.Category) *Report {
	rep := &Report{
		Category:     cat.ID,
		Added:        make(map[string][]string),
		Orphans:      make(map[string][]string),
		orphanValues: make(map[string]string),
	}

	baseKeys := cat.Base.Keys()

	for _, code := range cat.Langs() {
		doc := cat.Translations[code]

		keys := make([]string, 0, len(baseKeys))
		values := make([]string, 0, len(baseKeys))
		for _, key := range baseKeys {
			v, ok := doc.Get(key)
			if !ok {
				rep.Added[code] = append(rep.Added[code], key)
			}
			keys = append(keys, key)
			values = append(values, v)
		}

		for _, key := range doc.Keys() {
			if !cat.Base.Has(key) {
				v, _ := doc.Get(key)
				rep.Orphans[code] = append(rep.Orphans[code], key)
				rep.orphanValues[code+"\x00"+key] = v
			}
		}

		doc.Replace(keys, values)
	}

	if len(rep.Added) == 0 {
		rep.Added = nil
	}
	if len(rep.Orphans) == 0 {
		rep.Orphans = nil
	}
	return rep
}

// SyncAll runs Sync over every category in workspace order.
func SyncAll(ws *workspace.Workspace) []*Report {
	var reports []*Report
	for _, cat := range ws.Categories() {
		reports = append(reports, Sync(cat))
	}
	return reports
}

// AddLanguage scaffolds a new language across the whole workspace: every
// category gets a document with all base keys mapped to empty strings, in
// base order. Fails with DuplicateLanguageError if code is already known or
// equals the base language; no category is touched on failure.
func AddLanguage(ws *workspace.Workspace, code string) error {
	if code == "" {
		return fmt.Errorf("language code must not be empty")
	}
	if code == ws.BaseLang || ws.HasLanguage(code) {
		return &workspace.DuplicateLanguageError{Language: code}
	}

	for _, cat := range ws.Categories() {
		doc := langfile.New(cat.ID, code)
		for _, key := range cat.Base.Keys() {
			doc.Append(key, "")
		}
		cat.Translations[code] = doc
	}
	return nil
}

// AddedLangs returns the languages with inserted keys, sorted.
func (r *Report) AddedLangs() []string {
	return sortedKeys(r.Added)
}

// OrphanLangs returns the languages with orphaned keys, sorted.
func (r *Report) OrphanLangs() []string {
	return sortedKeys(r.Orphans)
}

func sortedKeys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
