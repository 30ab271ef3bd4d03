// Package stats computes completion metrics per document, per category and
// workspace-wide. The base document defines the key universe: orphan keys in
// a translation never count, and keys a translation is missing count as
// empty. Aggregation sums counts (weighted by key coverage) rather than
// averaging ratios.
package stats

import (
	"strings"

	"github.com/start-modpack/packlang/langfile"
	"github.com/start-modpack/packlang/workspace"
)

// Counts holds completion counters for one document or aggregate.
// Invariant: Translated + Todo + Empty == Total.
type Counts struct {
	Total      int
	Translated int
	Todo       int
	Empty      int
}

// Ratio returns Translated/Total, or 0 for an empty key set.
func (c Counts) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Translated) / float64(c.Total)
}

// Percent returns the completion ratio as an integer percentage.
func (c Counts) Percent() int {
	if c.Total == 0 {
		return 0
	}
	return c.Translated * 100 / c.Total
}

// Add returns the element-wise sum of two Counts.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Total:      c.Total + o.Total,
		Translated: c.Translated + o.Translated,
		Todo:       c.Todo + o.Todo,
		Empty:      c.Empty + o.Empty,
	}
}

// Document counts completion of doc against its base document. A value is
// Todo when it begins with todoMarker, Empty when it is the empty string
// (or the key is missing entirely), Translated otherwise.
func Document(base, doc *langfile.Document, todoMarker string) Counts {
	var c Counts
	for _, key := range base.Keys() {
		c.Total++
		v, _ := doc.Get(key)
		switch {
		case v == "":
			c.Empty++
		case todoMarker != "" && strings.HasPrefix(v, todoMarker):
			c.Todo++
		default:
			c.Translated++
		}
	}
	return c
}

// Category counts completion of one language within one category. A
// language with no document in the category counts all base keys as empty.
func Category(cat *workspace.Category, lang, todoMarker string) Counts {
	doc, ok := cat.Translations[lang]
	if !ok {
		return Counts{Total: cat.Base.Len(), Empty: cat.Base.Len()}
	}
	return Document(cat.Base, doc, todoMarker)
}

// Language aggregates one language across every category in ws.
func Language(ws *workspace.Workspace, lang, todoMarker string) Counts {
	var total Counts
	for _, cat := range ws.Categories() {
		total = total.Add(Category(cat, lang, todoMarker))
	}
	return total
}

// Workspace returns per-language aggregates for every known language.
func Workspace(ws *workspace.Workspace, todoMarker string) map[string]Counts {
	out := make(map[string]Counts)
	for _, lang := range ws.Languages() {
		out[lang] = Language(ws, lang, todoMarker)
	}
	return out
}
