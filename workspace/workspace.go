// Package workspace models a modpack translation tree: a root directory with
// one sub-directory per category, each holding one JSON language file per
// language code.
//
//	lang/
//	  items/
//	    en_us.json
//	    ru_ru.json
//	  quests/
//	    en_us.json
//
// The base language file (en_us by default) is authoritative for key
// existence and key order within its category. The workspace is a single
// mutable aggregate with no internal locking; callers serialize access.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/start-modpack/packlang/langfile"
)

// DefaultBaseLang is the source language used when none is configured.
const DefaultBaseLang = "en_us"

// Category groups one base-language document with its translations.
type Category struct {
	ID           string
	Base         *langfile.Document
	Translations map[string]*langfile.Document // language code → document
}

// Langs returns the category's translated language codes, sorted.
func (c *Category) Langs() []string {
	langs := make([]string, 0, len(c.Translations))
	for code := range c.Translations {
		langs = append(langs, code)
	}
	sort.Strings(langs)
	return langs
}

// Broken records a category (or one of its files) that could not be loaded.
type Broken struct {
	Category string
	Language string // empty when the whole category is unusable
	Err      error
}

// Workspace is the full set of categories discovered under a root.
type Workspace struct {
	Root     string
	BaseLang string

	categories map[string]*Category
	order      []string // category iteration order (load order)

	// Broken lists categories/files skipped during load. A category missing
	// its base document is fatal to that category only, never to the
	// workspace.
	Broken []Broken
}

// Load walks root and builds the workspace. Every sub-directory of root is a
// category; every *.json file inside is a language named by its stem. A
// category without a base-language file is recorded in Broken and skipped;
// an unparseable translated file is recorded in Broken and skipped without
// discarding the rest of its category.
func Load(root, baseLang string) (*Workspace, error) {
	if baseLang == "" {
		baseLang = DefaultBaseLang
	}
	ws := &Workspace{
		Root:       root,
		BaseLang:   baseLang,
		categories: make(map[string]*Category),
	}

	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, &StructureError{Path: root, Err: err}
	}

	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		id := dir.Name()
		catDir := filepath.Join(root, id)

		files, err := os.ReadDir(catDir)
		if err != nil {
			ws.Broken = append(ws.Broken, Broken{Category: id, Err: err})
			continue
		}

		var docs []*langfile.Document
		broken := false
		for _, f := range files {
			name := f.Name()
			if f.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			lang := strings.TrimSuffix(name, ".json")
			doc, err := langfile.ParseFile(filepath.Join(catDir, name), id, lang)
			if err != nil {
				ws.Broken = append(ws.Broken, Broken{Category: id, Language: lang, Err: err})
				if lang == baseLang {
					broken = true
				}
				continue
			}
			docs = append(docs, doc)
		}
		if broken {
			continue
		}

		if err := ws.addCategory(id, docs); err != nil {
			ws.Broken = append(ws.Broken, Broken{Category: id, Err: err})
		}
	}

	return ws, nil
}

// Build assembles a workspace from already-parsed documents, grouped by
// CategoryID. This is the boundary for callers that do their own discovery
// and parsing. Categories lacking a base-language document are recorded in
// Broken, mirroring Load.
func Build(root, baseLang string, docs []*langfile.Document) *Workspace {
	if baseLang == "" {
		baseLang = DefaultBaseLang
	}
	ws := &Workspace{
		Root:       root,
		BaseLang:   baseLang,
		categories: make(map[string]*Category),
	}

	grouped := make(map[string][]*langfile.Document)
	var order []string
	for _, d := range docs {
		if _, seen := grouped[d.CategoryID]; !seen {
			order = append(order, d.CategoryID)
		}
		grouped[d.CategoryID] = append(grouped[d.CategoryID], d)
	}

	for _, id := range order {
		if err := ws.addCategory(id, grouped[id]); err != nil {
			ws.Broken = append(ws.Broken, Broken{Category: id, Err: err})
		}
	}
	return ws
}

func (ws *Workspace) addCategory(id string, docs []*langfile.Document) error {
	cat := &Category{
		ID:           id,
		Translations: make(map[string]*langfile.Document),
	}
	for _, d := range docs {
		if d.Language == ws.BaseLang {
			cat.Base = d
		} else {
			cat.Translations[d.Language] = d
		}
	}
	if cat.Base == nil {
		return &StructureError{Category: id, Err: ErrNoBase}
	}
	ws.categories[id] = cat
	ws.order = append(ws.order, id)
	return nil
}

// Category returns the category with the given id.
func (ws *Workspace) Category(id string) (*Category, bool) {
	c, ok := ws.categories[id]
	return c, ok
}

// Categories returns all categories in load order.
func (ws *Workspace) Categories() []*Category {
	out := make([]*Category, 0, len(ws.order))
	for _, id := range ws.order {
		out = append(out, ws.categories[id])
	}
	return out
}

// Languages returns the union of translated language codes across all
// categories, sorted. The base language is not included.
func (ws *Workspace) Languages() []string {
	seen := make(map[string]bool)
	var langs []string
	for _, id := range ws.order {
		for code := range ws.categories[id].Translations {
			if !seen[code] {
				seen[code] = true
				langs = append(langs, code)
			}
		}
	}
	sort.Strings(langs)
	return langs
}

// HasLanguage reports whether any category carries a document for code.
func (ws *Workspace) HasLanguage(code string) bool {
	for _, id := range ws.order {
		if _, ok := ws.categories[id].Translations[code]; ok {
			return true
		}
	}
	return false
}

// Set updates one translated entry. Editing the base language is refused:
// base text is authoritative input, not something this tool rewrites.
func (ws *Workspace) Set(category, lang, key, value string) error {
	cat, ok := ws.categories[category]
	if !ok {
		return &StructureError{Category: category, Err: ErrUnknownCategory}
	}
	if lang == ws.BaseLang {
		return &StructureError{Category: category, Language: lang, Err: ErrBaseReadOnly}
	}
	doc, ok := cat.Translations[lang]
	if !ok {
		return &StructureError{Category: category, Language: lang, Err: ErrUnknownLanguage}
	}
	if !doc.Set(key, value) {
		return &StructureError{Category: category, Language: lang, Key: key, Err: ErrUnknownKey}
	}
	return nil
}

// SearchResult is one match from Search.
type SearchResult struct {
	Category string
	Language string
	Key      string
	Base     string
	Value    string
}

// Search finds entries whose key, base text or translated text contains
// query (case-insensitive). An empty lang searches every language.
func (ws *Workspace) Search(query, lang string) []SearchResult {
	q := strings.ToLower(query)
	var results []SearchResult
	for _, id := range ws.order {
		cat := ws.categories[id]
		for _, code := range cat.Langs() {
			if lang != "" && code != lang {
				continue
			}
			doc := cat.Translations[code]
			for _, key := range cat.Base.Keys() {
				base, _ := cat.Base.Get(key)
				value, _ := doc.Get(key)
				if strings.Contains(strings.ToLower(key), q) ||
					strings.Contains(strings.ToLower(base), q) ||
					strings.Contains(strings.ToLower(value), q) {
					results = append(results, SearchResult{
						Category: id,
						Language: code,
						Key:      key,
						Base:     base,
						Value:    value,
					})
				}
			}
		}
	}
	return results
}

// Render serialises every document, keyed by file path relative to Root.
// Every language is emitted in the base document's key order; keys not yet
// reconciled against base (orphans) are appended after the base-ordered
// block so that an unsynced save never drops caller-visible state. Each
// file is rendered independently of every other.
func (ws *Workspace) Render() (map[string][]byte, error) {
	out := make(map[string][]byte)
	for _, id := range ws.order {
		cat := ws.categories[id]

		data, err := cat.Base.Marshal()
		if err != nil {
			return nil, err
		}
		out[filepath.Join(id, ws.BaseLang+".json")] = data

		for code, doc := range cat.Translations {
			ordered := reorderToBase(cat.Base, doc)
			data, err := ordered.Marshal()
			if err != nil {
				return nil, err
			}
			out[filepath.Join(id, code+".json")] = data
		}
	}
	return out, nil
}

// reorderToBase builds a render-time copy of doc with keys in base order.
// Orphan keys keep their relative order at the tail.
func reorderToBase(base, doc *langfile.Document) *langfile.Document {
	ordered := langfile.New(doc.CategoryID, doc.Language)
	for _, key := range base.Keys() {
		if v, ok := doc.Get(key); ok {
			ordered.Append(key, v)
		}
	}
	for _, key := range doc.Keys() {
		if !base.Has(key) {
			v, _ := doc.Get(key)
			ordered.Append(key, v)
		}
	}
	return ordered
}

// Save writes every rendered file under Root. Files are written one by one;
// no file's content depends on another having been written first, so an
// interrupted save leaves a loadable (if mixed-version) tree.
func (ws *Workspace) Save() error {
	files, err := ws.Render()
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		full := filepath.Join(ws.Root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(full, files[p], 0644); err != nil {
			return err
		}
	}
	return nil
}
