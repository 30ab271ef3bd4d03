// Package langfile implements reading and writing of Minecraft language
// files: flat JSON objects mapping translation keys to strings.
//
//	{
//	    "item.start.crystal": "Star Crystal",
//	    "item.start.crystal.tooltip": "§eA shard of §lstarlight§r"
//	}
//
// One file holds one category in one language (e.g. lang/items/ru_ru.json).
// Key order from the source file is preserved on parse and on write, so a
// round-trip without edits produces byte-identical output.
package langfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// entry is a single key/value pair in document order.
type entry struct {
	key   string
	value string
}

// Document is one category's translations for one language.
type Document struct {
	// CategoryID is the category (sub-directory) this file belongs to.
	CategoryID string
	// Language is the language code (file name stem, e.g. "en_us").
	Language string
	// Path is the source file path, empty for documents built in memory.
	Path string

	// entries stores all keys in document order.
	entries []entry
	// index maps key → index in entries.
	index map[string]int
}

// New creates an empty Document.
func New(categoryID, language string) *Document {
	return &Document{
		CategoryID: categoryID,
		Language:   language,
		index:      make(map[string]int),
	}
}

// ParseFile reads and parses a language file from disk.
func ParseFile(path, categoryID, language string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data, categoryID, language)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Parse parses language file content from a byte slice. Values must all be
// JSON strings; anything else (numbers, objects, nested arrays) is rejected.
// Key order is preserved via json.Decoder token streaming.
func Parse(data []byte, categoryID, language string) (*Document, error) {
	d := New(categoryID, language)

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing language file: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing language file: expected '{', got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %T", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing value for %q: %w", key, err)
		}
		value, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("key %q: value is %v, want a string", key, valTok)
		}

		if _, dup := d.index[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		d.index[key] = len(d.entries)
		d.entries = append(d.entries, entry{key: key, value: value})
	}

	return d, nil
}

// Len returns the number of entries.
func (d *Document) Len() int { return len(d.entries) }

// Keys returns all keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.key
	}
	return keys
}

// Has reports whether key exists in the document.
func (d *Document) Has(key string) bool {
	_, ok := d.index[key]
	return ok
}

// Get returns the value for key.
func (d *Document) Get(key string) (string, bool) {
	if idx, ok := d.index[key]; ok {
		return d.entries[idx].value, true
	}
	return "", false
}

// Set updates the value of an existing key.
// Returns false if the key is not present.
func (d *Document) Set(key, value string) bool {
	idx, ok := d.index[key]
	if !ok {
		return false
	}
	d.entries[idx].value = value
	return true
}

// Append adds a new key at the end of the document.
// Returns an error if the key already exists.
func (d *Document) Append(key, value string) error {
	if _, dup := d.index[key]; dup {
		return fmt.Errorf("duplicate key %q", key)
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, entry{key: key, value: value})
	return nil
}

// Values returns a key → value copy of the document.
func (d *Document) Values() map[string]string {
	m := make(map[string]string, len(d.entries))
	for _, e := range d.entries {
		m[e.key] = e.value
	}
	return m
}

// Replace swaps the document's content for the given ordered pairs.
// Used by the synchronizer to rebuild a document in base order.
func (d *Document) Replace(keys, values []string) {
	d.entries = d.entries[:0]
	d.index = make(map[string]int, len(keys))
	for i, k := range keys {
		d.index[k] = len(d.entries)
		d.entries = append(d.entries, entry{key: k, value: values[i]})
	}
}

// Marshal serialises the document to JSON with 2-space indentation,
// preserving entry order.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, e := range d.entries {
		keyBytes, _ := json.Marshal(e.key)
		valBytes, _ := json.Marshal(e.value)
		buf.WriteString("  ")
		buf.Write(keyBytes)
		buf.WriteString(": ")
		buf.Write(valBytes)
		if i < len(d.entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// WriteFile serialises and writes the document to path.
func (d *Document) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
