// Package lockfile implements packlang.lock — a YAML file tracking MD5
// checksums of base-language strings per category. It makes stale
// translations detectable: if a base string changes after a key was
// translated, the stored checksum no longer matches and the translation
// needs review even though it is non-empty.
//
// The lock file lives in the project root next to .packlang.yaml.
package lockfile

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LockFileName is the default lock file name.
const LockFileName = "packlang.lock"

// Version is the lock file format version.
const Version = 1

// LockFile maps category → key → md5 of the base value at last sync.
type LockFile struct {
	Version   int                          `yaml:"version"`
	Checksums map[string]map[string]string `yaml:"checksums"`

	path string
}

// Load reads the lock file from dir, returning an empty lock file when
// none exists yet.
func Load(dir string) (*LockFile, error) {
	path := filepath.Join(dir, LockFileName)
	lf := &LockFile{
		Version:   Version,
		Checksums: make(map[string]map[string]string),
		path:      path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lf, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, lf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	lf.path = path
	if lf.Checksums == nil {
		lf.Checksums = make(map[string]map[string]string)
	}
	return lf, nil
}

// Save writes the lock file back to disk.
func (lf *LockFile) Save() error {
	if lf.path == "" {
		return fmt.Errorf("lock file path not set")
	}
	data, err := yaml.Marshal(lf)
	if err != nil {
		return fmt.Errorf("marshaling lock file: %w", err)
	}
	if err := os.WriteFile(lf.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", lf.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (lf *LockFile) Path() string { return lf.path }

// Hash computes the MD5 hex digest of a base string.
func Hash(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

// IsStale reports whether the base value for category/key differs from the
// checksum recorded at last sync. Keys never seen before are not stale.
func (lf *LockFile) IsStale(category, key, baseValue string) bool {
	keys, ok := lf.Checksums[category]
	if !ok {
		return false
	}
	old, ok := keys[key]
	if !ok {
		return false
	}
	return old != Hash(baseValue)
}

// UpdateBatch records checksums for a category's current base values.
func (lf *LockFile) UpdateBatch(category string, baseValues map[string]string) {
	if lf.Checksums[category] == nil {
		lf.Checksums[category] = make(map[string]string)
	}
	for key, v := range baseValues {
		lf.Checksums[category][key] = Hash(v)
	}
}

// Clean removes lock entries for keys no longer present in the category,
// preventing stale entries from accumulating.
func (lf *LockFile) Clean(category string, currentKeys []string) {
	existing := lf.Checksums[category]
	if existing == nil {
		return
	}
	valid := make(map[string]bool, len(currentKeys))
	for _, k := range currentKeys {
		valid[k] = true
	}
	for k := range existing {
		if !valid[k] {
			delete(existing, k)
		}
	}
}

// Categories returns the tracked category ids, sorted.
func (lf *LockFile) Categories() []string {
	out := make([]string, 0, len(lf.Checksums))
	for c := range lf.Checksums {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Stats returns the number of tracked categories and keys.
func (lf *LockFile) Stats() (categories, keys int) {
	categories = len(lf.Checksums)
	for _, m := range lf.Checksums {
		keys += len(m)
	}
	return
}
