package workspace

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by StructureError.
var (
	ErrNoBase          = errors.New("no base language file")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrUnknownKey      = errors.New("unknown key")
	ErrBaseReadOnly    = errors.New("base language is read-only")
)

// StructureError reports a structural problem in the workspace tree,
// identifying the category/language/key it concerns.
type StructureError struct {
	Path     string
	Category string
	Language string
	Key      string
	Err      error
}

func (e *StructureError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = e.Category
		if e.Language != "" {
			loc += "/" + e.Language
		}
		if e.Key != "" {
			loc += ": " + e.Key
		}
	}
	if loc == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }

// DuplicateLanguageError reports an attempt to add a language that already
// exists in the workspace (or equals the base language). The workspace is
// left unchanged.
type DuplicateLanguageError struct {
	Language string
}

func (e *DuplicateLanguageError) Error() string {
	return fmt.Sprintf("language %q already exists", e.Language)
}
