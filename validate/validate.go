// Package validate checks translated strings against the structural
// contract of their base string: placeholder sets, formatting-code sets,
// and a couple of heuristic signals. Validation never judges meaning and
// never fails an operation — violations are returned as values and the
// caller decides what to surface.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/start-modpack/packlang/langfile"
	"github.com/start-modpack/packlang/mcformat"
)

// Kind classifies a violation.
type Kind int

const (
	// PlaceholderMismatch: the multiset of placeholder tokens differs
	// between base and translation.
	PlaceholderMismatch Kind = iota
	// FormattingMismatch: the set of formatting codes differs, or the
	// translation introduces an unknown code.
	FormattingMismatch
	// EmptyValue: translation is empty while base is not. Expected for
	// not-yet-translated entries, so lower severity.
	EmptyValue
	// MarkedTodo: translation carries the reserved TODO marker prefix.
	MarkedTodo
	// SuspiciousIdentical: translation equals a non-trivial base string,
	// likely copy-pasted. A warning, never a hard failure.
	SuspiciousIdentical
)

func (k Kind) String() string {
	switch k {
	case PlaceholderMismatch:
		return "placeholder-mismatch"
	case FormattingMismatch:
		return "formatting-mismatch"
	case EmptyValue:
		return "empty"
	case MarkedTodo:
		return "todo"
	case SuspiciousIdentical:
		return "identical"
	}
	return "unknown"
}

// Hard reports whether the violation kind indicates structural breakage
// (as opposed to expected translation-in-progress states).
func (k Kind) Hard() bool {
	return k == PlaceholderMismatch || k == FormattingMismatch
}

// Violation is one finding for one entry.
type Violation struct {
	Category string
	Language string
	Key      string
	Kind     Kind
	Message  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Key, v.Kind, v.Message)
}

// DefaultTodoMarker is the reserved prefix marking an entry as intentionally
// left untranslated.
const DefaultTodoMarker = "[TODO]"

// DefaultIdenticalThreshold is the minimum base length (in runes) before an
// identical translation is reported as suspicious. Short strings ("OK",
// "HP") are legitimately identical across languages.
const DefaultIdenticalThreshold = 12

// Validator holds the tunable parts of the structural contract.
type Validator struct {
	TodoMarker         string
	IdenticalThreshold int
}

// New returns a Validator with default settings.
func New() *Validator {
	return &Validator{
		TodoMarker:         DefaultTodoMarker,
		IdenticalThreshold: DefaultIdenticalThreshold,
	}
}

// placeholderRe matches both placeholder families found in modpack strings:
// printf-style ("%1$s", "%2$d", plain "%s"/"%d") and brace-style ("{name}").
var placeholderRe = regexp.MustCompile(`%\d+\$[a-zA-Z]|%[sd]|\{[^{}]+\}`)

// Placeholders extracts placeholder tokens from s in order of appearance.
func Placeholders(s string) []string {
	return placeholderRe.FindAllString(s, -1)
}

// Document validates doc against base, one pass per entry, in base key
// order. Keys absent from base (orphans) are never validated.
func (v *Validator) Document(base, doc *langfile.Document) []Violation {
	var out []Violation
	for _, key := range base.Keys() {
		baseVal, _ := base.Get(key)
		transVal, _ := doc.Get(key)
		for _, f := range v.Entry(baseVal, transVal) {
			out = append(out, Violation{
				Category: doc.CategoryID,
				Language: doc.Language,
				Key:      key,
				Kind:     f.Kind,
				Message:  f.Message,
			})
		}
	}
	return out
}

// Finding is a violation without location, produced by Entry.
type Finding struct {
	Kind    Kind
	Message string
}

// Entry validates a single translated string against its base string.
func (v *Validator) Entry(base, translated string) []Finding {
	if translated == "" {
		if base == "" {
			return nil
		}
		return []Finding{{Kind: EmptyValue, Message: "not translated"}}
	}
	if v.TodoMarker != "" && strings.HasPrefix(translated, v.TodoMarker) {
		return []Finding{{Kind: MarkedTodo, Message: "marked " + v.TodoMarker}}
	}

	var out []Finding
	if f, ok := checkPlaceholders(base, translated); ok {
		out = append(out, f)
	}
	if f, ok := checkFormatting(base, translated); ok {
		out = append(out, f)
	}
	if translated == base && len([]rune(base)) > v.IdenticalThreshold {
		out = append(out, Finding{
			Kind:    SuspiciousIdentical,
			Message: "identical to base text, possibly untranslated",
		})
	}
	return out
}

// checkPlaceholders compares placeholder token counts. Reordering is fine;
// a differing count for any identifier is not.
func checkPlaceholders(base, translated string) (Finding, bool) {
	want := tokenCounts(Placeholders(base))
	got := tokenCounts(Placeholders(translated))
	if countsEqual(want, got) {
		return Finding{}, false
	}
	return Finding{
		Kind: PlaceholderMismatch,
		Message: fmt.Sprintf("expected %v, got %v",
			formatCounts(want), formatCounts(got)),
	}, true
}

// checkFormatting compares formatting codes as sets: every code in base must
// appear in the translation, no code absent from base may be introduced, and
// unknown marker sequences are rejected outright.
func checkFormatting(base, translated string) (Finding, bool) {
	baseSet := make(map[rune]bool)
	for _, c := range mcformat.Extract(base) {
		if mcformat.Known(c) {
			baseSet[c] = true
		}
	}

	var missing, extra, unknown []rune
	transSet := make(map[rune]bool)
	for _, c := range mcformat.Extract(translated) {
		if !mcformat.Known(c) {
			if !transSet[c] {
				unknown = append(unknown, c)
				transSet[c] = true
			}
			continue
		}
		if !transSet[c] {
			transSet[c] = true
			if !baseSet[c] {
				extra = append(extra, c)
			}
		}
	}
	for c := range baseSet {
		if !transSet[c] {
			missing = append(missing, c)
		}
	}

	if len(missing) == 0 && len(extra) == 0 && len(unknown) == 0 {
		return Finding{}, false
	}

	sortRunes(missing)
	sortRunes(extra)
	sortRunes(unknown)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing "+codeList(missing))
	}
	if len(extra) > 0 {
		parts = append(parts, "introduced "+codeList(extra))
	}
	if len(unknown) > 0 {
		parts = append(parts, "unknown "+codeList(unknown))
	}
	return Finding{
		Kind:    FormattingMismatch,
		Message: strings.Join(parts, ", "),
	}, true
}

func tokenCounts(tokens []string) map[string]int {
	m := make(map[string]int, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

func countsEqual(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, n := range a {
		if b[k] != n {
			return false
		}
	}
	return true
}

func formatCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		if m[k] == 1 {
			parts = append(parts, k)
		} else {
			parts = append(parts, fmt.Sprintf("%s×%d", k, m[k]))
		}
	}
	return strings.Join(parts, " ")
}

func codeList(codes []rune) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = "§" + string(c)
	}
	return strings.Join(parts, " ")
}

func sortRunes(rs []rune) {
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
}
