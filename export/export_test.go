package export

import (
	"reflect"
	"strings"
	"testing"

	"github.com/start-modpack/packlang/langfile"
	"github.com/start-modpack/packlang/workspace"
)

const marker = "[TODO]"

func doc(t *testing.T, category, lang string, pairs ...string) *langfile.Document {
	t.Helper()
	d := langfile.New(category, lang)
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := d.Append(pairs[i], pairs[i+1]); err != nil {
			t.Fatal(err)
		}
	}
	return d
}

func testWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	return workspace.Build("", "en_us", []*langfile.Document{
		doc(t, "items", "en_us", "a", "Apple", "b", "Bread", "c", "Cheese"),
		doc(t, "items", "ru_ru", "a", "Яблоко", "b", "", "c", "[TODO] сыр"),
		doc(t, "quests", "en_us", "q", "Quest"),
		doc(t, "quests", "ru_ru", "q", "Задание"),
	})
}

func TestUntranslated_EmptyAndTodoInBaseOrder(t *testing.T) {
	ws := testWorkspace(t)
	cat, _ := ws.Category("items")

	pairs := Untranslated(cat, "ru_ru", marker)
	want := []Pair{{Key: "b", BaseValue: "Bread"}, {Key: "c", BaseValue: "Cheese"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("pairs = %+v", pairs)
	}
}

func TestUntranslated_Completeness(t *testing.T) {
	ws := testWorkspace(t)
	cat, _ := ws.Category("items")
	ru := cat.Translations["ru_ru"]

	exported := make(map[string]int)
	for _, p := range Untranslated(cat, "ru_ru", marker) {
		exported[p.Key]++
	}
	for _, key := range cat.Base.Keys() {
		v, _ := ru.Get(key)
		untranslated := v == "" || strings.HasPrefix(v, marker)
		if untranslated && exported[key] != 1 {
			t.Errorf("key %s should appear exactly once, got %d", key, exported[key])
		}
		if !untranslated && exported[key] != 0 {
			t.Errorf("key %s should not be exported", key)
		}
	}
}

func TestUntranslated_MissingLanguageExportsAll(t *testing.T) {
	ws := testWorkspace(t)
	cat, _ := ws.Category("items")
	if got := Untranslated(cat, "fr_fr", marker); len(got) != cat.Base.Len() {
		t.Errorf("pairs = %+v", got)
	}
}

func TestAllUntranslated_CategoryOrderAndOmission(t *testing.T) {
	ws := testWorkspace(t)
	sections := AllUntranslated(ws, "ru_ru", marker)
	if len(sections) != 1 || sections[0].Category != "items" {
		t.Errorf("fully translated categories should be omitted: %+v", sections)
	}
	if Count(sections) != 2 {
		t.Errorf("count = %d", Count(sections))
	}
}

func TestWriteReport(t *testing.T) {
	ws := testWorkspace(t)
	var b strings.Builder
	if err := WriteReport(&b, "ru_ru", AllUntranslated(ws, "ru_ru", marker)); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		"Untranslated keys for ru_ru",
		"## items",
		"Key: b",
		"English: Bread",
		"Translation: [TODO]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "## quests") {
		t.Error("quests has nothing untranslated")
	}
}

func TestWriteTSV(t *testing.T) {
	ws := testWorkspace(t)
	var b strings.Builder
	if err := WriteTSV(&b, AllUntranslated(ws, "ru_ru", marker)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	if lines[0] != "items\tb\tBread" {
		t.Errorf("line = %q", lines[0])
	}
}
