package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/start-modpack/packlang/langfile"
)

func writeFile(t *testing.T, root, category, lang, content string) {
	t.Helper()
	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, lang+".json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func testTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "items", "en_us", `{"item.a": "Apple", "item.b": "Bread"}`)
	writeFile(t, root, "items", "ru_ru", `{"item.a": "Яблоко", "item.b": ""}`)
	writeFile(t, root, "quests", "en_us", `{"quest.start": "Begin your journey"}`)
	return root
}

func TestLoad_BuildsTree(t *testing.T) {
	ws, err := Load(testTree(t), "en_us")
	if err != nil {
		t.Fatal(err)
	}
	if len(ws.Categories()) != 2 {
		t.Fatalf("categories = %d, want 2", len(ws.Categories()))
	}
	cat, ok := ws.Category("items")
	if !ok {
		t.Fatal("items category missing")
	}
	if cat.Base == nil || cat.Base.Language != "en_us" {
		t.Fatal("base document missing")
	}
	if v, _ := cat.Translations["ru_ru"].Get("item.a"); v != "Яблоко" {
		t.Errorf("item.a = %q", v)
	}
	if got := ws.Languages(); !reflect.DeepEqual(got, []string{"ru_ru"}) {
		t.Errorf("languages = %v", got)
	}
}

func TestLoad_MissingBaseIsNonFatal(t *testing.T) {
	root := testTree(t)
	writeFile(t, root, "broken", "ru_ru", `{"a": "б"}`)

	ws, err := Load(root, "en_us")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ws.Category("broken"); ok {
		t.Error("broken category should be skipped")
	}
	if len(ws.Categories()) != 2 {
		t.Errorf("other categories should still load, got %d", len(ws.Categories()))
	}

	found := false
	for _, b := range ws.Broken {
		if b.Category == "broken" && errors.Is(b.Err, ErrNoBase) {
			found = true
		}
	}
	if !found {
		t.Errorf("Broken should record the missing base, got %+v", ws.Broken)
	}
}

func TestLoad_BadTranslationFileIsRecorded(t *testing.T) {
	root := testTree(t)
	writeFile(t, root, "items", "de_de", `{"item.a": 42}`)

	ws, err := Load(root, "en_us")
	if err != nil {
		t.Fatal(err)
	}
	cat, _ := ws.Category("items")
	if cat == nil {
		t.Fatal("items should still load")
	}
	if _, ok := cat.Translations["de_de"]; ok {
		t.Error("unparseable de_de should be skipped")
	}
	found := false
	for _, b := range ws.Broken {
		if b.Category == "items" && b.Language == "de_de" {
			found = true
		}
	}
	if !found {
		t.Errorf("Broken should record items/de_de, got %+v", ws.Broken)
	}
}

func TestLoad_SameKeyAcrossCategories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "items", "en_us", `{"name": "Item Name"}`)
	writeFile(t, root, "quests", "en_us", `{"name": "Quest Name"}`)

	ws, err := Load(root, "en_us")
	if err != nil {
		t.Fatal(err)
	}
	items, _ := ws.Category("items")
	quests, _ := ws.Category("quests")
	iv, _ := items.Base.Get("name")
	qv, _ := quests.Base.Get("name")
	if iv == qv {
		t.Fatal("test setup broken")
	}
	if iv != "Item Name" || qv != "Quest Name" {
		t.Errorf("category+key identity violated: %q / %q", iv, qv)
	}
}

func TestBuild_FromParsedDocuments(t *testing.T) {
	base := langfile.New("items", "en_us")
	base.Append("a", "Apple")
	ru := langfile.New("items", "ru_ru")
	ru.Append("a", "Яблоко")
	orphanOnly := langfile.New("lost", "fr_fr")
	orphanOnly.Append("x", "y")

	ws := Build("/tmp/lang", "en_us", []*langfile.Document{base, ru, orphanOnly})
	if _, ok := ws.Category("items"); !ok {
		t.Error("items missing")
	}
	if _, ok := ws.Category("lost"); ok {
		t.Error("category without base should be broken")
	}
	if len(ws.Broken) != 1 {
		t.Errorf("Broken = %+v", ws.Broken)
	}
}

func TestRender_TranslationsFollowBaseOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "items", "en_us", `{"first": "1", "second": "2", "third": "3"}`)
	// Translated file on disk in a scrambled order.
	writeFile(t, root, "items", "ru_ru", `{"third": "три", "first": "один", "second": "два"}`)

	ws, err := Load(root, "en_us")
	if err != nil {
		t.Fatal(err)
	}
	files, err := ws.Render()
	if err != nil {
		t.Fatal(err)
	}

	out := string(files[filepath.Join("items", "ru_ru.json")])
	f := strings.Index(out, `"first"`)
	s := strings.Index(out, `"second"`)
	th := strings.Index(out, `"third"`)
	if !(f < s && s < th) {
		t.Errorf("translated output not in base order:\n%s", out)
	}
}

func TestRender_KeepsOrphansAtTail(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "items", "en_us", `{"a": "1"}`)
	writeFile(t, root, "items", "ru_ru", `{"stray": "x", "a": "один"}`)

	ws, _ := Load(root, "en_us")
	files, err := ws.Render()
	if err != nil {
		t.Fatal(err)
	}
	out := string(files[filepath.Join("items", "ru_ru.json")])
	if !strings.Contains(out, `"stray"`) {
		t.Error("unsynced save must not drop orphan keys")
	}
	if strings.Index(out, `"a"`) > strings.Index(out, `"stray"`) {
		t.Error("orphans should follow base-ordered keys")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	root := testTree(t)
	ws, err := Load(root, "en_us")
	if err != nil {
		t.Fatal(err)
	}
	if err := ws.Set("items", "ru_ru", "item.b", "Хлеб"); err != nil {
		t.Fatal(err)
	}
	if err := ws.Save(); err != nil {
		t.Fatal(err)
	}

	again, err := Load(root, "en_us")
	if err != nil {
		t.Fatal(err)
	}
	cat, _ := again.Category("items")
	if v, _ := cat.Translations["ru_ru"].Get("item.b"); v != "Хлеб" {
		t.Errorf("item.b = %q after round-trip", v)
	}
}

func TestSet_Errors(t *testing.T) {
	ws, err := Load(testTree(t), "en_us")
	if err != nil {
		t.Fatal(err)
	}

	var serr *StructureError
	if err := ws.Set("items", "en_us", "item.a", "x"); !errors.As(err, &serr) || !errors.Is(err, ErrBaseReadOnly) {
		t.Errorf("editing base should be refused, got %v", err)
	}
	if err := ws.Set("nope", "ru_ru", "item.a", "x"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("got %v", err)
	}
	if err := ws.Set("items", "ru_ru", "nope", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("got %v", err)
	}
}

func TestSearch(t *testing.T) {
	ws, err := Load(testTree(t), "en_us")
	if err != nil {
		t.Fatal(err)
	}
	results := ws.Search("яблоко", "")
	if len(results) != 1 || results[0].Key != "item.a" {
		t.Errorf("results = %+v", results)
	}
	if got := ws.Search("apple", "ru_ru"); len(got) != 1 {
		t.Errorf("base-text match should count: %+v", got)
	}
	if got := ws.Search("zzz", ""); len(got) != 0 {
		t.Errorf("unexpected matches: %+v", got)
	}
}
