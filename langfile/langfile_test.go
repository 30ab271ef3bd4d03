package langfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleLang = `{
  "item.start.crystal": "Star Crystal",
  "item.start.crystal.tooltip": "§eA shard of §lstarlight§r",
  "block.start.forge": "Celestial Forge"
}
`

func TestParse_PreservesOrder(t *testing.T) {
	d, err := Parse([]byte(sampleLang), "items", "en_us")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"item.start.crystal", "item.start.crystal.tooltip", "block.start.forge"}
	if !reflect.DeepEqual(d.Keys(), want) {
		t.Errorf("keys = %v, want %v", d.Keys(), want)
	}
}

func TestParse_GetSet(t *testing.T) {
	d, err := Parse([]byte(sampleLang), "items", "en_us")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := d.Get("block.start.forge"); v != "Celestial Forge" {
		t.Errorf("got %q", v)
	}
	if !d.Set("block.start.forge", "Небесная кузня") {
		t.Error("Set returned false")
	}
	if v, _ := d.Get("block.start.forge"); v != "Небесная кузня" {
		t.Errorf("got %q after Set", v)
	}
	if d.Set("no.such.key", "x") {
		t.Error("Set of unknown key should return false")
	}
}

func TestParse_RejectsNonString(t *testing.T) {
	_, err := Parse([]byte(`{"a": "ok", "b": 42}`), "items", "en_us")
	if err == nil {
		t.Fatal("expected error for non-string value")
	}
	if !strings.Contains(err.Error(), `"b"`) {
		t.Errorf("error should name the key: %v", err)
	}
}

func TestParse_RejectsNestedObject(t *testing.T) {
	if _, err := Parse([]byte(`{"a": {"nested": "x"}}`), "items", "en_us"); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestParse_RejectsDuplicateKey(t *testing.T) {
	if _, err := Parse([]byte(`{"a": "x", "a": "y"}`), "items", "en_us"); err == nil {
		t.Fatal("expected error for duplicate key")
	}
}

func TestAppend_DuplicateFails(t *testing.T) {
	d := New("items", "ru_ru")
	if err := d.Append("a", "x"); err != nil {
		t.Fatal(err)
	}
	if err := d.Append("a", "y"); err == nil {
		t.Error("expected duplicate key error")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	d, err := Parse([]byte(sampleLang), "items", "en_us")
	if err != nil {
		t.Fatal(err)
	}
	out, err := d.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != sampleLang {
		t.Errorf("round-trip mismatch:\ngot:  %q\nwant: %q", out, sampleLang)
	}
}

func TestReplace_RebuildsOrder(t *testing.T) {
	d, _ := Parse([]byte(`{"b": "2", "a": "1"}`), "items", "ru_ru")
	d.Replace([]string{"a", "b"}, []string{"1", "2"})
	if !reflect.DeepEqual(d.Keys(), []string{"a", "b"}) {
		t.Errorf("keys = %v", d.Keys())
	}
	if v, _ := d.Get("b"); v != "2" {
		t.Errorf("b = %q", v)
	}
}

func TestWriteFile_CreatesDirs(t *testing.T) {
	dir := t.TempDir()
	d := New("items", "ru_ru")
	d.Append("a", "б")

	path := filepath.Join(dir, "items", "ru_ru.json")
	if err := d.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path, "items", "ru_ru")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Get("a"); v != "б" {
		t.Errorf("a = %q", v)
	}
	if got.Path != path {
		t.Errorf("Path = %q", got.Path)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.json"), "items", "en_us")
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
