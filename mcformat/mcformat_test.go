package mcformat

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	got := Extract("§eA shard of §lstarlight§r")
	if !reflect.DeepEqual(got, []rune{'e', 'l', 'r'}) {
		t.Errorf("codes = %q", string(got))
	}
}

func TestExtract_CaseInsensitive(t *testing.T) {
	got := Extract("§A§L")
	if !reflect.DeepEqual(got, []rune{'a', 'l'}) {
		t.Errorf("codes = %q", string(got))
	}
}

func TestExtract_TrailingMarker(t *testing.T) {
	if got := Extract("text§"); len(got) != 0 {
		t.Errorf("trailing marker should be ignored, got %q", string(got))
	}
}

func TestExtract_UnknownCodeIncluded(t *testing.T) {
	got := Extract("§z")
	if !reflect.DeepEqual(got, []rune{'z'}) {
		t.Errorf("codes = %q", string(got))
	}
	if Known('z') {
		t.Error("z should not be a known code")
	}
}

func TestDetect(t *testing.T) {
	if !Detect("§aGreen") {
		t.Error("should detect §a")
	}
	if Detect("plain text") {
		t.Error("no codes here")
	}
	if Detect("§zunknown only") {
		t.Error("unknown codes alone should not count as formatting")
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("§eA shard of §lstarlight§r"); got != "A shard of starlight" {
		t.Errorf("got %q", got)
	}
	if got := Strip("§zkeep unknown"); got != "§zkeep unknown" {
		t.Errorf("unknown sequences should be kept: %q", got)
	}
}

func TestSegments(t *testing.T) {
	segs := Segments("§aGreen §lbold§r plain")
	want := []Segment{
		{Text: "Green ", Color: "#55FF55"},
		{Text: "bold", Color: "#55FF55", Bold: true},
		{Text: " plain", Color: defaultColor},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("segments = %+v", segs)
	}
}

func TestSegments_ResetClearsStyles(t *testing.T) {
	segs := Segments("§l§nX§rY")
	if len(segs) != 2 {
		t.Fatalf("segments = %+v", segs)
	}
	if !segs[0].Bold || !segs[0].Underline {
		t.Errorf("first = %+v", segs[0])
	}
	if segs[1].Bold || segs[1].Underline || segs[1].Color != defaultColor {
		t.Errorf("reset not applied: %+v", segs[1])
	}
}
