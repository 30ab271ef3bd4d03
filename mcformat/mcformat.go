// Package mcformat handles Minecraft text formatting codes: a section sign
// (§) followed by one hex digit (colors) or one style letter. Everything
// here is a pure function over strings, so GUI collaborators can reuse the
// same extraction for live previews; nothing in this package renders.
package mcformat

import "strings"

// Marker is the control character introducing a formatting code.
const Marker = '§'

// Style describes one formatting code. Color is empty for style codes
// (bold, italic, ...).
type Style struct {
	Name  string
	Color string
}

// Codes maps the code character (lowercase) to its meaning.
var Codes = map[rune]Style{
	'0': {Name: "Black", Color: "#000000"},
	'1': {Name: "Dark Blue", Color: "#0000AA"},
	'2': {Name: "Dark Green", Color: "#00AA00"},
	'3': {Name: "Dark Aqua", Color: "#00AAAA"},
	'4': {Name: "Dark Red", Color: "#AA0000"},
	'5': {Name: "Dark Purple", Color: "#AA00AA"},
	'6': {Name: "Gold", Color: "#FFAA00"},
	'7': {Name: "Gray", Color: "#AAAAAA"},
	'8': {Name: "Dark Gray", Color: "#555555"},
	'9': {Name: "Blue", Color: "#5555FF"},
	'a': {Name: "Green", Color: "#55FF55"},
	'b': {Name: "Aqua", Color: "#55FFFF"},
	'c': {Name: "Red", Color: "#FF5555"},
	'd': {Name: "Light Purple", Color: "#FF55FF"},
	'e': {Name: "Yellow", Color: "#FFFF55"},
	'f': {Name: "White", Color: "#FFFFFF"},
	'k': {Name: "Obfuscated"},
	'l': {Name: "Bold"},
	'm': {Name: "Strikethrough"},
	'n': {Name: "Underline"},
	'o': {Name: "Italic"},
	'r': {Name: "Reset"},
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// Known reports whether c (case-insensitive) is a recognized code character.
func Known(c rune) bool {
	_, ok := Codes[lower(c)]
	return ok
}

// Extract returns the sequence of code characters in s, lowercased, in
// order of appearance. Unknown characters following the marker are included
// so callers can flag them; a trailing bare marker is ignored.
func Extract(s string) []rune {
	var codes []rune
	runes := []rune(s)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == Marker {
			codes = append(codes, lower(runes[i+1]))
			i++
		}
	}
	return codes
}

// Detect reports whether s contains at least one recognized formatting code.
func Detect(s string) bool {
	for _, c := range Extract(s) {
		if Known(c) {
			return true
		}
	}
	return false
}

// Strip removes all recognized formatting codes from s. Unknown marker
// sequences are left untouched.
func Strip(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == Marker && i+1 < len(runes) && Known(runes[i+1]) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// Segment is a run of text with uniform styling, for preview rendering.
type Segment struct {
	Text          string
	Color         string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// defaultColor is Minecraft's default text color.
const defaultColor = "#FFFFFF"

// Segments splits s into styled runs, applying codes left to right the way
// the game renderer does: a color code resets nothing else, §r resets
// everything.
func Segments(s string) []Segment {
	var segs []Segment
	cur := Segment{Color: defaultColor}

	flush := func() {
		if cur.Text != "" {
			segs = append(segs, cur)
			cur.Text = ""
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == Marker && i+1 < len(runes) && Known(runes[i+1]) {
			flush()
			c := lower(runes[i+1])
			switch c {
			case 'l':
				cur.Bold = true
			case 'o':
				cur.Italic = true
			case 'n':
				cur.Underline = true
			case 'm':
				cur.Strikethrough = true
			case 'k':
				// Obfuscated text previews as plain text.
			case 'r':
				cur = Segment{Color: defaultColor}
			default:
				cur.Color = Codes[c].Color
			}
			i++
			continue
		}
		cur.Text += string(runes[i])
	}
	flush()
	return segs
}
