package emoji

import (
	"regexp"
	"strings"
)

// ShortcodeRegex matches a :name: token. Names use letters, digits, '_', '+'
// and '-'.
var ShortcodeRegex = regexp.MustCompile(`:[A-Za-z0-9_+\-]+:`)

// ReplaceShortcodesWithUnicode converts :name: tokens in text to the glyphs
// m holds for them. Unknown names are left as they are. Inserted glyphs are
// never scanned again.
func ReplaceShortcodesWithUnicode(text string, m *Map) string {
	if m.Len() == 0 {
		return text
	}

	return ShortcodeRegex.ReplaceAllStringFunc(text, func(match string) string {
		if glyph, ok := m.Glyph(match[1 : len(match)-1]); ok {
			return glyph
		}
		return match
	})
}

// ReplaceUnicodeWithShortcodes converts every emoji in text that has a name
// in m to its :name: form. Unmapped emoji and other text are left untouched.
func ReplaceUnicodeWithShortcodes(text string, m *Map) string {
	if m.Len() == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, o := range ExtractEmojiWithPositions(text) {
		name, ok := m.name(o.Emoji)
		if !ok {
			continue
		}
		sb.WriteString(text[last:o.Index])
		sb.WriteString(":" + name + ":")
		last = o.Index + o.Length
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// ShortcodeForEmoji returns the name m uses for glyph. With several names for
// one glyph the first one inserted into m is returned. The lookup ignores
// the emoji presentation selector, so "❤" finds the name registered for "❤️".
func ShortcodeForEmoji(glyph string, m *Map) (string, bool) {
	return m.name(glyph)
}

// FindShortcodes returns the names of all :name: tokens in text, known or
// not, in order of appearance.
func FindShortcodes(text string) []string {
	matches := ShortcodeRegex.FindAllString(text, -1)
	if matches == nil {
		return nil
	}

	names := make([]string, len(matches))
	for i, match := range matches {
		names[i] = match[1 : len(match)-1]
	}
	return names
}
