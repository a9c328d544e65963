package emoji

import "strings"

// LargeEmojiThreshold is the most emoji a message may hold and still be
// rendered with large glyphs.
const LargeEmojiThreshold = 3

// IsOnlyEmoji reports whether text holds nothing but emoji once ASCII
// whitespace is removed. Empty and whitespace-only text is not emoji-only.
func IsOnlyEmoji(text string) bool {
	stripped := stripWhitespace(text)
	if stripped == "" {
		return false
	}

	var sb strings.Builder
	sb.Grow(len(stripped))
	for _, e := range ExtractEmoji(stripped) {
		sb.WriteString(e)
	}
	return sb.String() == stripped
}

// IsLargeEmojiOnly reports whether text is emoji-only and short enough to be
// rendered with large glyphs.
func IsLargeEmojiOnly(text string) bool {
	return IsEmojiOnlyWithin(text, LargeEmojiThreshold)
}

// IsEmojiOnlyWithin is IsLargeEmojiOnly with a caller supplied threshold.
func IsEmojiOnlyWithin(text string, threshold int) bool {
	return IsOnlyEmoji(text) && CountEmoji(text) <= threshold
}

// stripWhitespace drops ASCII space, tab, LF and CR. It works on bytes so
// invalid UTF-8 in text survives untouched.
func stripWhitespace(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case ' ', '\t', '\n', '\r':
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
