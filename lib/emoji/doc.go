// Package emoji finds emoji in chat text and converts between :shortcode:
// tokens and Unicode glyphs.
//
// Text is split into extended grapheme clusters, so skin tone modifiers,
// ZWJ sequences, flags, keycaps and presentation selectors are always seen
// as one emoji. Every function is total: unknown names, unknown glyphs and
// invalid UTF-8 pass through without error.
//
// Offsets reported by ExtractEmojiWithPositions are byte offsets into the Go
// string that was scanned.
package emoji
