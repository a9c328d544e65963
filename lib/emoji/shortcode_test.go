package emoji

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap() *Map {
	return NewMap([]Entry{
		{Name: "smile", Glyph: "😄"},
		{Name: "heart", Glyph: "❤️"},
		{Name: "thumbsup", Glyph: "👍"},
		{Name: "+1", Glyph: "👍"},
		{Name: "100", Glyph: "💯"},
		{Name: "flag-us", Glyph: "🇺🇸"},
		{Name: "family", Glyph: "👨‍👩‍👧"},
		{Name: "one", Glyph: "1️⃣"},
	})
}

func TestShortcodeRegex(t *testing.T) {
	for _, token := range []string{":100:", ":slightly_smiling_face:", ":+1:", ":e-mail:"} {
		assert.Equal(t, token, ShortcodeRegex.FindString(token), "%s", token)
	}
	for _, text := range []string{":incomplete", "::", ": space:", "a:b c:"} {
		assert.False(t, ShortcodeRegex.MatchString(text), "%s", text)
	}
}

func TestReplaceShortcodesWithUnicode(t *testing.T) {
	m := testMap()
	tests := []struct {
		text string
		want string
	}{
		{"Hello :smile:!", "Hello 😄!"},
		{"Keep :unknown: as is", "Keep :unknown: as is"},
		{":smile::heart:", "😄❤️"},
		{":+1: and :thumbsup:", "👍 and 👍"},
		{"time: 10:30:00", "time: 10:30:00"},
		{":incomplete", ":incomplete"},
		{"", ""},
		{"::smile:::", ":😄::"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReplaceShortcodesWithUnicode(tt.text, m), "%q", tt.text)
	}
}

func TestReplaceShortcodesDoesNotRescan(t *testing.T) {
	m := NewMap([]Entry{
		{Name: "a", Glyph: ":b:"},
		{Name: "b", Glyph: "😀"},
	})
	assert.Equal(t, ":b:", ReplaceShortcodesWithUnicode(":a:", m))
}

func TestReplaceUnicodeWithShortcodes(t *testing.T) {
	m := testMap()
	tests := []struct {
		text string
		want string
	}{
		{"Hello 😄!", "Hello :smile:!"},
		{"😄❤️", ":smile::heart:"},
		{"no names for 🦄", "no names for 🦄"},
		{"👨‍👩‍👧 home", ":family: home"},
		{"🇺🇸🇬🇧", ":flag-us:🇬🇧"},
		{"bare ❤", "bare :heart:"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReplaceUnicodeWithShortcodes(tt.text, m), "%q", tt.text)
	}
}

func TestShortcodeForEmoji(t *testing.T) {
	m := NewMap([]Entry{{Name: "thumbsup", Glyph: "👍"}, {Name: "+1", Glyph: "👍"}})

	name, ok := ShortcodeForEmoji("👍", m)
	require.True(t, ok)
	assert.Equal(t, "thumbsup", name)
	for i := 0; i < 10; i++ {
		again, _ := ShortcodeForEmoji("👍", m)
		assert.Equal(t, name, again)
	}

	_, ok = ShortcodeForEmoji("", m)
	assert.False(t, ok)
	_, ok = ShortcodeForEmoji("🦄", m)
	assert.False(t, ok)

	name, ok = ShortcodeForEmoji("❤", NewMap([]Entry{{Name: "heart", Glyph: "❤️"}}))
	require.True(t, ok)
	assert.Equal(t, "heart", name)
}

func TestMapFromCodesIsDeterministic(t *testing.T) {
	codes := map[string]string{":thumbsup:": "👍", ":+1:": "👍", "smile": "😄"}
	for i := 0; i < 5; i++ {
		m := MapFromCodes(codes)
		name, ok := ShortcodeForEmoji("👍", m)
		require.True(t, ok)
		assert.Equal(t, "+1", name)
		assert.Equal(t, []Entry{{"+1", "👍"}, {"smile", "😄"}, {"thumbsup", "👍"}}, m.Entries())
	}
}

func TestMapWith(t *testing.T) {
	base := testMap()
	overlay := base.With(Entry{Name: "smile", Glyph: "😃"}, Entry{Name: "party", Glyph: "🎉"})

	glyph, _ := overlay.Glyph("smile")
	assert.Equal(t, "😃", glyph)
	glyph, _ = base.Glyph("smile")
	assert.Equal(t, "😄", glyph)
	assert.Equal(t, "smile", overlay.Entries()[0].Name)
	assert.Equal(t, base.Len()+1, overlay.Len())
}

func TestNilAndEmptyMap(t *testing.T) {
	var m *Map
	assert.Equal(t, ":smile: 😄", ReplaceShortcodesWithUnicode(":smile: 😄", m))
	assert.Equal(t, ":smile: 😄", ReplaceUnicodeWithShortcodes(":smile: 😄", m))
	_, ok := ShortcodeForEmoji("😄", m)
	assert.False(t, ok)

	empty := NewMap(nil)
	assert.Equal(t, ":smile:", ReplaceShortcodesWithUnicode(":smile:", empty))
	assert.True(t, IsEmoji("😄"))
}

func TestShortcodeRoundTrip(t *testing.T) {
	m := testMap()
	for _, text := range []string{
		"Hello :smile:!",
		":thumbsup::heart::100:",
		":flag-us: :family: :one:",
		"nothing to convert",
	} {
		assert.Equal(t, text, ReplaceUnicodeWithShortcodes(ReplaceShortcodesWithUnicode(text, m), m))
	}

	// aliases come back as the first name registered for the glyph
	assert.Equal(t, ":thumbsup:", ReplaceUnicodeWithShortcodes(ReplaceShortcodesWithUnicode(":+1:", m), m))
}

func TestReverseIndexConcurrentUse(t *testing.T) {
	m := testMap()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, ok := ShortcodeForEmoji("👍", m)
			assert.True(t, ok)
			assert.Equal(t, "thumbsup", name)
		}()
	}
	wg.Wait()
}

func TestFindShortcodes(t *testing.T) {
	assert.Equal(t, []string{"wave", "+1"}, FindShortcodes("hi :wave: :+1: :bad"))
	assert.Nil(t, FindShortcodes("none"))
}
