package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"grinning face", "😀", true},
		{"two emoji", "😀😀", false},
		{"empty", "", false},
		{"leading text", "hello😀", false},
		{"trailing text", "😀!", false},
		{"letter", "a", false},
		{"digit", "1", false},
		{"punctuation", "?", false},
		{"space", " ", false},
		{"text heart", "❤", true},
		{"emoji heart", "❤️", true},
		{"text presentation", "❤\uFE0E", false},
		{"skin tone", "👍🏽", true},
		{"lone modifier", "🏽", true},
		{"family", "👨‍👩‍👧", true},
		{"profession with tone", "👩🏽‍💻", true},
		{"rainbow flag", "🏳️‍🌈", true},
		{"flag", "🇺🇸", true},
		{"two flags", "🇺🇸🇬🇧", false},
		{"lone regional indicator", "🇺", false},
		{"keycap", "1️⃣", true},
		{"keycap without selector", "#\u20E3", true},
		{"digit with selector only", "1\uFE0F", false},
		{"subdivision flag", "\U0001F3F4\U000E0067\U000E0062\U000E0073\U000E0063\U000E0074\U000E007F", true},
		{"combining mark on emoji", "😀\u0301", false},
		{"dangling joiner", "😀\u200D", false},
		{"invalid utf8", "\xff", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmoji(tt.text), "IsEmoji(%q)", tt.text)
		})
	}
}

func TestClustersKeepSequencesWhole(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"ascii", "ab", []string{"a", "b"}},
		{"zwj", "x👨‍👩‍👧y", []string{"x", "👨‍👩‍👧", "y"}},
		{"flags", "🇺🇸🇬🇧", []string{"🇺🇸", "🇬🇧"}},
		{"odd regional indicators", "🇺🇸🇬", []string{"🇺🇸", "🇬"}},
		{"keycap", "#️⃣1", []string{"#️⃣", "1"}},
		{"modifier", "👋🏿👋", []string{"👋🏿", "👋"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clusters(tt.text))
		})
	}
}

func TestIsEmojiCluster(t *testing.T) {
	for _, cluster := range []string{"😀", "©", "🇯🇵", "*️⃣", "👩‍❤️‍👨", "❤️‍🔥", "🫱🏻‍🫲🏼"} {
		require.True(t, IsEmojiCluster(cluster), "%q", cluster)
	}
	for _, cluster := range []string{"", "a", "e\u0301", "🇯", "1", "\u200D", "\uFE0F"} {
		require.False(t, IsEmojiCluster(cluster), "%q", cluster)
	}
}

func TestIsPictographic(t *testing.T) {
	assert.True(t, IsPictographic(0x1F600))
	assert.True(t, IsPictographic(0x00A9))
	assert.False(t, IsPictographic('A'))
	assert.False(t, IsPictographic(0x1F3FB))
	assert.True(t, IsModifier(0x1F3FB))
	assert.False(t, IsModifier(0x1F3FA))
	assert.True(t, IsRegionalIndicator(0x1F1E6))
	assert.False(t, IsRegionalIndicator(0x1F200))
}
