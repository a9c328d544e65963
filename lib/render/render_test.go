package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/graytonio/slackmoji/lib/emoji"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testRenderer() *Renderer {
	return &Renderer{
		Emoji: emoji.NewMap([]emoji.Entry{
			{Name: "smile", Glyph: "😄"},
			{Name: "tada", Glyph: "🎉"},
		}),
		Users: map[string]string{"U123": "grayton"},
	}
}

func TestText(t *testing.T) {
	r := testRenderer()
	assert.Equal(t, "hi @grayton 😄 :parrot:", r.Text("hi <@U123> :smile: :parrot:"))
	assert.Equal(t, "<@U999>", r.Text("<@U999>"))
}

func TestIsLarge(t *testing.T) {
	r := testRenderer()
	assert.True(t, r.IsLarge(":tada: :smile:"))
	assert.True(t, r.IsLarge("🎉"))
	assert.False(t, r.IsLarge(":tada: yay"))
	assert.False(t, r.IsLarge(":tada::tada::tada::tada:"))

	r.LargeThreshold = 4
	assert.True(t, r.IsLarge(":tada::tada::tada::tada:"))
}

func TestMessage(t *testing.T) {
	r := testRenderer()

	out := r.Message(Message{User: "U123", Timestamp: "3661.000100", Text: "hello :smile:"})
	assert.Equal(t, "[01:01] grayton: hello 😄", out)

	out = r.Message(Message{User: "U456", Timestamp: "3661.000100", Text: ":tada::smile:"})
	lines := strings.Split(out, "\n")
	assert.Equal(t, "[01:01] U456:", lines[0])
	assert.Contains(t, out, "🎉  😄")

	// regional indicators split by a space still make one flag
	out = r.Message(Message{User: "U1", Timestamp: "60.1", Text: "🇺 🇸"})
	lines = strings.Split(out, "\n")
	assert.Equal(t, "[00:01] U1:", lines[0])
	assert.Contains(t, out, "🇺🇸")
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "00:00", formatTimestamp("86400.1"))
	assert.Equal(t, "01:01", formatTimestamp("3661.000100"))
	assert.Equal(t, "23:59", formatTimestamp("86399"))
	assert.Equal(t, "bogus", formatTimestamp("bogus"))
	assert.Equal(t, "12x.5", formatTimestamp("12x.5"))
	assert.Equal(t, "0.1", formatTimestamp("0.1"))
}
