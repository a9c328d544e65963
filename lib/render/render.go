// Package render formats chat messages for the terminal.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/graytonio/slackmoji/lib/emoji"
)

var userMentionRe = regexp.MustCompile(`<@(U[A-Z0-9]+)>`)

// Message is the part of a chat message the renderer needs.
type Message struct {
	User      string
	Timestamp string
	Text      string
}

// Renderer turns message text into styled terminal output.
type Renderer struct {
	Emoji          *emoji.Map
	LargeThreshold int
	Width          int
	// Users maps user IDs to display names for mentions and authors.
	Users map[string]string
}

// Text converts shortcodes to glyphs and styles mentions and shortcodes
// that have no glyph.
func (r *Renderer) Text(text string) string {
	text = r.replaceMentions(text)
	text = emoji.ReplaceShortcodesWithUnicode(text, r.Emoji)
	return emoji.ShortcodeRegex.ReplaceAllStringFunc(text, func(match string) string {
		return unknownShortcodeStyle.Render(match)
	})
}

// IsLarge reports whether text should be drawn as large emoji once its
// shortcodes are converted.
func (r *Renderer) IsLarge(text string) bool {
	threshold := r.LargeThreshold
	if threshold <= 0 {
		threshold = emoji.LargeEmojiThreshold
	}
	return emoji.IsEmojiOnlyWithin(emoji.ReplaceShortcodesWithUnicode(text, r.Emoji), threshold)
}

// Message renders a single message line.
func (r *Renderer) Message(m Message) string {
	username := m.User
	if name, ok := r.Users[m.User]; ok {
		username = name
	}

	header := fmt.Sprintf("%s %s:",
		timestampStyle.Render("["+formatTimestamp(m.Timestamp)+"]"),
		usernameStyle.Render(username),
	)

	line := header + " " + r.Text(m.Text)
	if r.IsLarge(m.Text) {
		// whitespace goes first so split regional indicators pair up the
		// same way IsLarge saw them
		converted := emoji.ReplaceShortcodesWithUnicode(m.Text, r.Emoji)
		glyphs := emoji.ExtractEmoji(strings.Join(strings.Fields(converted), ""))
		if len(glyphs) > 0 {
			line = header + "\n" + largeEmojiStyle.Render(strings.Join(glyphs, "  "))
		}
	}

	if r.Width > 0 {
		return lipgloss.NewStyle().Width(r.Width).Render(line)
	}
	return line
}

func (r *Renderer) replaceMentions(text string) string {
	return userMentionRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := userMentionRe.FindStringSubmatch(match)
		if name, ok := r.Users[sub[1]]; ok {
			return mentionStyle.Render("@" + name)
		}
		return match
	})
}

// formatTimestamp shows HH:MM (UTC) of a Slack "epoch.seq" timestamp.
// Anything that does not parse is returned as is.
func formatTimestamp(ts string) string {
	seconds, _, _ := strings.Cut(ts, ".")
	epoch, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil || epoch <= 0 {
		return ts
	}
	return time.Unix(epoch, 0).UTC().Format("15:04")
}
