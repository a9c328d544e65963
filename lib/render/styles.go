package render

import "github.com/charmbracelet/lipgloss"

var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	usernameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	mentionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// Emoji-only messages are set apart and spaced out since a terminal
	// cannot draw bigger glyphs.
	largeEmojiStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Shortcodes with no glyph, usually image-only workspace emoji
	unknownShortcodeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220")).
				Bold(true)
)
