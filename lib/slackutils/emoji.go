package slackutils

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/graytonio/slackmoji/lib/config"
	"github.com/graytonio/slackmoji/lib/emoji"
)

const aliasPrefix = "alias:"

// GetCustomEmoji fetches the workspace emoji and returns the ones that stand
// for a standard glyph.
func GetCustomEmoji(ctx context.Context, standard *emoji.Map) ([]emoji.Entry, error) {
	custom, err := config.SlackClient.GetEmojiContext(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithField("count", len(custom)).Debug("fetched workspace emoji")
	return ResolveCustomEmoji(custom, standard), nil
}

// ResolveCustomEmoji turns Slack's emoji.list result into map entries.
// Values are either an image URL or "alias:<name>"; aliases are followed
// through other custom emoji until they reach a name in standard. Image
// emoji have no glyph and are skipped.
func ResolveCustomEmoji(custom map[string]string, standard *emoji.Map) []emoji.Entry {
	names := make([]string, 0, len(custom))
	for name := range custom {
		names = append(names, name)
	}
	sort.Strings(names)

	var entries []emoji.Entry
	for _, name := range names {
		glyph, ok := resolveAlias(name, custom, standard, map[string]bool{})
		if !ok {
			logrus.WithField("emoji", name).Debug("custom emoji has no unicode form")
			continue
		}
		entries = append(entries, emoji.Entry{Name: name, Glyph: glyph})
	}
	return entries
}

func resolveAlias(name string, custom map[string]string, standard *emoji.Map, seen map[string]bool) (string, bool) {
	if seen[name] {
		return "", false
	}
	seen[name] = true

	val, ok := custom[name]
	if !ok {
		return standard.Glyph(name)
	}

	target, ok := strings.CutPrefix(val, aliasPrefix)
	if !ok {
		return "", false
	}
	return resolveAlias(target, custom, standard, seen)
}
