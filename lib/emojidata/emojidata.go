// Package emojidata provides the shortcode maps the client ships with and
// descriptions of individual emoji.
package emojidata

import (
	"regexp"
	"strings"
	"sync"

	"github.com/forPelevin/gomoji"
	kyokomi "github.com/kyokomi/emoji/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/graytonio/slackmoji/lib/emoji"
)

const (
	// NamesShortcodes selects Slack/GitHub style names such as "smile".
	NamesShortcodes = "shortcodes"
	// NamesSlugs selects CLDR derived slugs such as "grinning-face".
	NamesSlugs = "slugs"
)

var (
	ErrUnknownNames = errors.New("unknown emoji name set")
	ErrNotEmoji     = errors.New("not an emoji")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_+\-]+$`)

var (
	shortcodes     *emoji.Map
	shortcodesOnce sync.Once

	slugs     *emoji.Map
	slugsOnce sync.Once
)

// Shortcodes returns the standard shortcode map. Names that cannot appear in
// a :name: token are left out.
func Shortcodes() *emoji.Map {
	shortcodesOnce.Do(func() {
		codes := make(map[string]string)
		for name, glyph := range kyokomi.CodeMap() {
			name = strings.Trim(name, ":")
			if !validName.MatchString(name) {
				continue
			}
			codes[name] = strings.TrimSpace(glyph)
		}
		shortcodes = emoji.MapFromCodes(codes)
		logrus.WithField("count", shortcodes.Len()).Debug("built shortcode map")
	})
	return shortcodes
}

// Slugs returns a map keyed by emoji slugs.
func Slugs() *emoji.Map {
	slugsOnce.Do(func() {
		codes := make(map[string]string)
		for _, e := range gomoji.AllEmojis() {
			if !validName.MatchString(e.Slug) {
				continue
			}
			codes[e.Slug] = e.Character
		}
		slugs = emoji.MapFromCodes(codes)
		logrus.WithField("count", slugs.Len()).Debug("built slug map")
	})
	return slugs
}

// ForNames returns the map for a configured name set.
func ForNames(names string) (*emoji.Map, error) {
	switch names {
	case "", NamesShortcodes:
		return Shortcodes(), nil
	case NamesSlugs:
		return Slugs(), nil
	}
	return nil, errors.Wrapf(ErrUnknownNames, "%q", names)
}

// Info describes a single emoji.
type Info struct {
	Glyph     string `json:"glyph"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CodePoint string `json:"code_point"`
	Group     string `json:"group"`
	Subgroup  string `json:"subgroup"`
	Shortcode string `json:"shortcode,omitempty"`
}

// Describe looks up glyph in the Unicode emoji list. Shortcode is filled in
// from m when it has a name for the glyph.
func Describe(glyph string, m *emoji.Map) (Info, error) {
	if !emoji.IsEmoji(glyph) {
		return Info{}, errors.Wrapf(ErrNotEmoji, "%q", glyph)
	}

	info := Info{Glyph: glyph}
	if e, err := gomoji.GetInfo(glyph); err == nil {
		info.Name = e.UnicodeName
		info.Slug = e.Slug
		info.CodePoint = e.CodePoint
		info.Group = e.Group
		info.Subgroup = e.SubGroup
	} else {
		logrus.WithError(err).WithField("glyph", glyph).Debug("emoji missing from unicode list")
	}
	info.Shortcode, _ = emoji.ShortcodeForEmoji(glyph, m)

	return info, nil
}
