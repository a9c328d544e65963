package config

import (
	"os"
	"path"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/graytonio/slackmoji/lib/emoji"
	"github.com/graytonio/slackmoji/lib/emojidata"
)

var (
	ErrInvalidShortcode = errors.New("shortcode names may only use letters, digits, '_', '+' and '-'")
	ErrInvalidGlyph     = errors.New("glyph must be a single emoji")
	ErrMapFileFormat    = errors.New("emoji map file must be a mapping of name to glyph")
)

// EmojiMap returns the configured name set with the entries of the emoji
// map file laid over it.
func EmojiMap() (*emoji.Map, error) {
	base, err := emojidata.ForNames(config.Emoji.Names)
	if err != nil {
		return nil, err
	}

	custom, err := LoadEmojiMap(config.Emoji.MapFile)
	if err != nil {
		return nil, err
	}
	if len(custom) == 0 {
		return base, nil
	}

	logrus.WithField("count", len(custom)).Debug("adding custom emoji")
	return base.With(custom...), nil
}

// LargeThreshold returns the configured large emoji threshold.
func LargeThreshold() int {
	if config.Emoji.LargeThreshold <= 0 {
		return emoji.LargeEmojiThreshold
	}
	return config.Emoji.LargeThreshold
}

// LoadEmojiMap reads a YAML (or JSON) mapping of shortcode names to glyphs.
// Entries keep the order they have in the file. A missing file is empty.
func LoadEmojiMap(file string) ([]emoji.Entry, error) {
	doc, err := readMapFile(file)
	if err != nil || doc == nil {
		return nil, err
	}

	mapping := doc.Content[0]
	entries := make([]emoji.Entry, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		entries = append(entries, emoji.Entry{
			Name:  mapping.Content[i].Value,
			Glyph: mapping.Content[i+1].Value,
		})
	}
	return entries, nil
}

// AddCustomEmoji stores name for glyph in the emoji map file. An existing
// name keeps its place in the file.
func AddCustomEmoji(name, glyph string) error {
	if !isShortcodeName(name) {
		return errors.Wrapf(ErrInvalidShortcode, "%q", name)
	}
	if !emoji.IsEmoji(glyph) {
		return errors.Wrapf(ErrInvalidGlyph, "%q", glyph)
	}

	file := config.Emoji.MapFile
	doc, err := readMapFile(file)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = &yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}

	mapping := doc.Content[0]
	mapping.Style = 0
	replaced := false
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == name {
			mapping.Content[i+1].SetString(glyph)
			replaced = true
			break
		}
	}
	if !replaced {
		key := &yaml.Node{}
		key.SetString(name)
		value := &yaml.Node{}
		value.SetString(glyph)
		mapping.Content = append(mapping.Content, key, value)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(path.Dir(file), 0755); err != nil {
		return err
	}
	logrus.WithField("name", name).WithField("file", file).Debug("saving custom emoji")
	return os.WriteFile(file, out, 0644)
}

func readMapFile(file string) (*yaml.Node, error) {
	if file == "" {
		return nil, nil
	}

	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", file)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	if len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errors.Wrap(ErrMapFileFormat, file)
	}
	return &doc, nil
}

var shortcodeName = regexp.MustCompile(`^[A-Za-z0-9_+\-]+$`)

func isShortcodeName(name string) bool {
	return shortcodeName.MatchString(name)
}
