package cmd

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/graytonio/slackmoji/lib/config"
	"github.com/graytonio/slackmoji/lib/emoji"
	"github.com/graytonio/slackmoji/lib/slackutils"
)

// loadEmojiMap returns the configured shortcode map. With workspace set the
// custom emoji of the logged in workspace are added on top.
func loadEmojiMap(ctx context.Context, workspace bool) (*emoji.Map, error) {
	m, err := config.EmojiMap()
	if err != nil {
		return nil, err
	}
	if !workspace {
		return m, nil
	}

	if config.SlackClient == nil {
		if err := config.LoadSlackClient(); err != nil {
			return nil, err
		}
	}

	custom, err := slackutils.GetCustomEmoji(ctx, m)
	if err != nil {
		return nil, err
	}
	logrus.WithField("count", len(custom)).Debug("adding workspace emoji")
	return m.With(custom...), nil
}
