package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/graytonio/slackmoji/lib/config"
	"github.com/graytonio/slackmoji/lib/emoji"
	"github.com/graytonio/slackmoji/lib/slackutils"
	"github.com/graytonio/slackmoji/lib/usage"
)

var sendRaw bool

func init() {
	sendCmd.Flags().BoolVar(&sendRaw, "raw", false, "Send the message without converting shortcodes")
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send <to> <message|->",
	Short: "Send a message to a channel or user",
	Long:  "Send a message to a channel ID, #channel or @user. Shortcodes are converted to emoji before sending.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		message, err := textArg(cmd, args[1])
		if err != nil {
			return err
		}

		if err := config.LoadSlackClient(); err != nil {
			return err
		}

		if !sendRaw {
			m, err := loadEmojiMap(ctx, true)
			if err != nil {
				return err
			}
			message = emoji.ReplaceShortcodesWithUnicode(message, m)
		}

		to, err := slackutils.ParseChannelTarget(ctx, args[0])
		if err != nil {
			return err
		}

		_, _, err = config.SlackClient.PostMessageContext(ctx, to, slack.MsgOptionText(message, false))
		if err != nil {
			return err
		}

		recordUsage(cmd, message)
		return nil
	},
}

// recordUsage counts the emoji in a sent message. Failures only cost the
// recent list so they are logged, not returned.
func recordUsage(cmd *cobra.Command, message string) {
	store, err := usage.Open(config.GetConfig().Storage.UsageDB)
	if err != nil {
		logrus.WithError(err).Warn("could not open usage db")
		return
	}
	defer store.Close()

	if err := store.Record(cmd.Context(), message); err != nil {
		logrus.WithError(err).Warn("could not record emoji usage")
	}
}
