package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/graytonio/slackmoji/lib/config"
	"github.com/graytonio/slackmoji/lib/render"
	"github.com/graytonio/slackmoji/lib/slackutils"
)

var channelListLimit int
var channelListChunkSize int
var channelListOutputFormat string

func init() {
	listCmd.PersistentFlags().IntVarP(&channelListLimit, "limit", "l", 500, "How many messages to return total")
	listCmd.PersistentFlags().IntVarP(&channelListChunkSize, "chunk", "c", 100, "How many messages to fetch at a time. Helpful for optimizing large fetches")
	listCmd.PersistentFlags().StringVar(&channelListOutputFormat, "format", "", "Format to output messages in, e.g. \"${user_id}: ${text}\". Messages are rendered with emoji when empty")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <channel>",
	Short: "List messages in a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := config.LoadSlackClient(); err != nil {
			return err
		}

		target, err := slackutils.ParseChannelTarget(ctx, args[0])
		if err != nil {
			return err
		}

		m, err := loadEmojiMap(ctx, true)
		if err != nil {
			return err
		}
		r := &render.Renderer{
			Emoji:          m,
			LargeThreshold: config.LargeThreshold(),
			Users:          make(map[string]string),
		}

		total := channelListLimit
		cursor := ""

		for total > 0 {
			resp, err := config.SlackClient.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
				ChannelID:          target,
				Limit:              channelListChunkSize,
				Cursor:             cursor,
				IncludeAllMetadata: true,
			})
			if err != nil {
				return err
			}
			cursor = resp.ResponseMetadata.Cursor

			for _, msg := range resp.Messages {
				if channelListOutputFormat != "" {
					fmt.Fprintln(cmd.OutOrStdout(), TSprintf(channelListOutputFormat, map[string]any{
						"user_id":   msg.User,
						"text":      msg.Text,
						"timestamp": msg.Timestamp,
					}))
					continue
				}

				if _, ok := r.Users[msg.User]; !ok && msg.User != "" {
					name, err := slackutils.GetUserName(ctx, msg.User)
					if err != nil {
						logrus.WithError(err).WithField("user", msg.User).Debug("could not look up user")
						name = msg.User
					}
					r.Users[msg.User] = name
				}

				fmt.Fprintln(cmd.OutOrStdout(), r.Message(render.Message{
					User:      msg.User,
					Timestamp: msg.Timestamp,
					Text:      msg.Text,
				}))
			}

			if cursor == "" {
				break
			}

			total = total - channelListChunkSize
		}

		return nil
	},
}
