package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/graytonio/slackmoji/lib/config"
)

func init() {
	rootCmd.AddCommand(aliasCmd)
}

var aliasCmd = &cobra.Command{
	Use:   "alias <user|channel|emoji> name value",
	Short: "Save a channel, user or emoji to reference by name",
	Long:  "Save a channel or user ID to reference by name, or save an emoji under a custom :shortcode:.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "user":
			return config.AddUserCache(args[1], args[2])
		case "channel":
			return config.AddChannelCache(args[1], args[2])
		case "emoji":
			return config.AddCustomEmoji(args[1], args[2])
		default:
			return errors.New("valid save types are user, channel or emoji")
		}
	},
}
