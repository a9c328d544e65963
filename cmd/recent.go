package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graytonio/slackmoji/lib/config"
	"github.com/graytonio/slackmoji/lib/emoji"
	"github.com/graytonio/slackmoji/lib/usage"
)

var recentLimit int
var recentReset bool

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "How many emoji to show")
	recentCmd.Flags().BoolVar(&recentReset, "reset", false, "Forget all recorded usage")
	rootCmd.AddCommand(recentCmd)
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the emoji you send most",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := usage.Open(config.GetConfig().Storage.UsageDB)
		if err != nil {
			return err
		}
		defer store.Close()

		if recentReset {
			return store.Reset(cmd.Context())
		}

		m, err := config.EmojiMap()
		if err != nil {
			return err
		}

		entries, err := store.Top(cmd.Context(), recentLimit)
		if err != nil {
			return err
		}

		for _, e := range entries {
			name, _ := emoji.ShortcodeForEmoji(e.Glyph, m)
			if name != "" {
				name = ":" + name + ":"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", e.Glyph, e.Count, name)
		}
		return nil
	},
}
