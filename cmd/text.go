package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/graytonio/slackmoji/lib/config"
	"github.com/graytonio/slackmoji/lib/emoji"
	"github.com/graytonio/slackmoji/lib/emojidata"
)

var detectThreshold int
var extractOutputFormat string
var useWorkspaceEmoji bool
var infoOutputFormat string

func init() {
	detectCmd.Flags().IntVarP(&detectThreshold, "threshold", "t", 0, "Largest emoji count still drawn large (defaults to emoji.large_threshold)")
	extractCmd.Flags().StringVar(&extractOutputFormat, "format", "${index}\t${length}\t${emoji}", "Format to output emoji in")
	infoCmd.Flags().StringVar(&infoOutputFormat, "format", "${glyph} ${name}\nslug: ${slug}\ncode point: ${code_point}\ngroup: ${group} / ${subgroup}\nshortcode: ${shortcode}", "Format to output emoji info in")

	for _, c := range []*cobra.Command{encodeCmd, decodeCmd, shortcodeCmd} {
		c.Flags().BoolVarP(&useWorkspaceEmoji, "workspace", "w", false, "Include custom emoji from the slack workspace")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(detectCmd, extractCmd, infoCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <text|->",
	Short: "Report how text would be classified as emoji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(cmd, args[0])
		if err != nil {
			return err
		}

		threshold := detectThreshold
		if threshold <= 0 {
			threshold = config.LargeThreshold()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "emoji:      %t\n", emoji.IsEmoji(text))
		fmt.Fprintf(out, "only emoji: %t\n", emoji.IsOnlyEmoji(text))
		fmt.Fprintf(out, "large:      %t\n", emoji.IsEmojiOnlyWithin(text, threshold))
		fmt.Fprintf(out, "count:      %d\n", emoji.CountEmoji(text))
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract <text|->",
	Short: "List the emoji in text with their byte positions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(cmd, args[0])
		if err != nil {
			return err
		}

		for _, o := range emoji.ExtractEmojiWithPositions(text) {
			fmt.Fprintln(cmd.OutOrStdout(), TSprintf(extractOutputFormat, map[string]any{
				"index":  o.Index,
				"length": o.Length,
				"emoji":  o.Emoji,
			}))
		}
		return nil
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <text|->",
	Short: "Replace :shortcodes: in text with emoji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(cmd, args[0])
		if err != nil {
			return err
		}

		m, err := loadEmojiMap(cmd.Context(), useWorkspaceEmoji)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), emoji.ReplaceShortcodesWithUnicode(text, m))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <text|->",
	Short: "Replace emoji in text with :shortcodes:",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(cmd, args[0])
		if err != nil {
			return err
		}

		m, err := loadEmojiMap(cmd.Context(), useWorkspaceEmoji)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), emoji.ReplaceUnicodeWithShortcodes(text, m))
		return nil
	},
}

var shortcodeCmd = &cobra.Command{
	Use:   "shortcode <emoji>",
	Short: "Print the shortcode name of an emoji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadEmojiMap(cmd.Context(), useWorkspaceEmoji)
		if err != nil {
			return err
		}

		name, ok := emoji.ShortcodeForEmoji(args[0], m)
		if !ok {
			return fmt.Errorf("no shortcode for %q", args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <emoji>",
	Short: "Describe a single emoji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := config.EmojiMap()
		if err != nil {
			return err
		}

		info, err := emojidata.Describe(args[0], m)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), TSprintf(infoOutputFormat, map[string]any{
			"glyph":      info.Glyph,
			"name":       info.Name,
			"slug":       info.Slug,
			"code_point": info.CodePoint,
			"group":      info.Group,
			"subgroup":   info.Subgroup,
			"shortcode":  info.Shortcode,
		}))
		return nil
	},
}
