package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graytonio/slackmoji/lib/config"
)

var rootCmd = &cobra.Command{
	Use:          "slackmoji",
	Short:        "Emoji aware terminal slack client",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
}

func init() {
	cobra.OnInitialize(func() {
		config.SetLogLevel()
	})

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	rootCmd.PersistentFlags().StringVar(&config.Path, "config", config.Path, "Config file to use")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// TSprintf fills ${key} placeholders in format.
func TSprintf(format string, params map[string]any) string {
	for key, val := range params {
		format = strings.Replace(format, "${"+key+"}", fmt.Sprintf("%v", val), -1)
	}
	return format
}

// textArg returns the text argument, reading stdin when it is "-".
func textArg(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	stdin, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(stdin), "\n"), nil
}
