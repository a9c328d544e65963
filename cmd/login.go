package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/graytonio/slackmoji/lib/config"
	"github.com/graytonio/slackmoji/lib/secrets"
)

var loginToken string
var loginCookie string
var logout bool

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Slack token (xoxc- or xoxp-), read from stdin when empty")
	loginCmd.Flags().StringVar(&loginCookie, "cookie", "", "Value of the slack d cookie, needed for xoxc- tokens")
	loginCmd.Flags().BoolVar(&logout, "logout", false, "Remove saved credentials")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save slack credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.Secrets()
		defer store.Close()

		if logout {
			return store.Clear()
		}

		token := loginToken
		if token == "" {
			fmt.Fprint(cmd.ErrOrStderr(), "token: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.Wrap(err, "failed to read token")
			}
			token = strings.TrimSpace(line)
		}
		if token == "" {
			return errors.New("token must not be empty")
		}

		if err := store.Set(secrets.KeySlackToken, token); err != nil {
			return err
		}
		if loginCookie != "" {
			if err := store.Set(secrets.KeySlackCookie, loginCookie); err != nil {
				return err
			}
		}

		if !store.Persistent() {
			logrus.Warn("credentials are only kept for this run")
		}
		logrus.Debug("saved slack credentials")
		return nil
	},
}
