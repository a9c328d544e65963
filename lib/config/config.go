package config

import (
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"

	"github.com/graytonio/slackmoji/lib/emoji"
	"github.com/graytonio/slackmoji/lib/emojidata"
	"github.com/graytonio/slackmoji/lib/secrets"
)

var home, _ = os.UserHomeDir()

// Path is the config file read by Load.
var Path = path.Join(home, ".config/slackmoji.yaml")

type EmojiConfig struct {
	LargeThreshold int    `mapstructure:"large_threshold"`
	Names          string `mapstructure:"names"`
	MapFile        string `mapstructure:"map_file"`
}

type StorageConfig struct {
	UsageDB    string `mapstructure:"usage_db"`
	SecretsDir string `mapstructure:"secrets_dir"`
	Passphrase string `mapstructure:"passphrase"`
}

type Config struct {
	Workspace     string            `mapstructure:"workspace"`
	SavedChannels map[string]string `mapstructure:"channel_cache"`
	SavedUsers    map[string]string `mapstructure:"users_cache"`
	Emoji         EmojiConfig       `mapstructure:"emoji"`
	Storage       StorageConfig     `mapstructure:"storage"`
}

var config = Config{
	SavedChannels: make(map[string]string),
	SavedUsers:    make(map[string]string),
}

var (
	ErrNoCredentials = errors.New("no slack credentials saved, run login first")
)

var SlackClient *slack.Client
var SlackHTTPClient *http.Client
var slackToken string

func setDefaults() {
	dataDir := path.Join(home, ".config/slackmoji")
	viper.SetDefault("workspace", "")
	viper.SetDefault("emoji.large_threshold", emoji.LargeEmojiThreshold)
	viper.SetDefault("emoji.names", emojidata.NamesShortcodes)
	viper.SetDefault("emoji.map_file", path.Join(dataDir, "emoji.yaml"))
	viper.SetDefault("storage.usage_db", path.Join(dataDir, "usage.db"))
	viper.SetDefault("storage.secrets_dir", path.Join(dataDir, "secrets"))
	viper.SetDefault("storage.passphrase", "")
}

// Load reads the config file, creating it when missing.
func Load() error {
	log.SetOutput(io.Discard)
	setDefaults()

	if err := os.MkdirAll(path.Dir(Path), 0755); err != nil {
		return err
	}
	viper.SetConfigFile(Path)
	viper.SafeWriteConfigAs(Path)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config %s", Path)
	}

	if err := viper.Unmarshal(&config); err != nil {
		return errors.Wrap(err, "failed to parse config")
	}

	logrus.WithField("path", Path).Debug("loaded config")
	return nil
}

func SetLogLevel() {
	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func AddUserCache(name string, id string) error {
	config.SavedUsers[name] = id
	viper.Set("users_cache", config.SavedUsers)
	return viper.WriteConfig()
}

func AddChannelCache(name string, id string) error {
	config.SavedChannels[name] = id
	viper.Set("channel_cache", config.SavedChannels)
	return viper.WriteConfig()
}

// Secrets opens the credential storage configured for this machine.
func Secrets() secrets.Storage {
	passphrase := config.Storage.Passphrase
	if passphrase == "" {
		hostname, _ := os.Hostname()
		passphrase = hostname + home
	}
	return secrets.New(config.Storage.SecretsDir, passphrase)
}

// LoadSlackClient opens the credential storage, builds SlackClient from it
// and closes the storage again.
func LoadSlackClient() error {
	store := Secrets()
	defer store.Close()
	return InitSlackClient(store)
}

// InitSlackClient builds SlackClient from the credentials saved by login.
func InitSlackClient(store secrets.Storage) error {
	token, err := store.Get(secrets.KeySlackToken)
	if errors.Is(err, secrets.ErrKeyNotFound) {
		return ErrNoCredentials
	} else if err != nil {
		return err
	}

	cookie, err := store.Get(secrets.KeySlackCookie)
	if err != nil && !errors.Is(err, secrets.ErrKeyNotFound) {
		return err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}

	if cookie != "" {
		cookieURL, _ := url.Parse("https://slack.com")
		jar.SetCookies(cookieURL, []*http.Cookie{
			{
				Name:  "d",
				Value: cookie,
			},
		})
	}

	SlackHTTPClient = &http.Client{
		Jar: jar,
	}

	slackToken = token
	SlackClient = slack.New(token, slack.OptionHTTPClient(SlackHTTPClient))
	return nil
}

// SlackToken returns the token the client was built with.
func SlackToken() string {
	return slackToken
}

func GetConfig() *Config {
	return &config
}
