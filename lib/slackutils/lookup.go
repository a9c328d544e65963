package slackutils

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/graytonio/slackmoji/lib/config"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrChannelNotFound = errors.New("channel not found")
)

// ParseChannelTarget resolves "@user", "#channel" or a raw channel ID to the
// ID messages are sent to.
func ParseChannelTarget(ctx context.Context, arg string) (string, error) {
	if strings.HasPrefix(arg, "@") {
		logrus.WithField("target", arg).WithField("type", "user").Debug("looking up user")
		user := strings.TrimPrefix(arg, "@")
		uID, ok := config.GetConfig().SavedUsers[user]
		if ok {
			return uID, nil
		}

		u, err := GetUserByName(ctx, user)
		if err != nil {
			logrus.WithError(err).Debug("could not find user")
			return "", err
		}

		logrus.WithField("id", u.ID).Debug("found user")
		return u.ID, nil
	} else if strings.HasPrefix(arg, "#") {
		logrus.WithField("target", arg).WithField("type", "channel_name").Debug("looking up channel")
		channel := strings.TrimPrefix(arg, "#")
		cID, ok := config.GetConfig().SavedChannels[channel]
		if ok {
			return cID, nil
		}

		c, err := GetChannelByName(ctx, channel)
		if err != nil {
			return "", err
		}

		logrus.WithField("id", c.ID).Debug("found channel")
		return c.ID, nil
	}

	logrus.WithField("target", arg).WithField("type", "channel_id").Debug("using channel id")
	return arg, nil
}

// GetChannelByName looks up a channel the user belongs to by name.
func GetChannelByName(ctx context.Context, name string) (*slack.Channel, error) {
	channels, err := GetAllConversations(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range channels {
		if c.Name == name {
			return &c, nil
		}
	}

	return nil, errors.Wrap(ErrChannelNotFound, name)
}

// GetUserByName looks up a user by display name.
func GetUserByName(ctx context.Context, name string) (*slack.User, error) {
	users, err := config.SlackClient.GetUsersContext(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Profile.DisplayName == name {
			return &u, nil
		}
	}

	return nil, errors.Wrap(ErrUserNotFound, name)
}

// GetUserName returns the name to show for a user ID.
func GetUserName(ctx context.Context, userID string) (string, error) {
	user, err := config.SlackClient.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", err
	}
	name := user.Profile.DisplayName
	if name == "" {
		name = user.RealName
	}
	if name == "" {
		name = user.Name
	}
	return name, nil
}

type userBootResponseData struct {
	Channels []slack.Channel `json:"channels"`
}

// GetAllConversations returns every conversation in the user's sidebar.
func GetAllConversations(ctx context.Context) ([]slack.Channel, error) {
	body, code, err := RawSlackRequestJSON(ctx, "POST", "client.userBoot", nil, nil)
	if err != nil {
		return nil, err
	}
	if code != 200 {
		return nil, errors.New(string(body))
	}

	data := userBootResponseData{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	return data.Channels, nil
}
