package communication

import (
	"fmt"

	"github.com/slack-go/slack"
)

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// Slack posts operational notices. A Slack built without a token drops every
// message.
type Slack struct {
	client  *slack.Client
	options SlackOption
}

func NewSlack(token string, options SlackOption) *Slack {
	if token == "" {
		return &Slack{options: options}
	}
	return &Slack{client: slack.New(token), options: options}
}

func (s *Slack) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *Slack) postMessage(channelID, message string) error {
	if !s.Enabled() || channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}
