package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix       = "push"
	defaultEndpoint = "https://onesignal.com/api/v1/notifications"
)

// NotificationRequest is a push notification submission. Either TemplateID
// or Headings/Contents carries the message body.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

// Client submits push notifications to the delivery service.
type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient(client *http.Client) *Client {
	endpoint := viper.GetString("onesignal.endpoint")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		endpoint: endpoint,
		client:   client,
	}
}

func (c *Client) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+viper.GetString("onesignal.apikey"))

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"status": resp.StatusCode,
		}).Error("push notification rejected")
		return fmt.Errorf("push service responded with status %d", resp.StatusCode)
	}

	return nil
}
