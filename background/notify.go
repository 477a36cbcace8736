package background

import (
	"context"

	"github.com/spf13/viper"

	"github.com/openrelief/relief-api/external/push"
)

// notifyAccountsByTemplate consolidates account numbers into batched push
// requests. The delivery service accepts at most 100 tag filters per call.
func (m *BackgroundManager) notifyAccountsByTemplate(accountNumbers []string, templateID string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, a := range accountNumbers {
		if i%100 == 0 {
			filters = append(filters, map[string]string{
				"field":    "tag",
				"key":      "account_number",
				"relation": "=",
				"value":    a,
			})
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				map[string]string{
					"field":    "tag",
					"key":      "account_number",
					"relation": "=",
					"value":    a,
				})
		}
		if i%100 == 99 {
			req := &push.NotificationRequest{
				AppID:          viper.GetString("onesignal.appid"),
				TemplateID:     templateID,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "important_alert",
			}
			if err := m.push.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}

	// send rest of notification; an empty filter set would address every
	// subscriber, so a listing that divides evenly into batches ends here
	if len(filters) == 0 {
		return nil
	}

	req := &push.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		TemplateID:     templateID,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return m.push.SendNotification(context.Background(), req)
}

// notifyAccountByText sends a message to one account with raw headings and
// contents.
func (m *BackgroundManager) notifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "account_number",
			"relation": "=",
			"value":    accountNumber,
		},
	}

	req := &push.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return m.push.SendNotification(context.Background(), req)
}
