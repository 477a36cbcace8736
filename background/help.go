package background

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/openrelief/relief-api/schema"
	"github.com/openrelief/relief-api/utils"
)

// broadcastRadiusKM bounds which volunteers hear about a new request.
const broadcastRadiusKM = 50

// BroadcastNewRequest is a background job to notify volunteers near a newly
// created help request.
func (m *BackgroundManager) BroadcastNewRequest(requestID string) error {
	req, err := m.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	accounts, err := m.mongo.NearbyVolunteerAccounts(broadcastRadiusKM, schema.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return err
	}

	recipients := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if a != req.Requester {
			recipients = append(recipients, a)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	return m.notifyAccountsByTemplate(recipients, viper.GetString("onesignal.templates.new_request"), map[string]interface{}{
		"notification_type": "NEW_HELP_REQUEST",
		"request_id":        requestID,
	})
}

// NotifyRequestAccepted is a background job to tell a requester that a
// volunteer has responded to their help request.
func (m *BackgroundManager) NotifyRequestAccepted(requestID string) error {
	req, err := m.store.GetHelpRequest(requestID)
	if err != nil {
		return err
	}

	localizer := utils.NewLocalizer("en")
	title := localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID: "NotificationRequestAcceptedTitle",
	})
	body := localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID: "NotificationRequestAcceptedBody",
	})

	return m.notifyAccountByText(req.Requester,
		map[string]string{"en": title},
		map[string]string{"en": body},
		map[string]interface{}{
			"notification_type": "HELP_REQUEST_ACCEPTED",
			"request_id":        requestID,
		})
}
