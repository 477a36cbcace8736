package background

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/openrelief/relief-api/external/push"
)

func accountNumbers(n int) []string {
	accounts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		accounts = append(accounts, fmt.Sprintf("account-%d", i))
	}
	return accounts
}

func notifyTestManager(t *testing.T) (*BackgroundManager, *[]push.NotificationRequest, func()) {
	received := []push.NotificationRequest{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)

		var req push.NotificationRequest
		assert.NoError(t, json.Unmarshal(body, &req))
		received = append(received, req)

		w.WriteHeader(http.StatusOK)
	}))

	viper.Set("onesignal.endpoint", ts.URL)

	m := &BackgroundManager{
		push: push.NewClient(ts.Client()),
	}

	return m, &received, func() {
		ts.Close()
		viper.Set("onesignal.endpoint", "")
	}
}

func TestNotifyAccountsByTemplateBatches(t *testing.T) {
	m, received, teardown := notifyTestManager(t)
	defer teardown()

	err := m.notifyAccountsByTemplate(accountNumbers(150), "template-1", nil)
	assert.NoError(t, err)

	assert.Len(t, *received, 2)
	for _, req := range *received {
		assert.NotEmpty(t, req.Filters)
	}
}

func TestNotifyAccountsByTemplateExactBatch(t *testing.T) {
	m, received, teardown := notifyTestManager(t)
	defer teardown()

	// a recipient count that divides evenly into batches must not send a
	// trailing unfiltered request
	err := m.notifyAccountsByTemplate(accountNumbers(100), "template-1", nil)
	assert.NoError(t, err)

	assert.Len(t, *received, 1)
	assert.NotEmpty(t, (*received)[0].Filters)
}

func TestNotifyAccountsByTemplateNoRecipients(t *testing.T) {
	m, received, teardown := notifyTestManager(t)
	defer teardown()

	err := m.notifyAccountsByTemplate(nil, "template-1", nil)
	assert.NoError(t, err)
	assert.Empty(t, *received)
}
