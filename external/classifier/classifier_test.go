package classifier

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)

		var req map[string]string
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "medical", req["category"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"severity":"urgent","summary":"insulin shortage"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, "test-key", ts.Client())

	payload, err := c.Classify(context.Background(), "Need insulin", "Two diabetic patients", "medical")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"severity":"urgent","summary":"insulin shortage"}`, string(payload))
}

func TestClassifyNullPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`null`))
	}))
	defer ts.Close()

	c := New(ts.URL, "", ts.Client())

	payload, err := c.Classify(context.Background(), "t", "d", "other")
	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestClassifyServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := New(ts.URL, "", ts.Client())

	payload, err := c.Classify(context.Background(), "t", "d", "other")
	assert.Error(t, err)
	assert.Nil(t, payload)
}
