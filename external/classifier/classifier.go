package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix      = "classifier"
	defaultTimeout = 10 * time.Second
)

// Classifier - interface to the external request classification service.
// The returned payload is opaque: callers attach it to a help request
// verbatim and never parse it for control flow.
type Classifier interface {
	Classify(ctx context.Context, title, description, category string) (json.RawMessage, error)
}

type classifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// New - new Classifier for a service endpoint
func New(endpoint, apiKey string, client *http.Client) Classifier {
	return &classifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
	}
}

func (c *classifier) Classify(ctx context.Context, title, description, category string) (json.RawMessage, error) {
	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"category": category,
	}).Info("classify help request")

	body, err := json.Marshal(map[string]string{
		"title":       title,
		"description": description,
		"category":    category,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classification service responded with status %d", resp.StatusCode)
	}

	payload, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 || string(payload) == "null" {
		return nil, nil
	}

	return json.RawMessage(payload), nil
}
