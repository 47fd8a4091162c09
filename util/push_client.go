// api/util/push_client.go

package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	api_errors "github.com/trialdesk/participant-manager/api/errors"
	"github.com/trialdesk/participant-manager/api/model"
)

// PushMessage is the payload posted to the push notification gateway.
type PushMessage struct {
	To           string            `json:"to,omitempty"`
	Notification PushMessageBody   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type PushMessageBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushClient talks to the external push notification gateway.
type PushClient struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

func NewPushClient(url, apiKey string) *PushClient {
	return &PushClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
		apiKey:     apiKey,
	}
}

// Send posts a single message and returns the gateway response verbatim.
func (p *PushClient) Send(ctx context.Context, message PushMessage) (*model.PushNotificationResponse, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", api_errors.PushGatewayFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, api_errors.PushGatewayFailure
	}

	var pushResponse model.PushNotificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushResponse); err != nil {
		return nil, fmt.Errorf("failed to decode push response: %w", err)
	}
	return &pushResponse, nil
}
