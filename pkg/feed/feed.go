// Package feed talks to the device controller: the polled telemetry endpoint
// and the direct actuator command endpoint.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"opendom.xyz/home-automation-service/pkg/models"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Fetch pulls the current telemetry batch. The controller reports only
// sensors it could read this cycle; absent sensors are the reconciler's
// problem, not the transport's.
func (c *Client) Fetch(ctx context.Context) ([]models.Reading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/sensors", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telemetry endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Sensors []models.Reading `json:"sensors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Sensors, nil
}

// Command executes one actuator action and returns the resulting on/off
// state. The controller expects a form-encoded body, not json.
func (c *Client) Command(ctx context.Context, actuatorID string, action models.ActionKind) (bool, error) {
	form := url.Values{}
	form.Set("id", actuatorID)
	form.Set("action", string(action))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/actuators", strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("actuator endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Success bool `json:"success"`
		State   bool `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, err
	}
	if !payload.Success {
		return false, fmt.Errorf("actuator command rejected by controller")
	}
	return payload.State, nil
}
