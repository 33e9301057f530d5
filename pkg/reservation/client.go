package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventRequest is the payload the flow sends to the event submission
// endpoint. Times are RFC3339 strings on the wire.
type EventRequest struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

// EventSubmitter submits a reservation event and returns the created event id.
type EventSubmitter interface {
	SubmitEvent(ctx context.Context, request EventRequest) (string, error)
}

// ClientImpl submits events to the calendar endpoint over HTTP.
type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *ClientImpl {
	return &ClientImpl{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ClientImpl) SubmitEvent(ctx context.Context, request EventRequest) (string, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("unable to marshal event request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/calendar/create-event", bytes.NewBuffer(body))
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResponse struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errorResponse); decodeErr != nil || errorResponse.Error == "" {
			errorResponse.Error = "Failed to create calendar event"
		}
		log.Errorf("Event submission returned status %d: %s", resp.StatusCode, errorResponse.Error)
		return "", fmt.Errorf("%s", errorResponse.Error)
	}

	var result struct {
		EventId string `json:"eventId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return "", err
	}
	return result.EventId, nil
}
