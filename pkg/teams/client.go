package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	submittedAtStyle = "1/2/2006, 3:04:05 PM"
)

// Client posts MessageCards to a Teams incoming webhook.
type Client struct {
	webhookURL string
	detailsURL string
	httpClient *http.Client
}

// NewClient creates a client. An empty webhookURL yields a disabled client
// whose sends are no-ops. detailsURL, when set, is the prefix of the
// "View Details" link; the record id is appended.
func NewClient(webhookURL, detailsURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		detailsURL: detailsURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Enabled reports whether a webhook is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.webhookURL != ""
}

// NotifyRegularization announces a new regularization request.
func (c *Client) NotifyRegularization(ctx context.Context, rec Regularization) error {
	if !c.Enabled() {
		return nil
	}
	return c.post(ctx, c.regularizationCard(rec))
}

func (c *Client) regularizationCard(rec Regularization) MessageCard {
	card := MessageCard{
		Type:       "MessageCard",
		Context:    "https://schema.org/extensions",
		Summary:    "Attendance Regularization Request",
		ThemeColor: "0078D4",
		Title:      "New Attendance Regularization Request",
		Sections: []Section{{
			ActivityTitle:    "Employee: " + rec.UserID,
			ActivitySubtitle: "Date: " + rec.Date,
			Facts: []Fact{
				{Name: "Date", Value: rec.Date},
				{Name: "Reason", Value: rec.Reason},
				{Name: "Status", Value: rec.Status},
				{Name: "Submitted At", Value: rec.SubmittedAt.Format(submittedAtStyle)},
			},
			Markdown: true,
		}},
	}

	if c.detailsURL != "" {
		card.PotentialAction = []OpenURIAction{{
			Type: "OpenUri",
			Name: "View Details",
			Targets: []Target{{
				OS:  "default",
				URI: strings.TrimRight(c.detailsURL, "/") + "/" + rec.ID,
			}},
		}}
	}
	return card
}

func (c *Client) post(ctx context.Context, card MessageCard) error {
	body, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to marshal message card: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message card: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("teams webhook error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
