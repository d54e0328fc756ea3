// Package notify requests reminder notifications from an external
// collaborator. Delivery, channel and permission handling belong to the
// collaborator, not to this service.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ReminderTitle is the fixed title sent with every reminder request.
const ReminderTitle = "Previsão do tempo"

// reminderPayload is the wire shape the collaborator accepts.
type reminderPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// WebhookNotifier posts reminder requests to a webhook URL. Fire-and-forget:
// the request runs on its own goroutine, no acknowledgement is awaited, and
// failures are only logged.
type WebhookNotifier struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
}

// NewWebhookNotifier creates a WebhookNotifier.
func NewWebhookNotifier(client *http.Client, url string) *WebhookNotifier {
	return &WebhookNotifier{
		httpClient: client,
		url:        url,
		timeout:    10 * time.Second,
	}
}

// ScheduleReminder requests that a reminder carrying message be scheduled.
func (n *WebhookNotifier) ScheduleReminder(message string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		body, err := json.Marshal(reminderPayload{Title: ReminderTitle, Message: message})
		if err != nil {
			log.Printf("ERROR: notify: marshal reminder: %v", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			log.Printf("ERROR: notify: build reminder request: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.httpClient.Do(req)
		if err != nil {
			log.Printf("ERROR: notify: reminder request failed: %v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Printf("ERROR: notify: collaborator answered %d", resp.StatusCode)
			return
		}
		log.Printf("INFO: notify: reminder scheduled")
	}()
}

// Nop discards reminder requests. Used when no webhook is configured.
type Nop struct{}

// ScheduleReminder logs and drops the request.
func (Nop) ScheduleReminder(message string) {
	log.Printf("INFO: notify: no webhook configured, dropping reminder: %s", message)
}
