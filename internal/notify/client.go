package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/YapBingYen/salesdesk-chat/internal/intent"
)

// Client posts to the two outbound webhook endpoints. A failed intent round
// trip never surfaces to the caller: the conversation must keep moving, so
// it degrades to the local fallback classifier instead. Booking failures DO
// surface.
type Client struct {
	intentURL  string
	bookingURL string
	http       *http.Client
	fallback   *intent.Classifier
	log        *slog.Logger
}

func NewClient(intentURL, bookingURL string, timeout time.Duration, fallback *intent.Classifier, log *slog.Logger) *Client {
	return &Client{
		intentURL:  intentURL,
		bookingURL: bookingURL,
		http:       &http.Client{Timeout: timeout},
		fallback:   fallback,
		log:        log,
	}
}

// SendMessage posts {"message": text} to the intent endpoint and normalizes
// whatever comes back. Transport errors, non-2xx statuses and bodies that
// cannot be normalized all fall back to the local classifier.
func (c *Client) SendMessage(ctx context.Context, text string) (IntentResponse, error) {
	body, err := c.post(ctx, c.intentURL, map[string]any{"message": text})
	if err == nil {
		resp, nerr := normalizeIntentPayload(body)
		if nerr == nil {
			return resp, nil
		}
		err = nerr
	}

	c.log.Warn("intent webhook failed, using fallback classifier", "err", err)
	res := c.fallback.Classify(text)
	return IntentResponse{Reply: res.Reply, Intent: res.Intent, Confidence: res.Confidence}, nil
}

// BookAppointment posts the booking payload. When an email was collected the
// body is {"customer", "email"}, otherwise {"customerName"}. The booking
// workflow accepts both shapes.
func (c *Client) BookAppointment(ctx context.Context, customerName, email string) error {
	payload := map[string]any{"customerName": customerName}
	if email != "" {
		payload = map[string]any{"customer": customerName, "email": email}
	}
	if _, err := c.post(ctx, c.bookingURL, payload); err != nil {
		return fmt.Errorf("book appointment: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, errors.New("webhook error: " + resp.Status + " body=" + string(body))
	}

	return body, nil
}
