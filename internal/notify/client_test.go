package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/YapBingYen/salesdesk-chat/internal/intent"
)

func newTestClient(t *testing.T, intentURL, bookingURL string) *Client {
	t.Helper()
	classifier, err := intent.NewClassifier()
	require.NoError(t, err)
	return NewClient(intentURL, bookingURL, 2*time.Second, classifier, slog.Default())
}

func Test_SendMessage_Normalizes_Remote_Reply(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		var payload struct {
			Message string `json:"message"`
		}
		req.NoError(json.NewDecoder(r.Body).Decode(&payload))
		req.Equal("What is your pricing?", payload.Message)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"Hi","intent":"SALES","confidence":0.5}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL)
	got, err := c.SendMessage(context.Background(), "What is your pricing?")
	req.NoError(err)
	req.Equal(IntentResponse{Reply: "Hi", Intent: intent.Sales, Confidence: 0.5}, got)
}

func Test_SendMessage_Falls_Back_On_Non2xx(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL)
	got, err := c.SendMessage(context.Background(), "What is your pricing?")
	req.NoError(err)
	req.Equal(intent.Sales, got.Intent)
	req.InDelta(0.9, got.Confidence, 1e-9)
	req.NotEmpty(got.Reply)
}

func Test_SendMessage_Falls_Back_On_Unreachable_Endpoint(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse all connections

	c := newTestClient(t, srv.URL, srv.URL)
	got, err := c.SendMessage(context.Background(), "How do I reset my password?")
	req.NoError(err)
	req.Equal(intent.Support, got.Intent)
	req.InDelta(0.8, got.Confidence, 1e-9)
}

func Test_SendMessage_Falls_Back_On_Malformed_Body(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<!doctype html>`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL)
	got, err := c.SendMessage(context.Background(), "I want a demo")
	req.NoError(err)
	req.Equal(intent.Sales, got.Intent)
}

func Test_BookAppointment_Posts_CustomerName(t *testing.T) {
	req := require.New(t)

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL)
	req.NoError(c.BookAppointment(context.Background(), "Customer A", ""))
	req.Equal(map[string]any{"customerName": "Customer A"}, body)
}

func Test_BookAppointment_Posts_Email_Variant(t *testing.T) {
	req := require.New(t)

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL)
	req.NoError(c.BookAppointment(context.Background(), "Customer A", "a@example.com"))
	req.Equal(map[string]any{"customer": "Customer A", "email": "a@example.com"}, body)
}

func Test_BookAppointment_Surfaces_Failure(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL)
	req.Error(c.BookAppointment(context.Background(), "Customer A", ""))

	srv.Close()
	req.Error(c.BookAppointment(context.Background(), "Customer A", ""))
}
