package sim

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/YapBingYen/salesdesk-chat/internal/intent"
	"github.com/YapBingYen/salesdesk-chat/internal/notify"
)

type cannedResponder struct {
	resp notify.IntentResponse
}

func (c *cannedResponder) Respond(context.Context, string) (notify.IntentResponse, error) {
	return c.resp, nil
}

func newSimServer(t *testing.T, responder Responder) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(responder, 0, slog.Default()))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// The widget's webhook client must be able to consume the simulator's
// array-wrapped stringified response shape end to end.
func Test_Sim_Intent_Shape_Survives_Normalization(t *testing.T) {
	req := require.New(t)
	want := notify.IntentResponse{Reply: "from sim", Intent: intent.Sales, Confidence: 0.42}
	srv := newSimServer(t, &cannedResponder{resp: want})

	classifier, err := intent.NewClassifier()
	req.NoError(err)
	client := notify.NewClient(srv.URL+"/webhook/intent", srv.URL+"/webhook/send-appointment",
		2*time.Second, classifier, slog.Default())

	got, err := client.SendMessage(context.Background(), "anything")
	req.NoError(err)
	req.Equal(want, got)
}

func Test_Sim_Keyword_Responder(t *testing.T) {
	req := require.New(t)
	classifier, err := intent.NewClassifier()
	req.NoError(err)
	srv := newSimServer(t, NewKeywordResponder(classifier))

	client := notify.NewClient(srv.URL+"/webhook/intent", srv.URL+"/webhook/send-appointment",
		2*time.Second, classifier, slog.Default())

	got, err := client.SendMessage(context.Background(), "what does it cost?")
	req.NoError(err)
	req.Equal(intent.Sales, got.Intent)
	req.InDelta(0.9, got.Confidence, 1e-9)
}

func Test_Sim_Booking_Accepts_Both_Variants(t *testing.T) {
	req := require.New(t)
	srv := newSimServer(t, &cannedResponder{})

	for _, body := range []string{
		`{"customerName":"Customer A"}`,
		`{"customer":"Customer A","email":"a@example.com"}`,
	} {
		resp, err := http.Post(srv.URL+"/webhook/send-appointment", "application/json", strings.NewReader(body))
		req.NoError(err)
		resp.Body.Close()
		req.Equal(http.StatusOK, resp.StatusCode)
	}

	resp, err := http.Post(srv.URL+"/webhook/send-appointment", "application/json", strings.NewReader(`{}`))
	req.NoError(err)
	resp.Body.Close()
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}

func Test_Sim_Intent_Rejects_Bad_Json(t *testing.T) {
	req := require.New(t)
	srv := newSimServer(t, &cannedResponder{})

	resp, err := http.Post(srv.URL+"/webhook/intent", "application/json", strings.NewReader(`{`))
	req.NoError(err)
	resp.Body.Close()
	req.Equal(http.StatusBadRequest, resp.StatusCode)
}
