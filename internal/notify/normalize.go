package notify

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/YapBingYen/salesdesk-chat/internal/intent"
)

// IntentResponse is the canonical record every remote response shape is
// normalized into.
type IntentResponse struct {
	Reply      string       `json:"reply"`
	Intent     intent.Label `json:"intent"`
	Confidence float64      `json:"confidence"`
}

const defaultReply = "I received your message but couldn't generate a reply."

var errEmptyPayload = errors.New("empty webhook payload")

// normalizeIntentPayload turns the webhook's heterogeneous response shapes
// into a canonical IntentResponse. Precedence, in order: an array body is
// unwrapped to its first element; a string value is parsed as nested JSON,
// falling back to treating the raw string as the reply; an object picks the
// first present of reply|text|output|message, with intent defaulting to
// SUPPORT and confidence to 0.
func normalizeIntentPayload(body []byte) (IntentResponse, error) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return IntentResponse{}, fmt.Errorf("decode webhook body: %w", err)
	}

	if arr, ok := value.([]any); ok {
		if len(arr) == 0 {
			return IntentResponse{}, errEmptyPayload
		}
		value = arr[0]
	}

	if s, ok := value.(string); ok {
		var nested any
		if err := json.Unmarshal([]byte(s), &nested); err != nil {
			// Not JSON: the raw string is the reply.
			return IntentResponse{Reply: s, Intent: intent.Support}, nil
		}
		value = nested
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return IntentResponse{}, fmt.Errorf("unexpected webhook payload type %T", value)
	}

	out := IntentResponse{Reply: defaultReply, Intent: intent.Support}
	for _, key := range []string{"reply", "text", "output", "message"} {
		if s, ok := obj[key].(string); ok && s != "" {
			out.Reply = s
			break
		}
	}
	if s, ok := obj["intent"].(string); ok {
		out.Intent = intent.ParseLabel(s)
	}
	if b, ok := obj["sales_intent"].(bool); ok && b {
		out.Intent = intent.Sales
	}
	if f, ok := obj["confidence"].(float64); ok {
		out.Confidence = f
	}
	return out, nil
}
