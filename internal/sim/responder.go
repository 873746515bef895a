package sim

import (
	"context"
	"encoding/json"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/YapBingYen/salesdesk-chat/internal/intent"
	"github.com/YapBingYen/salesdesk-chat/internal/notify"
)

// Responder produces the reply the simulated intent workflow would emit.
type Responder interface {
	Respond(ctx context.Context, message string) (notify.IntentResponse, error)
}

// KeywordResponder answers with the same deterministic rules the widget's
// fallback classifier uses.
type KeywordResponder struct {
	classifier *intent.Classifier
}

func NewKeywordResponder(classifier *intent.Classifier) *KeywordResponder {
	return &KeywordResponder{classifier: classifier}
}

func (k *KeywordResponder) Respond(_ context.Context, message string) (notify.IntentResponse, error) {
	res := k.classifier.Classify(message)
	return notify.IntentResponse{Reply: res.Reply, Intent: res.Intent, Confidence: res.Confidence}, nil
}

// Format guard, appended as the system prompt so the completion is machine
// parseable. Anything off-format falls back to the keyword rules.
const formatGuard = `Respond with VALID JSON only. No text outside the JSON.
Format, strictly:
{"reply":"string","intent":"SALES|SUPPORT","confidence":0.0}
You are the assistant behind a sales demo chat widget. Classify the visitor's
message as SALES when it shows buying interest, SUPPORT otherwise, and write
a short helpful reply.`

// OpenAIResponder asks the model for the reply JSON. Errors, empty choices
// and off-format output all degrade to the keyword rules so the simulator
// never returns a hard failure by accident.
type OpenAIResponder struct {
	client   *openai.Client
	model    string
	fallback Responder
	log      *slog.Logger
}

func NewOpenAIResponder(apiKey, model string, fallback Responder, log *slog.Logger) *OpenAIResponder {
	return &OpenAIResponder{
		client:   openai.NewClient(apiKey),
		model:    model,
		fallback: fallback,
		log:      log,
	}
}

func (o *OpenAIResponder) Respond(ctx context.Context, message string) (notify.IntentResponse, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: formatGuard},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		o.log.Warn("openai call failed, using keyword rules", "err", err)
		return o.fallback.Respond(ctx, message)
	}
	if len(resp.Choices) == 0 {
		return o.fallback.Respond(ctx, message)
	}

	var out notify.IntentResponse
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		o.log.Warn("openai reply was off-format, using keyword rules", "err", err)
		return o.fallback.Respond(ctx, message)
	}
	return out, nil
}
