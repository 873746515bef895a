package intent

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Label classifies an assistant reply.
type Label string

const (
	Sales   Label = "SALES"
	Support Label = "SUPPORT"
)

// ParseLabel maps a remote intent value onto a known label. Anything
// unrecognized counts as support.
func ParseLabel(s string) Label {
	if strings.EqualFold(strings.TrimSpace(s), string(Sales)) {
		return Sales
	}
	return Support
}

// Result is what the classifier produces for a single input.
type Result struct {
	Reply      string
	Intent     Label
	Confidence float64
}

var salesKeywords = []string{
	"pricing", "price", "cost", "buy", "purchase", "demo", "appointment", "pay",
}

const (
	salesReply   = "I'd be happy to help you with pricing information. Would you like to book an appointment to discuss this further?"
	supportReply = "Thank you for your message. I'll connect you with our support team who can assist you further."
)

// Classifier is the local stand-in for the remote intent service. It scans
// for sales keywords with an Aho-Corasick automaton built once at startup.
// Classify is deterministic and total over all strings.
type Classifier struct {
	matcher *goahocorasick.Machine
}

func NewClassifier() (*Classifier, error) {
	patterns := make([][]rune, len(salesKeywords))
	for i, w := range salesKeywords {
		patterns[i] = []rune(w)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Classifier{matcher: m}, nil
}

func (c *Classifier) Classify(text string) Result {
	lower := []rune(strings.ToLower(text))
	if len(lower) > 0 && len(c.matcher.MultiPatternSearch(lower, true)) > 0 {
		return Result{Reply: salesReply, Intent: Sales, Confidence: 0.9}
	}
	return Result{Reply: supportReply, Intent: Support, Confidence: 0.8}
}

// IsHotLead flags strong purchase intent in the user's own words. Narrower
// than the sales label: only explicit "pay now" / "buy now" phrasing counts.
func IsHotLead(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "pay now") || strings.Contains(lower, "buy now")
}
