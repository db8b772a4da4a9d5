package gemini

import (
	"google.golang.org/genai"
)

// Kind classifies a model response
type Kind int

const (
	// KindText means the first candidate carried usable text
	KindText Kind = iota
	// KindNoResult means the response was well formed but empty
	KindNoResult
	// KindMalformed means the first candidate was missing required structure
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNoResult:
		return "no_result"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Parsed is the interpreted first candidate of a response
type Parsed struct {
	Kind Kind
	Text string
}

// ParseResponse extracts the text of the first part of the first candidate.
//
// A nil response, no candidates, or empty text is KindNoResult. A first
// candidate without content or parts is KindMalformed.
func ParseResponse(resp *genai.GenerateContentResponse) Parsed {
	if resp == nil || len(resp.Candidates) == 0 {
		return Parsed{Kind: KindNoResult}
	}

	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 || cand.Content.Parts[0] == nil {
		return Parsed{Kind: KindMalformed}
	}

	text := cand.Content.Parts[0].Text
	if text == "" {
		return Parsed{Kind: KindNoResult}
	}

	return Parsed{Kind: KindText, Text: text}
}
