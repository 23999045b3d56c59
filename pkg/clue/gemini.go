// Package clue writes crossword clues for words that lack one, using
// Gemini on Vertex AI.
package clue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-north1"
	defaultModel  = "gemini-2.5-flash"
)

const cluePrompt = `Du skriver korsordsledtrådar på svenska.

Skriv en kort ledtråd för varje ord i listan. Regler:
- Ledtråden får inte innehålla ordet självt eller en böjning av det.
- Högst sex ord per ledtråd.
- Svara ENDAST med JSON på formen:
{"clues": [{"word": "ORD", "clue": "ledtråden"}]}

Ord:
%s`

// Writer generates clues with Gemini. Construct it once and reuse it; the
// underlying client is safe for concurrent use.
type Writer struct {
	client *genai.Client
	model  string
}

// NewWriter creates a writer backed by Vertex AI using Application
// Default Credentials. An empty region picks a default.
func NewWriter(ctx context.Context, projectID, region string) (*Writer, error) {
	if region == "" {
		region = defaultRegion
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Writer{client: client, model: defaultModel}, nil
}

// WriteClues asks the model for one clue per word and returns them keyed
// by upper-cased word. Words the model skipped are absent from the map.
func (w *Writer) WriteClues(ctx context.Context, words []string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}

	resp, err := w.client.Models.GenerateContent(ctx, w.model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: buildPrompt(words)}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}
	return parseClues([]byte(text))
}

func buildPrompt(words []string) string {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString("- ")
		sb.WriteString(strings.ToUpper(w))
		sb.WriteByte('\n')
	}
	return fmt.Sprintf(cluePrompt, sb.String())
}

func parseClues(data []byte) (map[string]string, error) {
	var payload struct {
		Clues []struct {
			Word string `json:"word"`
			Clue string `json:"clue"`
		} `json:"clues"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse clue JSON: %w\nraw response: %s", err, data)
	}

	out := make(map[string]string, len(payload.Clues))
	for _, c := range payload.Clues {
		word := strings.ToUpper(strings.TrimSpace(c.Word))
		clue := strings.TrimSpace(c.Clue)
		if word == "" || clue == "" {
			continue
		}
		out[word] = clue
	}
	return out, nil
}
