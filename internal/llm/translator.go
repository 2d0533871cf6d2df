// Package llm translates natural-language descriptions into tag search
// strings via the Gemini API. It is strictly best-effort: any failure
// returns the input unchanged so search keeps working without a key.
package llm

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
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-3-flash-preview"

	// maxResponseSize bounds the response body read.
	maxResponseSize = 1 << 20
)

const promptTemplate = `You are an expert at searching the e621 image board.
Convert the following natural language description into a standard, space-separated e621 tag search string.
Only return the tag string. Description: %q`

type Translator struct {
	baseURL string
	model   string
	apiKey  func() string
	http    *http.Client
}

type Option func(*Translator)

func WithBaseURL(u string) Option {
	return func(t *Translator) { t.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(c *http.Client) Option {
	return func(t *Translator) { t.http = c }
}

// NewTranslator builds a translator over a key getter. The key is read on
// every call, so a key edited in settings takes effect without a restart.
func NewTranslator(apiKey func() string, opts ...Option) *Translator {
	t := &Translator{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Translate converts a description into a tag string. Missing key, transport
// failure, non-success status, or an empty completion all fall back to
// returning query as-is. It never returns an error to the caller.
func (t *Translator) Translate(ctx context.Context, query string) string {
	key := t.apiKey()
	if key == "" || strings.TrimSpace(query) == "" {
		return query
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, query)}}}},
	})
	if err != nil {
		return query
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", t.baseURL, t.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return query
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", key)

	resp, err := t.http.Do(req)
	if err != nil {
		return query
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return query
	}

	var payload generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		return query
	}
	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return query
	}

	tags := strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text)
	if tags == "" {
		return query
	}
	return tags
}
