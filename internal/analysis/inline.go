package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// framingInstruction is prefixed to every user prompt sent to the
// primary backend.
const framingInstruction = "Analyze this video footage carefully. "

// InlineBackend is the primary hosted backend: a multimodal generate
// endpoint taking the video bytes inline as base64 next to the prompt.
type InlineBackend struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewInlineBackend(apiKey, model, baseURL string, timeout time.Duration, logger *logrus.Logger) *InlineBackend {
	return &InlineBackend{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type inlinePart struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineContent struct {
	Role  string       `json:"role"`
	Parts []inlinePart `json:"parts"`
}

type inlineRequest struct {
	Contents []inlineContent `json:"contents"`
}

type inlineResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze sends the video inline and returns the first textual completion.
func (b *InlineBackend) Analyze(ctx context.Context, prompt string, video File) string {
	log := b.logger.WithFields(logrus.Fields{
		"component": "analysis",
		"backend":   BackendPrimary,
		"model":     b.model,
	})

	if isPlaceholderKey(b.apiKey) {
		log.Error("Analysis API key is missing or still the placeholder")
		return "Error: API key is not configured. Set ANALYSIS_PRIMARY_API_KEY and restart the server."
	}

	body := inlineRequest{
		Contents: []inlineContent{
			{
				Role: "user",
				Parts: []inlinePart{
					{InlineData: &inlineData{
						MimeType: video.MIME,
						Data:     base64.StdEncoding.EncodeToString(video.Data),
					}},
					{Text: framingInstruction + prompt},
				},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return transportFailure(err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", b.baseURL, b.model, b.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return transportFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.WithField("prompt_length", len(prompt)).Info("Sending analysis request")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Analysis request failed")
		return transportFailure(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(err)
	}

	var decoded inlineResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return transportFailure(err)
	}

	if decoded.Error != nil {
		log.WithField("backend_error", decoded.Error.Message).Warn("Backend returned an error")
		return transportFailure(fmt.Errorf("%s", decoded.Error.Message))
	}
	if resp.StatusCode != http.StatusOK {
		return transportFailure(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	for _, cand := range decoded.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return "No analysis could be generated."
}
