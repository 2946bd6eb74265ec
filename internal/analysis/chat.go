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

// systemFraming is the fixed system message sent to the secondary backend.
const systemFraming = "You are a helpful AI assistant analyzing security footage."

// chatFormat describes how one file extension is carried on the wire:
// its MIME type and whether it travels as an image_url or video_url part.
type chatFormat struct {
	mime  string
	media string
}

// supportedFormats is the secondary backend's extension allow-list.
// Anything else is rejected locally, before any network call.
var supportedFormats = map[string]chatFormat{
	"png":  {"image/png", "image_url"},
	"jpg":  {"image/jpeg", "image_url"},
	"jpeg": {"image/jpeg", "image_url"},
	"webp": {"image/webp", "image_url"},
	"mp4":  {"video/mp4", "video_url"},
	"webm": {"video/webm", "video_url"},
	"mov":  {"video/mov", "video_url"},
}

// ChatBackend is the secondary hosted backend: a chat-completions
// endpoint whose user message mixes a text part and a media part
// carrying a base64 data URI.
type ChatBackend struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewChatBackend(apiKey, model, baseURL string, timeout time.Duration, logger *logrus.Logger) *ChatBackend {
	return &ChatBackend{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type chatMediaURL struct {
	URL string `json:"url"`
}

// chatContentPart serializes to either {"type":"text","text":...} or
// {"type":"image_url","image_url":{"url":...}} / video_url equivalent.
type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatMediaURL `json:"image_url,omitempty"`
	VideoURL *chatMediaURL `json:"video_url,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Analyze rejects unsupported extensions locally, then sends the file as
// a data URI and returns the first choice's content.
func (b *ChatBackend) Analyze(ctx context.Context, prompt string, video File) string {
	log := b.logger.WithFields(logrus.Fields{
		"component": "analysis",
		"backend":   BackendSecondary,
		"model":     b.model,
	})

	if isPlaceholderKey(b.apiKey) {
		log.Error("Analysis API key is missing or still the placeholder")
		return "Error: API key is not configured. Set ANALYSIS_SECONDARY_API_KEY and restart the server."
	}

	ext := extension(video.Name)
	format, ok := supportedFormats[ext]
	if !ok {
		log.WithField("extension", ext).Warn("Unsupported file format for analysis")
		return fmt.Sprintf("Error: Unsupported file format .%s", ext)
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", format.mime, base64.StdEncoding.EncodeToString(video.Data))

	media := chatContentPart{Type: format.media}
	if format.media == "image_url" {
		media.ImageURL = &chatMediaURL{URL: dataURI}
	} else {
		media.VideoURL = &chatMediaURL{URL: dataURI}
	}

	body := chatRequest{
		Model: b.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemFraming},
			{Role: "user", Content: []chatContentPart{
				{Type: "text", Text: prompt},
				media,
			}},
		},
		Temperature: 0.2,
		MaxTokens:   1024,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return transportFailure(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return transportFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

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

	var decoded chatResponse
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

	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "No response generated."
	}
	return decoded.Choices[0].Message.Content
}
