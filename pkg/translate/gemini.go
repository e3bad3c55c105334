package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultGeminiBaseURL    = "https://generativelanguage.googleapis.com"
	defaultGeminiAPIVersion = "v1beta"
	defaultGeminiModel      = "gemini-1.5-flash"
)

// GeminiClient calls the native Gemini generateContent API
type GeminiClient struct {
	client      *resty.Client
	apiKey      string
	model       string
	baseURL     string
	apiVersion  string
	temperature float64
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewGeminiClient creates a Gemini client. Base URL is the API root without version, requests go to
// {base}/{version}/models/{model}:generateContent. Empty values fall back to the public API, v1beta
// and gemini-1.5-flash.
func NewGeminiClient(opts GeneratorOpts) *GeminiClient {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	apiVersion := strings.Trim(opts.APIVersion, "/")
	if apiVersion == "" {
		apiVersion = defaultGeminiAPIVersion
	}
	model := opts.Model
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &GeminiClient{
		client:      resty.New().SetTimeout(timeout).SetRetryCount(0),
		apiKey:      opts.APIKey,
		model:       model,
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiVersion:  apiVersion,
		temperature: opts.Temperature,
	}
}

// Generate sends the prompt as a single user turn and returns the first candidate's text
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
	}
	if g.temperature > 0 {
		req.GenerationConfig = &geminiGenerationConfig{Temperature: g.temperature}
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent", g.baseURL, g.apiVersion, g.model)
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(req).
		Post(url)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	var gr geminiResponse
	if err := json.Unmarshal(resp.Body(), &gr); err != nil {
		return "", fmt.Errorf("decode gemini response, status %d: %w", resp.StatusCode(), err)
	}

	if gr.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", gr.Error.Code, gr.Error.Message)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("gemini unexpected status code: %d", resp.StatusCode())
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content in gemini response")
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
