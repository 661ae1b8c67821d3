package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"
)

// Gemini analyzes through the generateContent REST endpoint.
type Gemini struct {
	http  *resty.Client
	model string
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewGemini creates a Gemini analyzer. Empty model and baseURL use defaults.
func NewGemini(apiKey, model, baseURL string, timeout time.Duration) *Gemini {
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("x-goog-api-key", apiKey)

	slog.Info("Initializing Gemini analyzer", "model", model)
	return &Gemini{http: client, model: model}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Analyze(ctx context.Context, in Input) (Result, error) {
	request := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: Prompt(in)}}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   geminiSchema(reportSchema),
		},
	}

	var response geminiResponse
	var apiErr geminiError
	resp, err := g.http.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetBody(request).
		SetResult(&response).
		SetError(&apiErr).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return Result{}, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return Result{}, &StatusError{
			StatusCode: resp.StatusCode(),
			Status:     apiErr.Error.Status,
			Message:    msg,
		}
	}

	var text strings.Builder
	if len(response.Candidates) > 0 {
		for _, p := range response.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}
	return ParseResult(text.String()), nil
}

// geminiSchema converts a JSON schema into Gemini's OpenAPI subset, which
// spells types in upper case.
func geminiSchema(d jsonschema.Definition) map[string]any {
	out := map[string]any{"type": strings.ToUpper(string(d.Type))}
	if d.Description != "" {
		out["description"] = d.Description
	}
	if len(d.Properties) > 0 {
		props := make(map[string]any, len(d.Properties))
		for name, p := range d.Properties {
			props[name] = geminiSchema(p)
		}
		out["properties"] = props
	}
	if d.Items != nil {
		out["items"] = geminiSchema(*d.Items)
	}
	if len(d.Required) > 0 {
		out["required"] = d.Required
	}
	return out
}
