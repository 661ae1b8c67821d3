package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Analyzer sends an Input to a model and returns its reply.
// Implementations return transport failures as errors; Runner turns them
// into user-facing text with ErrorResult.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, in Input) (Result, error)
}

// Messages shown in place of a report.
const (
	UnconfiguredMessage   = "**API key not configured**\n\nNo API key is available to the server. Contact the administrator."
	QuotaMessage          = "**API quota exceeded**\n\nPlease try again later. (Quota Exceeded)"
	KeyRestrictionMessage = "**API key restricted**\n\nThis host is not allowed to use the API key. Check the key's allowed referrers in the provider console."
	genericErrorFormat    = "**Analysis failed**\n\nError: %s\n\nTry again later, or contact the administrator if the problem persists."
)

// StatusError is an HTTP-level failure reported by a model API.
type StatusError struct {
	StatusCode int
	Status     string // provider status, e.g. RESOURCE_EXHAUSTED
	Message    string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// ErrorResult maps an analyzer error to a text result the user can act on.
func ErrorResult(err error) Result {
	code, msg := 0, err.Error()

	var se *StatusError
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &se):
		code = se.StatusCode
		msg = se.Error()
	case errors.As(err, &apiErr):
		code = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		code = reqErr.HTTPStatusCode
	}

	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "API_KEY_HTTP_REFERRER_BLOCKED"),
		strings.Contains(lower, "requests from referer"),
		code == http.StatusForbidden && strings.Contains(lower, "blocked"):
		return TextResult(KeyRestrictionMessage)
	case code == http.StatusTooManyRequests,
		strings.Contains(msg, "RESOURCE_EXHAUSTED"),
		strings.Contains(lower, "quota"):
		return TextResult(QuotaMessage)
	}
	return TextResult(fmt.Sprintf(genericErrorFormat, msg))
}

// Unconfigured is used when no API key is set.
type Unconfigured struct{}

func (Unconfigured) Name() string { return "unconfigured" }

func (Unconfigured) Analyze(context.Context, Input) (Result, error) {
	return TextResult(UnconfiguredMessage), nil
}

// reportSchema describes Report for structured output.
var reportSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"overallScore": {
			Type:        jsonschema.Number,
			Description: "Overall balance score of the assignment (0-100). Higher is better.",
		},
		"overallComment": {
			Type:        jsonschema.String,
			Description: "Overall assessment of the assignment (3-4 sentences).",
		},
		"classes": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"classId": {Type: jsonschema.String, Description: "Class number, e.g. '1'."},
					"riskScore": {
						Type:        jsonschema.Number,
						Description: "Teaching difficulty of the class (0-100). Higher means more load on the teacher.",
					},
					"balanceScore": {
						Type:        jsonschema.Number,
						Description: "How well the class is mixed (0-100). Higher is better.",
					},
					"comment": {Type: jsonschema.String, Description: "Detailed comment on the class."},
				},
				Required: []string{"classId", "riskScore", "balanceScore", "comment"},
			},
		},
		"recommendations": {
			Type:        jsonschema.Array,
			Items:       &jsonschema.Definition{Type: jsonschema.String},
			Description: "Concrete suggestions, including placements for unassigned students.",
		},
	},
	Required: []string{"overallScore", "overallComment", "classes", "recommendations"},
}
