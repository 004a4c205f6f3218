// Package llm generates optional plain-language summaries of analysis
// results. Summaries are presentation only and never feed back into
// scoring; when no API key is configured a deterministic template
// summarizer is used instead.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mlaurier/doccheck/internal/types"
)

// defaultModel is the Gemini model used for summaries.
const defaultModel = "gemini-1.5-flash"

// Summarizer turns an analysis result into a short narrative for end users.
type Summarizer interface {
	Summarize(ctx context.Context, result types.AnalysisResult) (string, error)
	Close() error
}

// NewSummarizer selects the Gemini summarizer when an API key is present,
// the template fallback otherwise.
func NewSummarizer(ctx context.Context, apiKey string) (Summarizer, error) {
	if apiKey == "" {
		return TemplateSummarizer{}, nil
	}
	return NewGeminiSummarizer(ctx, apiKey)
}

// GeminiSummarizer generates summaries with Google Gemini.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSummarizer creates a Gemini-backed summarizer.
func NewGeminiSummarizer(ctx context.Context, apiKey string) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiSummarizer{client: client, model: defaultModel}, nil
}

// Summarize asks the model for a short narrative of the result. Falls back
// to the template summarizer if the model returns nothing usable.
func (s *GeminiSummarizer) Summarize(ctx context.Context, result types.AnalysisResult) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.1) // keep summaries stable across runs

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(result)))
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return TemplateSummarizer{}.fallback(result), nil
	}
	return text, nil
}

// Close releases the underlying client.
func (s *GeminiSummarizer) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func buildPrompt(result types.AnalysisResult) string {
	var sb strings.Builder
	sb.WriteString("Summarize the following document compliance analysis for a layperson in at most four sentences. ")
	sb.WriteString("Do not give legal advice; describe the findings only.\n\n")
	sb.WriteString(fmt.Sprintf("Document type: %s\n", result.DocumentType))
	sb.WriteString(fmt.Sprintf("Compliance score: %.0f/100 (%s)\n", result.ComplianceScore, result.ComplianceStatus()))
	sb.WriteString(fmt.Sprintf("Risk level: %s\n", result.RiskLevel))
	for _, v := range result.Violations {
		sb.WriteString(fmt.Sprintf("- [%s] %s\n", v.Severity, v.Message))
	}
	return sb.String()
}
