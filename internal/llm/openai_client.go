package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tjtech/sleepinsight-api/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep tracking assistant.

You receive one week of per-night sleep scores for a single user, plus baseline averages over the same window. You must base your conclusions only on the provided data.

Your goals:
- Summarize the user's week of sleep in clear, neutral language.
- Highlight patterns in duration, bedtime consistency, and sleep interruptions.
- Compare the strongest and weakest nights against the weekly baseline.
- Give practical, behavioral suggestions to improve sleep habits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, sleep environment, etc.).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2–3 sentences summarizing the week, naming the strongest and weakest nights.",
  "observations": [
    "3–6 bullet points about patterns in duration, bedtime consistency, and interruptions.",
    "At least one item comparing individual nights to the weekly baseline."
  ],
  "guidance": [
    "3–5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about schedule regularity if bedtime varies.",
    "Include at least one suggestion about sleep continuity if interruptions are frequent."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's scored week.

- "baseline" holds averages over the window: asleep hours, median bedtime (hours from midnight), and interruption count.
- "nights" is the list of scored nights, oldest first. Each night carries:
  - component scores: duration (0-50), bedtime consistency (0-30), interruptions (0-20),
  - "total_score" and "weighted_score" on a 0-100 scale,
  - raw figures: hours asleep, bedtime, and wake-event count.

JSON:

%s

Based on this data, respond in the required JSON format.`

// SummaryLLM is the interface for generating the weekly narrative summary.
type SummaryLLM interface {
	// GenerateSummary takes a week of scored nights and returns the narrative.
	GenerateSummary(ctx context.Context, summaryCtx *domain.SummaryContext) (*domain.WeeklySummary, error)
}

// OpenAIClient implements SummaryLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating summaries.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// WithSystemPrompt replaces the built-in system prompt, e.g. with one managed
// in Langfuse. Empty prompts are ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c == nil || prompt == "" {
		return c
	}
	c.systemPrompt = prompt
	return c
}

// GenerateSummary calls OpenAI to narrate the week of scored nights.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, summaryCtx *domain.SummaryContext) (*domain.WeeklySummary, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(summaryCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.WeeklySummary
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
