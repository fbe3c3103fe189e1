package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no managed prompt is available.
const DefaultSystemPrompt = `You are a supportive, non-medical wellbeing assistant inside a self-care app.

You receive aggregated mood and sleep statistics for one user over a trailing window, together with the rule-based insights the app already showed them. Base every statement only on the provided data.

Your goals:
- Summarize how the user's mood and sleep have been in warm, plain language.
- Point out patterns: mood trend and variability, activities linked to better or worse mood, sleep duration against the 8 hour target, schedule consistency and sleep quality.
- Connect mood and sleep when the numbers suggest a link.
- Offer small, practical habits the user could try next.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention disorders, medication, doctors or treatment.
- If there are few entries, say the picture is still forming.
- Do not repeat the provided insights word for word.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences about mood and sleep in this window.",
  "observations": ["3-5 short observations grounded in the numbers."],
  "guidance": ["3-5 concrete, non-medical suggestions."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's wellbeing over the last %s.

- "mood" holds mood statistics: average_mood (1-5), mood_variability (standard deviation), mood_trend, energy_trend, most_frequent_activities and correlations (impact = mean mood with the activity minus mean mood without it).
- "sleep" holds sleep statistics: average_duration_minutes, average_quality (1-5), sleep_debt_minutes against 8 hours per night, consistency_score (0-100) and best/worst nights.
- "mood_insights" and "sleep_insights" are the messages the app already showed.
- "profile" has optional age and wellbeing goals.

JSON:

%s

Based on this data, respond in the required JSON format.`

// NarrativeLLM generates a wellbeing narrative from computed snapshots.
type NarrativeLLM interface {
	GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error)
}

// OpenAIClient implements NarrativeLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client. Returns nil if apiKey is
// empty; a nil client reports ErrOpenAIUnavailable. An empty systemPrompt
// selects DefaultSystemPrompt.
func NewOpenAIClient(apiKey, model, systemPrompt string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// Model returns the chat model used for generation.
func (c *OpenAIClient) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// GenerateNarrative calls OpenAI to describe the user's wellbeing window.
func (c *OpenAIClient) GenerateNarrative(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(narrativeCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, windowPhrase(narrativeCtx.Timeframe), string(contextJSON))

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

	return parseNarrative(resp.Choices[0].Message.Content)
}

// parseNarrative decodes the model output, tolerating a markdown code fence
// around the JSON.
func parseNarrative(content string) (*domain.NarrativeOutput, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var output domain.NarrativeOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	if output.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ErrOpenAIResponse)
	}
	if output.Observations == nil {
		output.Observations = []string{}
	}
	if output.Guidance == nil {
		output.Guidance = []string{}
	}
	return &output, nil
}

func windowPhrase(tf domain.Timeframe) string {
	switch tf {
	case domain.TimeframeMonth:
		return "30 days"
	case domain.TimeframeThreeMonths:
		return "3 months"
	case domain.TimeframeYear:
		return "year"
	default:
		return "7 days"
	}
}
