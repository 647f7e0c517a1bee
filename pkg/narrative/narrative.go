// Package narrative generates an optional AI coaching summary for a
// finished plan using Google Gemini. The summary is decoration: plan
// generation never depends on it, and any failure here degrades to an
// empty summary rather than an error surfaced to the caller.
package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/fitglue/planner/pkg/domain/planner"
)

const geminiModel = "gemini-2.0-flash"

// Summarizer wraps the Gemini client configuration. A zero API key
// means the feature is disabled.
type Summarizer struct {
	apiKey string
}

// NewFromEnv reads GEMINI_API_KEY. Absent key disables summaries.
func NewFromEnv() *Summarizer {
	return &Summarizer{apiKey: os.Getenv("GEMINI_API_KEY")}
}

func (s *Summarizer) Enabled() bool {
	return s.apiKey != ""
}

// Summarize produces a short coaching note for the plan. Returns an
// empty string when disabled.
func (s *Summarizer) Summarize(ctx context.Context, logger *slog.Logger, plan *planner.Plan) (string, error) {
	if !s.Enabled() {
		logger.Warn("GEMINI_API_KEY not set, skipping coaching summary")
		return "", nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(0.7)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(300)

	prompt := buildPrompt(plan)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	rawOutput := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			rawOutput += string(text)
		}
	}

	summary := cleanOutput(rawOutput)
	logger.Info("coaching summary generated", slog.Int("length", len(summary)))
	return summary, nil
}

func buildPrompt(plan *planner.Plan) string {
	return fmt.Sprintf(`You are a fitness coach writing a short note to a client about their new training plan.

Plan Context:
%s

Guidelines:
- Be encouraging and positive
- Keep it concise, 2-3 sentences max
- Reference specific details from the plan, not generic advice
- Match the tone of a premium fitness app

Respond with ONLY the note, nothing else.`, buildPlanContext(plan))
}

// buildPlanContext summarizes the plan's shape for the prompt.
func buildPlanContext(plan *planner.Plan) string {
	var parts []string

	p := plan.Profile
	parts = append(parts, fmt.Sprintf("Goal: %s", p.Goal))
	parts = append(parts, fmt.Sprintf("Experience: %s", p.Level))
	parts = append(parts, fmt.Sprintf("Schedule: %d days/week for %d weeks", p.DaysPerWeek, len(plan.Weeks)))
	if len(p.Injuries) > 0 {
		parts = append(parts, fmt.Sprintf("Working around: %s", strings.Join(p.Injuries, ", ")))
	}

	if len(plan.Weeks) > 0 {
		var names []string
		seen := map[string]bool{}
		for _, day := range plan.Weeks[0].Days {
			for _, slot := range day.Slots {
				if !seen[slot.Exercise] && len(names) < 5 {
					names = append(names, slot.Exercise)
					seen[slot.Exercise] = true
				}
			}
		}
		if len(names) > 0 {
			parts = append(parts, fmt.Sprintf("Key exercises: %s", strings.Join(names, ", ")))
		}
	}
	parts = append(parts, fmt.Sprintf("Total sessions: %d", plan.SlotCount()))

	return strings.Join(parts, "\n")
}

func cleanOutput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_`")
	if len(s) > 500 {
		s = s[:497] + "..."
	}
	return s
}
