package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"mobile-todo-backend/pkg/gemini"
)

// extractTaskAction sends free text to Gemini and returns the structured
// task-action payload. Identical inputs on the same day hit the cache
// instead of the API.
func (uc *implUseCase) extractTaskAction(ctx context.Context, text string) (gemini.TaskAction, error) {
	now := time.Now().In(uc.location)
	cacheKey := now.Format("2006-01-02") + "|" + text

	if cached, ok := uc.parseCache.Get(cacheKey); ok {
		uc.l.Debugf(ctx, "task usecase: parse cache hit for %q", text)
		return cached, nil
	}

	prompt := gemini.BuildTaskActionPrompt(text, now.Format(time.RFC3339))

	resp, err := uc.llm.GenerateContent(ctx, &gemini.Request{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     gemini.ExtractionTemperature,
			MaxOutputTokens: 512,
		},
	})
	if err != nil {
		return gemini.TaskAction{}, fmt.Errorf("LLM request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return gemini.TaskAction{}, fmt.Errorf("empty response from LLM")
	}

	responseText := resp.Candidates[0].Content.Parts[0].Text
	cleanedJSON := sanitizeJSONResponse(responseText)

	var action gemini.TaskAction
	if err := json.Unmarshal([]byte(cleanedJSON), &action); err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to parse LLM response. Raw=%q Cleaned=%q", responseText, cleanedJSON)
		return gemini.TaskAction{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	if err := action.Validate(); err != nil {
		return gemini.TaskAction{}, err
	}

	uc.parseCache.Add(cacheKey, action)
	return action, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
