// Package prompt generates the weekly discussion question for a news group
// by calling an external text-generation service.
package prompt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/observability"
)

// Generator produces a discussion prompt for a group. Implementations must
// always return a usable string; external failures stay behind this boundary.
type Generator interface {
	Generate(ctx context.Context, category, groupName string) string
}

// TextClient is the minimal surface of a text-generation backend.
type TextClient interface {
	GenerateText(ctx context.Context, instruction string) (string, error)
}

// Fallback is the deterministic prompt used when the external call fails.
func Fallback(groupName string) string {
	return fmt.Sprintf("What's the most interesting thing you heard about %s this week?", groupName)
}

// Instruction builds the natural-language request submitted to the text
// service for the given group.
func Instruction(category, groupName string) string {
	return fmt.Sprintf(`You are a creative community manager for a news discussion group called '%s' focused on '%s'.
Generate a single, engaging "Question of the Week" for the members to discuss.

Requirements:
1. The question should be relevant to %s.
2. It should encourage members to bring up different interesting opinions.
3. Keep it under 20 words.
4. Do not include phrases like "Here is a question". Just output the question directly.
5. The group might have members with varying levels of knowledge, so make it accessible but still intriguing.
6. If members ask to change a question, make the new one more interesting or more controversial than the previous one.`,
		groupName, category, category)
}

type weeklyGenerator struct {
	client TextClient
}

// NewWeeklyGenerator returns a Generator backed by the given text client.
func NewWeeklyGenerator(client TextClient) Generator {
	return &weeklyGenerator{client: client}
}

// Generate asks the text service for a question of the week. A single
// attempt is made; any failure or empty response degrades to the fallback
// string so group operations never block on the AI backend.
func (g *weeklyGenerator) Generate(ctx context.Context, category, groupName string) string {
	start := time.Now()
	text, err := g.client.GenerateText(ctx, Instruction(category, groupName))
	observability.PromptLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		svcErr := models.NewExternalServiceError("text generation", err)
		middleware.Logger.WarnContext(ctx, "weekly prompt generation failed, using fallback",
			slog.String("group", groupName),
			slog.String("category", category),
			slog.String("error", svcErr.Error()),
		)
		observability.PromptGenerationsTotal.WithLabelValues("fallback").Inc()
		return Fallback(groupName)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		middleware.Logger.WarnContext(ctx, "weekly prompt generation returned empty text, using fallback",
			slog.String("group", groupName),
		)
		observability.PromptGenerationsTotal.WithLabelValues("fallback").Inc()
		return Fallback(groupName)
	}

	observability.PromptGenerationsTotal.WithLabelValues("generated").Inc()
	return text
}
