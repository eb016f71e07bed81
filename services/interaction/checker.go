// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package interaction gates "add medication" behind an asynchronous
// drug-interaction safety check.
package interaction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Sentinel is the exact free-text answer that means "safe". The
// collaborator returns prose, not a structured result, so auto-commit
// hinges on this string matching verbatim: any rewording on the
// collaborator side routes every addition through the warning path.
// Kept as-is for compatibility with the existing collaborator.
const Sentinel = "No significant interactions found."

// FallbackText is surfaced when the check itself fails. The gate fails
// open on this path: the medication is added without a completed check
// rather than blocking the user on an unavailable collaborator.
const FallbackText = "Interaction check unavailable. Please consult your pharmacist."

// Checker asks the collaborator whether the given medications, taken
// together, have significant interactions. The first return value is
// free text; Sentinel is the only value meaning "safe".
type Checker interface {
	Check(ctx context.Context, medicationNames []string) (string, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, medicationNames []string) (string, error)

func (f CheckerFunc) Check(ctx context.Context, medicationNames []string) (string, error) {
	return f(ctx, medicationNames)
}

const checkerSystemPrompt = "You are a medication safety assistant. " +
	"Given a list of medications, describe any significant drug-drug " +
	"interactions in plain language for a patient. If there are none, " +
	"reply with exactly: " + Sentinel

// OpenAIChecker implements Checker against an OpenAI-compatible
// chat-completion endpoint.
type OpenAIChecker struct {
	client *openai.Client
	model  string
}

// NewOpenAIChecker reads OPENAI_API_KEY and OPENAI_MODEL from the
// environment, falling back to the secrets file used in container
// deployments.
func NewOpenAIChecker() (*OpenAIChecker, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if apiKey == "" {
		secretPath := "/run/secrets/openai_api_key"
		raw, err := os.ReadFile(secretPath)
		if err == nil {
			apiKey = strings.TrimSpace(string(raw))
			slog.Info("Read the OpenAI API key from secrets")
		} else {
			slog.Error("OPENAI_API_KEY environment variable not set and secret not found", "path", secretPath)
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}
	if model == "" {
		model = "gpt-4o-mini"
		slog.Warn("OPENAI_MODEL not set, defaulting to gpt-4o-mini")
	}
	slog.Info("Initializing interaction checker", "model", model)
	return &OpenAIChecker{client: openai.NewClient(apiKey), model: model}, nil
}

// Check sends the ordered medication list (current actives first, then
// the candidate) and returns the collaborator's text verbatim.
func (c *OpenAIChecker) Check(ctx context.Context, medicationNames []string) (string, error) {
	slog.Debug("Checking interactions", "model", c.model, "medications", len(medicationNames))

	prompt := "Medications: " + strings.Join(medicationNames, ", ")
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: checkerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		slog.Error("interaction check call failed", "error", err)
		return "", fmt.Errorf("interaction check call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		slog.Warn("interaction check returned no choices")
		return "", fmt.Errorf("interaction check returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
