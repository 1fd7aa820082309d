// Package service talks to the external collaborators: the text
// completion model behind the AI assistant and the video renderer.
package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// fallbackResponse is served whenever the completion service is out of
// quota or not configured at all. A degraded answer beats a 500 here.
const fallbackResponse = "I'm currently unavailable due to high demand. " +
	"Your note has been saved - please try asking me again in a few minutes."

type Assistant struct {
	client *http.Client
}

func NewAssistant() *Assistant {
	return &Assistant{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// Complete sends a prompt to the completion service and returns its
// text. Quota and rate-limit rejections degrade to a canned local
// response, any other upstream failure is the caller's problem.
func (a *Assistant) Complete(prompt string) (string, error) {
	url := viper.GetString("assistant.url")
	if url == "" {
		return fallbackResponse, nil
	}

	body, _ := json.Marshal(completionRequest{
		Model:  viper.GetString("assistant.model"),
		Prompt: prompt,
	})

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	if key := viper.GetString("assistant.api_key"); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion service unreachable, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		zap.L().Warn("Completion service over quota, serving fallback response")
		return fallbackResponse, nil
	}

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion service returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response, %w", err)
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("malformed completion response, %w", err)
	}

	return out.Text, nil
}

// BuildNotePrompt frames a user question with the note the user is
// looking at, so answers stay grounded in their own content.
func BuildNotePrompt(message, noteContext string) string {
	if noteContext == "" {
		return message
	}

	return fmt.Sprintf("You are a note-taking assistant. The user is working on this note:\n\n%s\n\nQuestion: %s", noteContext, message)
}
