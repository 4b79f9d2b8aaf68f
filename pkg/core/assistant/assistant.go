// Package assistant wraps the generative-language service behind the two
// operations the UI consumes: free-form chat and a structured sales forecast.
// Remote failures never escape this boundary as errors the UI would crash on;
// chat degrades to a canned apology and the forecast degrades to an absent result.
package assistant

import (
	"context"

	"robocup_platform/pkg/core/agent"
	"robocup_platform/pkg/core/prompt"
	"robocup_platform/pkg/core/utils"
)

// FallbackReply is shown when the remote service is unreachable or errors out.
const FallbackReply = "I am currently recalibrating my neural circuits. Please try again in a moment."

// Client answers user questions with the business-partner persona.
type Client struct {
	mgr *agent.Manager
}

// NewClient creates an assistant client backed by the agent manager.
func NewClient(mgr *agent.Manager) *Client {
	return &Client{mgr: mgr}
}

// Ask sends the query plus free-form page context to the model and returns a
// displayable reply. On any failure it returns the fallback apology string;
// the caller never has to branch on an error.
func (c *Client) Ask(ctx context.Context, query, pageContext string) string {
	pt, err := prompt.Get().GetPrompt("assistant.chat")
	if err != nil {
		return FallbackReply
	}

	userPrompt, err := prompt.RenderUserPrompt(pt, map[string]interface{}{
		"Context": pageContext,
		"Query":   query,
	})
	if err != nil {
		return FallbackReply
	}

	reply, err := c.mgr.ExecutePrompt(ctx, "chat", userPrompt, pt.SystemPrompt, nil)
	if err != nil || reply == "" {
		return FallbackReply
	}

	// A reply that was nothing but fences cleans down to an empty document.
	cleaned := utils.CleanMarkdown(reply)
	if !utils.ValidateMarkdown(cleaned) {
		return FallbackReply
	}
	return cleaned
}
