package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"robocup_platform/pkg/core/agent"
	"robocup_platform/pkg/core/assistant"
	"robocup_platform/pkg/core/llm"
)

func managerWith(p llm.Provider) *agent.Manager {
	mgr := agent.NewManager(agent.Config{ActiveProvider: "test"})
	mgr.RegisterProvider("test", p)
	return mgr
}

// recordingProvider captures the prompts it was handed.
type recordingProvider struct {
	reply        string
	err          error
	lastPrompt   string
	lastSystem   string
	lastDeadline bool
}

func (p *recordingProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	p.lastPrompt = prompt
	p.lastSystem = systemPrompt
	_, p.lastDeadline = ctx.Deadline()
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func TestAskPassesQueryAndContext(t *testing.T) {
	p := &recordingProvider{reply: "Scale to 9 units for the Institutional tier."}
	client := assistant.NewClient(managerWith(p))

	reply := client.Ask(context.Background(), "How do I optimize my ROI?", "Current page: Dashboard")

	if reply != "Scale to 9 units for the Institutional tier." {
		t.Errorf("reply = %q", reply)
	}
	if !strings.Contains(p.lastPrompt, "How do I optimize my ROI?") {
		t.Errorf("query missing from prompt: %q", p.lastPrompt)
	}
	if !strings.Contains(p.lastPrompt, "Current page: Dashboard") {
		t.Errorf("context missing from prompt: %q", p.lastPrompt)
	}
	if !strings.Contains(p.lastSystem, "arm COFFEE") {
		t.Error("system prompt missing business persona")
	}
	if !p.lastDeadline {
		t.Error("remote call made without a deadline")
	}
}

func TestAskFallsBackOnRemoteFailure(t *testing.T) {
	p := &recordingProvider{err: errors.New("503 upstream unavailable")}
	client := assistant.NewClient(managerWith(p))

	reply := client.Ask(context.Background(), "hello", "")
	if reply != assistant.FallbackReply {
		t.Errorf("reply = %q, want fallback apology", reply)
	}
}

func TestAskFallsBackOnEmptyReply(t *testing.T) {
	p := &recordingProvider{reply: ""}
	client := assistant.NewClient(managerWith(p))

	if reply := client.Ask(context.Background(), "hello", ""); reply != assistant.FallbackReply {
		t.Errorf("reply = %q, want fallback apology", reply)
	}
}

func TestAskFallsBackOnFenceOnlyReply(t *testing.T) {
	p := &recordingProvider{reply: "```markdown\n```"}
	client := assistant.NewClient(managerWith(p))

	if reply := client.Ask(context.Background(), "hello", ""); reply != assistant.FallbackReply {
		t.Errorf("reply = %q, want fallback for an empty document", reply)
	}
}

func TestAskStripsMarkdownFences(t *testing.T) {
	p := &recordingProvider{reply: "```markdown\n**Great question.**\n```"}
	client := assistant.NewClient(managerWith(p))

	if reply := client.Ask(context.Background(), "hello", ""); reply != "**Great question.**" {
		t.Errorf("reply = %q, want fences stripped", reply)
	}
}
