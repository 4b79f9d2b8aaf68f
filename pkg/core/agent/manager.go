package agent

import (
	"context"
	"time"

	"robocup_platform/pkg/core/llm"
)

// Config selects which provider serves each assistant role.
type Config struct {
	ActiveProvider string                 `yaml:"active_provider"`
	TimeoutSeconds int                    `yaml:"timeout_seconds"`
	Agents         map[string]AgentConfig `yaml:"agents"`
}

// AgentConfig overrides the provider or model for a single role
// (e.g. "chat", "forecast", "voice").
type AgentConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// Manager routes prompt execution to the configured provider. It is the single
// choke point for remote generative calls, so the request timeout lives here:
// a hung upstream must never leave a caller waiting forever.
type Manager struct {
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			"gemini": &llm.GeminiProvider{},
			"static": &llm.StaticProvider{Reply: "The assistant is offline in this environment."},
		},
	}
}

// RegisterProvider replaces or adds a provider under the given name.
func (m *Manager) RegisterProvider(name string, p llm.Provider) {
	m.providers[name] = p
}

// GetProvider resolves the provider for an agent role.
func (m *Manager) GetProvider(agentRole string) llm.Provider {
	if agentCfg, ok := m.config.Agents[agentRole]; ok && agentCfg.Provider != "" {
		if p, ok := m.providers[agentCfg.Provider]; ok {
			return p
		}
	}
	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p
	}
	return m.providers["gemini"]
}

// ModelFor returns the configured model override for a role, or "".
func (m *Manager) ModelFor(agentRole string) string {
	if agentCfg, ok := m.config.Agents[agentRole]; ok {
		return agentCfg.Model
	}
	return ""
}

// Timeout returns the per-call deadline for remote generation.
func (m *Manager) Timeout() time.Duration {
	if m.config.TimeoutSeconds > 0 {
		return time.Duration(m.config.TimeoutSeconds) * time.Second
	}
	return 30 * time.Second
}

// ExecutePrompt runs a prompt through the provider configured for the role,
// applying the model override and the call deadline.
func (m *Manager) ExecutePrompt(ctx context.Context, agentRole, userPrompt, systemPrompt string, options map[string]interface{}) (string, error) {
	provider := m.GetProvider(agentRole)

	if options == nil {
		options = map[string]interface{}{}
	}
	if model := m.ModelFor(agentRole); model != "" {
		if _, set := options["model"]; !set {
			options["model"] = model
		}
	}

	ctx, cancel := context.WithTimeout(ctx, m.Timeout())
	defer cancel()

	return provider.GenerateResponse(ctx, userPrompt, systemPrompt, options)
}
