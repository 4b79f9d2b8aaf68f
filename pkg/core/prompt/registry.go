// Package prompt provides a centralized prompt library for the platform's
// generative-AI features. Prompts are defined in JSON files and loaded at
// runtime, so copy changes don't require a rebuild.
package prompt

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
)

// Template represents a reusable prompt with metadata.
type Template struct {
	ID             string `json:"id"`                   // e.g. "assistant.chat"
	Name           string `json:"name"`                 // human-readable name
	Category       string `json:"category"`             // assistant, voice, ...
	Description    string `json:"description"`          // purpose of the prompt
	SystemPrompt   string `json:"system_prompt"`        // system instruction content
	UserPromptTmpl string `json:"user_prompt_template"` // Go template for the user prompt
	Version        string `json:"version"`
}

// Registry holds all loaded prompts.
type Registry struct {
	prompts map[string]*Template
	mu      sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{prompts: make(map[string]*Template)}
		registerDefaults(globalRegistry)
	})
	return globalRegistry
}

// Register adds a prompt template, replacing any default under the same ID.
func (r *Registry) Register(pt *Template) error {
	if pt.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[pt.ID] = pt
	return nil
}

// GetPrompt retrieves a prompt by ID.
func (r *Registry) GetPrompt(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.prompts[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("prompt not found: %s", id)
}

// SystemPrompt returns only the system prompt string for an ID.
func (r *Registry) SystemPrompt(id string) (string, error) {
	pt, err := r.GetPrompt(id)
	if err != nil {
		return "", err
	}
	return pt.SystemPrompt, nil
}

// Count returns the number of registered prompts.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}

// RenderUserPrompt executes the user prompt template with the given variables.
func RenderUserPrompt(pt *Template, vars map[string]interface{}) (string, error) {
	if pt.UserPromptTmpl == "" {
		return "", nil
	}
	tmpl, err := template.New(pt.ID).Parse(pt.UserPromptTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
