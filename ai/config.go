// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for the assistant's model provider.
type Config struct {
	// Host is the base URL for the chat completion API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	Host string

	// APIKey is the bearer token sent to the API.
	// Use "none" for local services that don't require authentication.
	APIKey string

	// Model is the chat model identifier.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	Model string

	// MaxToolSteps limits how many model round-trips a single reply may
	// take while tools are being called. Default: 5
	MaxToolSteps int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the chat API host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithAPIKey sets the API bearer token.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithModel sets the chat model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithMaxToolSteps sets the tool round-trip limit for a single reply.
func WithMaxToolSteps(steps int) ConfigOption {
	return func(c *Config) {
		c.MaxToolSteps = steps
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		Host:         "http://localhost:11434/v1",
		APIKey:       "none",
		Model:        "qwen2.5:3b",
		MaxToolSteps: 5,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("https://api.openai.com/v1"),
//	    WithModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.APIKey == "" {
		return errors.New("ai config: APIKey is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.MaxToolSteps < 1 {
		return errors.New("ai config: MaxToolSteps must be at least 1")
	}
	return nil
}
