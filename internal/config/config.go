// Package config loads and validates the siteforge project description.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Framework identifies a supported target front-end framework.
type Framework string

const (
	FrameworkReact   Framework = "react"
	FrameworkVue     Framework = "vue"
	FrameworkAngular Framework = "angular"
	FrameworkSvelte  Framework = "svelte"
	FrameworkAstro   Framework = "astro"
)

// SupportedFrameworks lists every framework a renderer ships for, in a stable
// order used by CLI help output.
func SupportedFrameworks() []Framework {
	return []Framework{FrameworkReact, FrameworkVue, FrameworkAngular, FrameworkSvelte, FrameworkAstro}
}

// Config represents the full project description.
type Config struct {
	Project  ProjectConfig  `yaml:"project"`
	Business BusinessConfig `yaml:"business"`
	Features []string       `yaml:"features"`
	Content  ContentConfig  `yaml:"content"`
	Output   OutputConfig   `yaml:"output"`
	Events   *EventsConfig  `yaml:"events,omitempty"`
	Metrics  *MetricsConfig `yaml:"metrics,omitempty"`
}

// ProjectConfig describes the generated project itself.
type ProjectConfig struct {
	Name        string    `yaml:"name"`
	Framework   Framework `yaml:"framework"`
	TypeScript  bool      `yaml:"typescript"`
	ColorScheme string    `yaml:"color_scheme,omitempty"`
}

// BusinessConfig carries the business metadata fed to content resolution.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Industry string `yaml:"industry"`
	Tagline  string `yaml:"tagline,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Address  string `yaml:"address,omitempty"`
}

// ContentConfig tunes the content-resolution fallback chain.
type ContentConfig struct {
	// AIEndpoint enables the AI content collaborator when non-empty.
	AIEndpoint string `yaml:"ai_endpoint,omitempty"`
	// AITimeout bounds the collaborator call; expiry triggers the fallback
	// chain rather than aborting generation.
	AITimeout time.Duration `yaml:"ai_timeout,omitempty"`
}

// OutputConfig describes where and how the project tree is materialized.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"`
	GitInit   bool   `yaml:"git_init"`
}

// EventsConfig enables publishing run summaries to NATS when configured.
type EventsConfig struct {
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject,omitempty"`
}

// MetricsConfig enables the Prometheus exposition endpoint in watch mode.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// Load reads, expands, defaults and validates a configuration file.
func Load(configPath string) (*Config, error) {
	// .env is optional; absence is not an error.
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Environment variable references (${VAR}) in the YAML are expanded so
	// secrets like NATS credentials stay out of the file.
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := ApplyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
