package config

import (
	"strings"
	"time"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// ProjectDefaultApplier handles project-level defaults.
type ProjectDefaultApplier struct{}

func (ProjectDefaultApplier) Domain() string { return "project" }

func (ProjectDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Project.Name == "" && cfg.Business.Name != "" {
		cfg.Project.Name = slugify(cfg.Business.Name)
	}
	if cfg.Project.Name == "" {
		cfg.Project.Name = "my-site"
	}
	if cfg.Project.Framework == "" {
		cfg.Project.Framework = FrameworkReact
	}
	if cfg.Project.ColorScheme == "" {
		cfg.Project.ColorScheme = "blue"
	}
	return nil
}

// BusinessDefaultApplier handles business metadata defaults.
type BusinessDefaultApplier struct{}

func (BusinessDefaultApplier) Domain() string { return "business" }

func (BusinessDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Business.Industry == "" {
		cfg.Business.Industry = "small-business"
	}
	if cfg.Business.Name == "" {
		cfg.Business.Name = cfg.Project.Name
	}
	return nil
}

// ContentDefaultApplier handles fallback-chain defaults.
type ContentDefaultApplier struct{}

func (ContentDefaultApplier) Domain() string { return "content" }

func (ContentDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Content.AITimeout <= 0 {
		cfg.Content.AITimeout = 10 * time.Second
	}
	return nil
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./" + cfg.Project.Name
	}
	return nil
}

// EventsDefaultApplier fills the event subject when publishing is enabled.
type EventsDefaultApplier struct{}

func (EventsDefaultApplier) Domain() string { return "events" }

func (EventsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Events != nil && cfg.Events.NATSURL != "" && cfg.Events.Subject == "" {
		cfg.Events.Subject = "siteforge.generation"
	}
	return nil
}

// ApplyDefaults runs every domain applier in order.
func ApplyDefaults(cfg *Config) error {
	appliers := []DefaultApplier{
		ProjectDefaultApplier{},
		BusinessDefaultApplier{},
		ContentDefaultApplier{},
		OutputDefaultApplier{},
		EventsDefaultApplier{},
	}
	for _, a := range appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

// slugify lowercases and replaces whitespace so a business name can serve as
// a project name.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
