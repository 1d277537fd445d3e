package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration marks fatal configuration problems. Generation fails fast
// on these before anything is written.
var ErrConfiguration = errors.New("configuration error")

// SupportedIndustries lists industry keys with bundled default content. The
// content package embeds one asset per entry; a parity test there keeps the
// two in sync.
func SupportedIndustries() []string {
	return []string{"small-business", "restaurant", "salon", "fitness", "portfolio"}
}

// Validate performs fail-fast validation of the full configuration.
func Validate(cfg *Config) error {
	v := &validator{cfg: cfg}
	return v.validate()
}

type validator struct {
	cfg *Config
}

func (v *validator) validate() error {
	if err := v.validateProject(); err != nil {
		return err
	}
	if err := v.validateBusiness(); err != nil {
		return err
	}
	if err := v.validateFeatures(); err != nil {
		return err
	}
	return v.validateOutput()
}

func (v *validator) validateProject() error {
	fw := v.cfg.Project.Framework
	for _, s := range SupportedFrameworks() {
		if fw == s {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported framework %q (supported: %s)",
		ErrConfiguration, fw, joinFrameworks(SupportedFrameworks()))
}

func (v *validator) validateBusiness() error {
	ind := v.cfg.Business.Industry
	for _, s := range SupportedIndustries() {
		if ind == s {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported industry %q (supported: %s)",
		ErrConfiguration, ind, strings.Join(SupportedIndustries(), ", "))
}

func (v *validator) validateFeatures() error {
	seen := make(map[string]bool, len(v.cfg.Features))
	for _, f := range v.cfg.Features {
		if f == "" {
			return fmt.Errorf("%w: empty feature id", ErrConfiguration)
		}
		if seen[f] {
			return fmt.Errorf("%w: duplicate feature id %q", ErrConfiguration, f)
		}
		seen[f] = true
	}
	return nil
}

func (v *validator) validateOutput() error {
	if v.cfg.Output.Directory == "" {
		return fmt.Errorf("%w: output directory must not be empty", ErrConfiguration)
	}
	return nil
}

func joinFrameworks(fws []Framework) string {
	names := make([]string, len(fws))
	for i, f := range fws {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
