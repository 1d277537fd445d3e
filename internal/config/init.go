package config

import (
	"fmt"
	"os"
)

const exampleConfig = `# siteforge project description
project:
  name: bella-vista
  framework: react        # react | vue | angular | svelte | astro
  typescript: false
  color_scheme: blue

business:
  name: Bella Vista
  industry: restaurant    # small-business | restaurant | salon | fitness | portfolio
  tagline: Fresh, seasonal, unforgettable
  phone: "+1 555 010 2030"
  email: hello@bellavista.example
  address: 12 Harbor Street

features:
  - contact-form
  - gallery
  - menu-showcase

content:
  # ai_endpoint: https://content.example/api/generate
  ai_timeout: 10s

output:
  directory: ./bella-vista
  clean: false
  git_init: false

# events:
#   nats_url: ${NATS_URL}
#   subject: siteforge.generation
`

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
