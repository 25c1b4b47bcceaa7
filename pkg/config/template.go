package config

// DefaultTemplate is the starter configuration written by `gohtmlint init`.
// Rules may be keyed by ID (UA007) or by name (missing-alt).
const DefaultTemplate = `# gohtmlint configuration
# See 'gohtmlint rules' for the full rule catalogue.

severity_default: warning

# ignore:
#   - "vendor/**"
#   - "**/*.min.html"

rules:
  # missing-skip-link:
  #   enabled: true
  # heading-skip:
  #   severity: error
`

// TemplateConfig returns the parsed form of DefaultTemplate. Used by
// tests to keep the template and the schema from drifting apart.
func TemplateConfig() (*Config, error) {
	return FromYAML([]byte(DefaultTemplate))
}
