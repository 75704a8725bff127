package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docnav.yaml"

// ErrConfigNotFound indicates the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// TitleSource selects where document titles come from.
type TitleSource string

const (
	// TitleFromPath titles every document with its relative path.
	TitleFromPath TitleSource = "path"
	// TitleFromFrontmatter uses the frontmatter "title" field when present.
	TitleFromFrontmatter TitleSource = "frontmatter"
	// TitleFromHeading uses the first level-one heading when present.
	TitleFromHeading TitleSource = "heading"
)

// Config represents the application configuration.
type Config struct {
	// Root is the content directory scanned and written to.
	Root string `yaml:"root"`
	// Top is the top-level document, target of every trail's "Top" crumb.
	Top string `yaml:"top"`
	// IndexFilename names generated directory-index documents.
	IndexFilename string `yaml:"index_filename"`
	// SummaryFilename names the generated alphabetical summary at the root.
	SummaryFilename string `yaml:"summary_filename"`
	// OverrideFilename names author-provided directory indexes copied verbatim.
	OverrideFilename string `yaml:"override_filename"`
	// Extensions lists document file extensions.
	Extensions []string `yaml:"extensions,omitempty"`
	// Ignore holds gitignore-style patterns excluded from scanning.
	Ignore []string `yaml:"ignore,omitempty"`
	// Language is the BCP 47 tag used for sorting.
	Language string `yaml:"language"`
	// TitleSource selects document titles (path, frontmatter or heading).
	TitleSource TitleSource `yaml:"title_source"`
	// TemplatesDir optionally holds directory.md.tmpl / summary.md.tmpl overrides.
	TemplatesDir string `yaml:"templates_dir,omitempty"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	// Textfile, when set, receives the run's metrics in Prometheus text format.
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		// A missing .env is the common case.
		fmt.Fprintf(os.Stderr, "Note: .env file not found or couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	// #nosec G304 -- configPath is the operator-provided config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references first.
func Parse(data []byte) (*Config, error) {
	expandedData := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Top == "" {
		c.Top = "README.md"
	}
	if c.IndexFilename == "" {
		c.IndexFilename = "_index.md"
	}
	if c.SummaryFilename == "" {
		c.SummaryFilename = "SUMMARY.md"
	}
	if c.OverrideFilename == "" {
		c.OverrideFilename = "index.md"
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".md"}
	}
	if c.Ignore == nil {
		c.Ignore = []string{"node_modules/"}
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.TitleSource == "" {
		c.TitleSource = TitleFromPath
	}
	c.Logging.applyDefaults()
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Default()
	example.Root = "docs"
	example.Ignore = []string{"node_modules/", "drafts/"}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	header := "# docnav configuration\n# ${VAR} references are expanded; .env and .env.local are loaded first.\n"
	// #nosec G306 -- configuration file holds no secrets
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
