package model

import "time"

// Config holds all tool configuration
type Config struct {
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// CacheConfig controls the parse-result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch-mode parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls artifact rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Indent  string `yaml:"indent" mapstructure:"indent"`
}

// LLMConfig controls the optional recommendation-text provider.
// Never required: any failure degrades to the static recommendation table.
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"`
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"-" mapstructure:"-"`
	BaseURL           string  `yaml:"base_url" mapstructure:"base_url"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".ocmr-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose: false,
			Indent:  "    ",
		},
		LLM: LLMConfig{
			Provider:          "",
			Model:             "gpt-4o-mini",
			RequestsPerSecond: 1,
			Burst:             2,
		},
	}
}

// Mappings is the batch-mode routing table: for each input document, which
// output file receives each category's records. A missing category falls
// back to the Default entry when one exists.
type Mappings struct {
	InputDir  string            `yaml:"input_dir"`
	OutputDir string            `yaml:"output_dir"`
	Documents []DocumentMapping `yaml:"documents"`
}

// DocumentMapping routes one input document's categories to output files
type DocumentMapping struct {
	File    string              `yaml:"file"`
	Outputs map[Category]string `yaml:"outputs"`
}
