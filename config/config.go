package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"moujaz/internal/domain"
)

// Config holds all configuration for the moujaz tool.
type Config struct {
	Summarize SummarizeConfig `yaml:"summarize"`
	Batch     BatchConfig     `yaml:"batch"`
	Server    ServerConfig    `yaml:"server"`
	Watch     WatchConfig     `yaml:"watch"`
	OCR       OCRConfig       `yaml:"ocr"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SummarizeConfig holds sentence selection parameters.
type SummarizeConfig struct {
	MaxSentences   int     `yaml:"max_sentences"`
	Ratio          float64 `yaml:"ratio"`
	MinSentenceLen int     `yaml:"min_sentence_len"`
}

// Options converts the section into engine options.
func (c SummarizeConfig) Options() domain.Options {
	return domain.Options{
		MaxSentences:   c.MaxSentences,
		Ratio:          c.Ratio,
		MinSentenceLen: c.MinSentenceLen,
	}.Clamped()
}

// BatchConfig holds batch summarization configuration.
type BatchConfig struct {
	Includes     []string `yaml:"includes"`
	Excludes     []string `yaml:"excludes"`
	MaxFileBytes int64    `yaml:"max_file_bytes"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes"`
}

// WatchConfig holds drop-directory watcher configuration.
type WatchConfig struct {
	Dir string `yaml:"dir"`
}

// OCRConfig holds external OCR binary configuration.
type OCRConfig struct {
	Binary         string `yaml:"binary"`
	Languages      string `yaml:"languages"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Summarize: SummarizeConfig{
			MaxSentences:   domain.DefaultMaxSentences,
			Ratio:          domain.DefaultRatio,
			MinSentenceLen: domain.DefaultMinSentenceLen,
		},
		Batch: BatchConfig{
			Includes:     []string{"**/*.txt", "**/*.md"},
			Excludes:     []string{"**/node_modules/**", "**/.git/**", "**/.moujaz/**", "**/*.summary.json"},
			MaxFileBytes: 4 << 20,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			MaxUploadBytes: 10 << 20,
		},
		Watch: WatchConfig{
			Dir: "inbox",
		},
		OCR: OCRConfig{
			Binary:         "tesseract",
			Languages:      "ara+eng",
			TimeoutSeconds: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// moujaz.yaml, then .moujaz/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "moujaz.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".moujaz", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StopwordDBPath returns the path to the custom stopword database.
func StopwordDBPath(dir string) string {
	return filepath.Join(dir, ".moujaz", "stopwords.db")
}

// EnsureDataDir ensures the .moujaz directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".moujaz"), 0755)
}
