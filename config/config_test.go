package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Summarize.MaxSentences != 3 {
		t.Errorf("expected MaxSentences=3, got %d", cfg.Summarize.MaxSentences)
	}
	if cfg.Summarize.Ratio != 0.25 {
		t.Errorf("expected Ratio=0.25, got %f", cfg.Summarize.Ratio)
	}
	if cfg.Summarize.MinSentenceLen != 30 {
		t.Errorf("expected MinSentenceLen=30, got %d", cfg.Summarize.MinSentenceLen)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected Addr=:8080, got %s", cfg.Server.Addr)
	}
	if cfg.OCR.Binary != "tesseract" {
		t.Errorf("expected tesseract binary, got %s", cfg.OCR.Binary)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "moujaz.yaml")

	content := `
summarize:
  max_sentences: 5
  ratio: 0.5
server:
  addr: ":9000"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Summarize.MaxSentences != 5 {
		t.Errorf("expected MaxSentences=5, got %d", cfg.Summarize.MaxSentences)
	}
	if cfg.Summarize.Ratio != 0.5 {
		t.Errorf("expected Ratio=0.5, got %f", cfg.Summarize.Ratio)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("expected Addr=:9000, got %s", cfg.Server.Addr)
	}
	// Untouched sections keep defaults.
	if cfg.Summarize.MinSentenceLen != 30 {
		t.Errorf("expected default MinSentenceLen, got %d", cfg.Summarize.MinSentenceLen)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "moujaz.yaml")

	content := `
watch:
  dir: dropbox
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Watch.Dir != "dropbox" {
		t.Errorf("expected dropbox, got %s", cfg.Watch.Dir)
	}
}

func TestSummarizeConfig_OptionsClamps(t *testing.T) {
	c := SummarizeConfig{MaxSentences: 0, Ratio: 2.0, MinSentenceLen: -1}
	opts := c.Options()

	if opts.MaxSentences < 1 {
		t.Errorf("MaxSentences not clamped: %d", opts.MaxSentences)
	}
	if opts.Ratio <= 0 || opts.Ratio > 1 {
		t.Errorf("Ratio not clamped: %f", opts.Ratio)
	}
	if opts.MinSentenceLen < 0 {
		t.Errorf("MinSentenceLen not clamped: %d", opts.MinSentenceLen)
	}
}

func TestStopwordDBPath(t *testing.T) {
	path := StopwordDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".moujaz", "stopwords.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
