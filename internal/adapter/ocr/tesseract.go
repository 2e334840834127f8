package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Tesseract extracts text from images by shelling out to the tesseract
// binary. It lives entirely outside the summarization core, which only
// ever sees the plain text this adapter returns.
type Tesseract struct {
	binary    string
	languages string
	timeout   time.Duration
}

// NewTesseract creates a Tesseract bridge. languages uses tesseract's
// own syntax, e.g. "ara+eng".
func NewTesseract(binary, languages string, timeout time.Duration) *Tesseract {
	if binary == "" {
		binary = "tesseract"
	}
	if languages == "" {
		languages = "ara+eng"
	}
	return &Tesseract{
		binary:    binary,
		languages: languages,
		timeout:   timeout,
	}
}

// Extract runs OCR on the image at imagePath and returns the trimmed
// text. "stdout" as the output argument makes tesseract print the
// recognized text instead of writing a file.
func (t *Tesseract) Extract(ctx context.Context, imagePath string) (string, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, t.binary, imagePath, "stdout", "-l", t.languages)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", t.binary, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", t.binary, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
