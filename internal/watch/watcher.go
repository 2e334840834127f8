package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"moujaz/internal/domain"
	"moujaz/internal/logger"
	"moujaz/internal/port"
)

// settleDelay gives the writer time to finish before the new file is
// read.
const settleDelay = 500 * time.Millisecond

// Watcher monitors a drop directory and summarizes text files as they
// appear, writing the result next to the source as
// <name>.summary.json.
type Watcher struct {
	dir        string
	summarizer port.Summarizer
	opts       domain.Options
	log        *logger.Logger
	fsw        *fsnotify.Watcher
}

// New creates a Watcher on dir. The directory must exist.
func New(dir string, summarizer port.Summarizer, opts domain.Options, log *logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return &Watcher{
		dir:        dir,
		summarizer: summarizer,
		opts:       opts,
		log:        log,
		fsw:        fsw,
	}, nil
}

// Start blocks processing events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.log.Info("watching %s for new text files (.txt, .md)", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("watcher stopped")
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isTextFile(event.Name) {
				w.log.Debug("ignoring %s", event.Name)
				continue
			}

			w.log.Info("new file: %s", event.Name)
			time.Sleep(settleDelay)
			if err := w.process(event.Name); err != nil {
				w.log.Error("failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Error("watcher error: %v", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

func (w *Watcher) process(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	result := w.summarizer.Summarize(string(data), w.opts)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	outPath := summaryPath(path)
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	w.log.Info("wrote %s (lang=%s, %d/%d sentences)",
		outPath, result.Language, len(result.SelectedIndices), result.SentenceCount)
	return nil
}

func isTextFile(path string) bool {
	if strings.HasSuffix(path, ".summary.json") {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return true
	}
	return false
}

// summaryPath maps input.txt to input.summary.json.
func summaryPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".summary.json"
}
