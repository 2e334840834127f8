package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"moujaz/internal/logger"
	"moujaz/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a drop directory and summarize new files",
	Long: `Watch a directory and summarize every .txt or .md file created in
it, writing <name>.summary.json alongside. The directory defaults to
the configured watch dir and is created if missing. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	dir := cfg.Watch.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(GetRootDir(), dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create watch directory: %w", err)
	}

	summarizer, err := newSummarizer()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	w, err := watch.New(dir, summarizer, cfg.Summarize.Options(), log)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
