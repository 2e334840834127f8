package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"moujaz/internal/adapter/fs"
)

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Summarize every matching file under a directory",
	Long: `Walk a directory, summarize each file matching the configured include
globs, and write the result next to the source as <name>.summary.json.

Examples:
  moujaz batch .
  moujaz batch /path/to/docs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes, cfg.Batch.MaxFileBytes)

	fmt.Printf("Scanning %s...\n", path)
	files, err := walker.Walk(path)
	if err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("No matching files found.")
		return nil
	}

	summarizer, err := newSummarizer()
	if err != nil {
		return err
	}
	opts := cfg.Summarize.Options()

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Summarizing[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	var processed int
	var errs []string

	for _, file := range files {
		content, err := fs.ReadFile(file.Path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("failed to read %s: %v", file.RelPath, err))
			bar.Add(1)
			continue
		}

		result := summarizer.Summarize(content, opts)

		out, _ := json.MarshalIndent(result, "", "  ")
		outPath := strings.TrimSuffix(file.Path, filepath.Ext(file.Path)) + ".summary.json"
		if err := os.WriteFile(outPath, out, 0644); err != nil {
			errs = append(errs, fmt.Sprintf("failed to write %s: %v", outPath, err))
			bar.Add(1)
			continue
		}

		processed++
		bar.Add(1)
	}

	fmt.Printf("\nBatch complete:\n")
	fmt.Printf("  Files summarized: %d\n", processed)
	fmt.Printf("  Files failed:     %d\n", len(errs))

	if len(errs) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range errs {
			fmt.Printf("  - %s\n", e)
		}
	}

	return nil
}
