package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"moujaz/internal/domain"
)

var (
	sumMaxSentences   int
	sumRatio          float64
	sumMinSentenceLen int
	sumJSON           bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize a file or stdin",
	Long: `Summarize a text file, or stdin when no file is given.

Examples:
  moujaz summarize article.txt
  moujaz summarize article.txt --max-sentences 5 --json
  cat article.txt | moujaz summarize`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().IntVarP(&sumMaxSentences, "max-sentences", "n", 0, "maximum sentences to select (default from config)")
	summarizeCmd.Flags().Float64VarP(&sumRatio, "ratio", "r", 0, "fraction of sentences to select (default from config)")
	summarizeCmd.Flags().IntVar(&sumMinSentenceLen, "min-sentence-len", -1, "minimum sentence length eligible for scoring (default from config)")
	summarizeCmd.Flags().BoolVar(&sumJSON, "json", false, "output the full result as JSON")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		text = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	summarizer, err := newSummarizer()
	if err != nil {
		return err
	}

	result := summarizer.Summarize(text, cliOptions())

	if sumJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(result.Text)
	fmt.Fprintf(os.Stderr, "[%s] %d of %d sentences\n",
		result.Language, len(result.SelectedIndices), result.SentenceCount)
	return nil
}

// cliOptions overlays the summarize flags on the configured defaults.
func cliOptions() domain.Options {
	opts := GetConfig().Summarize.Options()
	if sumMaxSentences > 0 {
		opts.MaxSentences = sumMaxSentences
	}
	if sumRatio > 0 {
		opts.Ratio = sumRatio
	}
	if sumMinSentenceLen >= 0 {
		opts.MinSentenceLen = sumMinSentenceLen
	}
	return opts.Clamped()
}
