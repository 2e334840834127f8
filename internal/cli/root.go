package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moujaz/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "moujaz",
	Short: "Bilingual extractive summarizer for Arabic and English text",
	Long: `Moujaz summarizes text by selecting its most representative sentences,
with no model or network dependency. Arabic and English are detected
automatically and handled with language-specific stopword sets.

Example usage:
  moujaz summarize notes.txt          # Summarize one file
  echo "..." | moujaz summarize       # Summarize stdin
  moujaz batch ./docs                 # Summarize every matching file
  moujaz serve                        # HTTP API with OCR upload`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./moujaz.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
