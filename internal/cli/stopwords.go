package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"moujaz/config"
	"moujaz/internal/adapter/store"
	"moujaz/internal/port"
)

var stopwordsLang string

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Manage custom stopwords",
	Long: `Manage the per-language custom stopwords merged over the built-in
sets. Words are stored in .moujaz/stopwords.db under the root directory.

Examples:
  moujaz stopwords add --lang en basically actually
  moujaz stopwords remove --lang en actually
  moujaz stopwords list --lang ar`,
}

var stopwordsAddCmd = &cobra.Command{
	Use:   "add [words...]",
	Short: "Add custom stopwords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStopwordStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Add(stopwordsLang, args); err != nil {
			return err
		}
		fmt.Printf("Added %d word(s) to %q\n", len(args), stopwordsLang)
		return nil
	},
}

var stopwordsRemoveCmd = &cobra.Command{
	Use:   "remove [words...]",
	Short: "Remove custom stopwords",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStopwordStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Remove(stopwordsLang, args); err != nil {
			return err
		}
		fmt.Printf("Removed %d word(s) from %q\n", len(args), stopwordsLang)
		return nil
	},
}

var stopwordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom stopwords",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStopwordStore()
		if err != nil {
			return err
		}
		defer st.Close()

		words, err := st.List(stopwordsLang)
		if err != nil {
			return err
		}
		if len(words) == 0 {
			fmt.Printf("No custom stopwords for %q.\n", stopwordsLang)
			return nil
		}
		for _, w := range words {
			fmt.Println(w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopwordsCmd)
	stopwordsCmd.AddCommand(stopwordsAddCmd, stopwordsRemoveCmd, stopwordsListCmd)
	stopwordsCmd.PersistentFlags().StringVarP(&stopwordsLang, "lang", "l", "en", `language ("ar" or "en")`)
}

func openStopwordStore() (port.StopwordStore, error) {
	root := GetRootDir()
	if err := config.EnsureDataDir(root); err != nil {
		return nil, fmt.Errorf("failed to create .moujaz directory: %w", err)
	}
	return store.NewBoltStore(config.StopwordDBPath(root))
}
