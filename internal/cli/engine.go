package cli

import (
	"fmt"
	"os"

	"moujaz/config"
	"moujaz/internal/adapter/analyzer"
	"moujaz/internal/adapter/store"
	"moujaz/internal/domain"
	"moujaz/internal/usecase"
)

// newSummarizer builds the engine with the built-in stopword sets plus
// any custom words persisted in the root directory's stopword store.
func newSummarizer() (*usecase.SummarizeUseCase, error) {
	sets := analyzer.DefaultSets()

	dbPath := config.StopwordDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); err == nil {
		st, err := store.NewBoltStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open stopword store: %w", err)
		}
		defer st.Close()

		ar, err := st.List(domain.LangArabic)
		if err != nil {
			return nil, err
		}
		en, err := st.List(domain.LangEnglish)
		if err != nil {
			return nil, err
		}
		sets = analyzer.Sets{
			Arabic:  sets.Arabic.Merge(ar),
			English: sets.English.Merge(en),
		}
	}

	return usecase.NewDefaultSummarizer(sets), nil
}
