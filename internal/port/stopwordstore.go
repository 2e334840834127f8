package port

// StopwordStore persists per-language custom stopwords. Words are
// merged over the built-in sets at engine construction.
type StopwordStore interface {
	Add(lang string, words []string) error

	Remove(lang string, words []string) error

	List(lang string) ([]string, error)

	Close() error
}
