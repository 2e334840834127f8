package analyzer

import "moujaz/internal/domain"

// Set is an immutable stopword lookup. Sets must not be mutated after
// construction so the engine stays safe for concurrent callers.
type Set map[string]struct{}

// NewSet builds a Set from a word list.
func NewSet(words []string) Set {
	m := make(Set, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports membership.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Merge returns a new Set containing s plus extra. The receiver is
// left untouched.
func (s Set) Merge(extra []string) Set {
	m := make(Set, len(s)+len(extra))
	for w := range s {
		m[w] = struct{}{}
	}
	for _, w := range extra {
		m[w] = struct{}{}
	}
	return m
}

// Words returns the members as a slice, in map order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}

// Sets holds the per-language stopword sets used by a tokenizer.
type Sets struct {
	Arabic  Set
	English Set
}

// DefaultSets returns the built-in Arabic and English stopword sets.
func DefaultSets() Sets {
	return Sets{
		Arabic:  NewSet(arabicStopwords),
		English: NewSet(englishStopwords),
	}
}

// ForLanguage picks the set matching a detector language code.
func (s Sets) ForLanguage(lang string) Set {
	if lang == domain.LangArabic {
		return s.Arabic
	}
	return s.English
}

// englishStopwords covers function words, pronouns, conjunctions, and
// the single-letter remnants contraction splitting leaves behind.
var englishStopwords = []string{
	// Articles and copulas
	"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
	// Prepositions
	"in", "on", "at", "of", "for", "to", "from", "with", "without", "by",
	"into", "about", "over", "after", "before", "under", "above",
	// Conjunctions and connectives
	"and", "or", "but", "if", "then", "so", "than", "as", "that", "this",
	"these", "those",
	// Pronouns and possessives
	"it", "its", "you", "we", "they", "he", "she", "his", "her", "their",
	"our", "your", "i", "me", "my", "myself", "ours", "yours", "theirs",
	// Auxiliaries and negation
	"not", "no", "do", "does", "did", "done", "can", "could", "should",
	"would", "will", "just", "also", "such",
	// Interrogatives
	"what", "which", "who", "whom", "where", "when", "why", "how",
	// Quantifiers
	"all", "any", "both", "each", "few", "more", "most", "other", "some",
	"own", "same",
	// Contraction remnants ("it's" -> "it", "s")
	"s", "t", "d", "ll", "m", "o", "re", "ve", "y",
}

// arabicStopwords covers particles, pronouns, and common auxiliaries,
// with bare-alef spellings alongside the hamza forms.
var arabicStopwords = []string{
	// Particles and prepositions
	"و", "في", "على", "من", "إلى", "الى", "عن", "مع", "بين", "ضمن", "خلال",
	"قبل", "بعد", "عند", "عندما", "حيث", "إذ", "اذ", "إلا", "الا",
	// Demonstratives
	"هذا", "هذه", "ذلك", "تلك", "هناك", "هنا",
	// Pronouns
	"هو", "هي", "هم", "هن", "أنا", "انا", "أنت", "انت", "أنتم", "انتم",
	"أنتن", "انتن", "نحن",
	// Conjunctions and comparatives
	"كما", "مثل", "لكن", "بل", "أو", "او", "أم", "ام", "أكثر", "اكثر",
	"أقل", "اقل",
	// Negation and modality
	"قد", "لقد", "لم", "لن", "لا", "ما",
	// Interrogatives
	"ماذا", "لماذا", "كيف", "أين", "اين", "متى",
	// Complementizers
	"إن", "ان", "أن", "أنّ",
	// Copulas and futurity
	"كان", "تكون", "يكون", "كانت", "كانوا", "سوف",
	// Quantifiers and emphasis
	"كل", "أي", "اي", "بعض", "أيضًا", "ايضًا", "ايضا", "جدًا", "جدا",
}
