package port

// Detector classifies text by script.
type Detector interface {
	Detect(text string) string
}

// Segmenter splits normalized text into sentences in appearance order.
type Segmenter interface {
	Split(text string) []string
}

// Tokenizer extracts filtered, lowercased word tokens for a language.
type Tokenizer interface {
	Tokenize(text, lang string) []string
}
