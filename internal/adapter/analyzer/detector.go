package analyzer

import "moujaz/internal/domain"

// ScriptDetector classifies text as Arabic or English by script
// presence. A single rune in the Arabic block is decisive; everything
// else, including empty or all-punctuation input, is English.
type ScriptDetector struct{}

// NewScriptDetector creates a new ScriptDetector.
func NewScriptDetector() *ScriptDetector {
	return &ScriptDetector{}
}

// Detect returns "ar" or "en".
func (d *ScriptDetector) Detect(text string) string {
	for _, r := range text {
		if isArabic(r) {
			return domain.LangArabic
		}
	}
	return domain.LangEnglish
}

// isArabic reports whether r falls in the Arabic Unicode block.
func isArabic(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}
