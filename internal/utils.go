package internal

import (
	"path/filepath"
	"strings"
)

// TranslationExt is the file extension of every translation document
const TranslationExt = ".json"

// IsTranslationFile reports whether a file name looks like a translation document
func IsTranslationFile(name string) bool {
	return LanguageFromFilename(name) != ""
}

// LanguageFromFilename returns the language code encoded in a translation file name
// Format: <lang>.json, so "en.json" yields "en". Anything else yields "".
func LanguageFromFilename(name string) string {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, TranslationExt) {
		return ""
	}
	return strings.TrimSuffix(base, TranslationExt)
}

// TranslationFilename builds the file name for a language code
func TranslationFilename(lang string) string {
	return lang + TranslationExt
}
