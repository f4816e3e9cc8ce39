// Package localization shapes prompts for users who want results in a
// language other than English. It never translates anything itself: it
// appends an instruction asking the remote model to translate string values
// while leaving JSON keys and enumerated values alone.
package localization

import (
	"fmt"
	"strings"
)

// Language is a supported result language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Spanish Language = "es"
	French  Language = "fr"
)

// Default is the language prompts are written in.
const Default = English

var names = map[Language]string{
	English: "English",
	Hindi:   "हिन्दी",
	Spanish: "Español",
	French:  "Français",
}

// Supported lists the languages in display order.
func Supported() []Language {
	return []Language{English, Hindi, Spanish, French}
}

// Name returns the language's own name, falling back to English for unknown
// codes.
func (l Language) Name() string {
	if name, ok := names[l]; ok {
		return name
	}
	return names[English]
}

// Parse resolves a language code. An empty code means the default.
func Parse(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Default, nil
	}
	lang := Language(code)
	if _, ok := names[lang]; !ok {
		return "", fmt.Errorf("unsupported language %q", code)
	}
	return lang, nil
}

// Instruction returns the suffix appended for lang.
func Instruction(lang Language) string {
	return "\n\nIMPORTANT: After generating the entire JSON response, translate all string values within the JSON object to " +
		lang.Name() +
		". Do not translate the JSON keys or enum values. Preserve all original formatting and structure."
}

// Append returns prompt unchanged for the default language and prompt plus
// the translation instruction otherwise.
func Append(prompt string, lang Language) string {
	if lang == Default || lang == "" {
		return prompt
	}
	return prompt + Instruction(lang)
}
