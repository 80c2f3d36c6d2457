package models

// Language selects the prompt templates and report labels.
// It has no behavioral effect beyond string selection.
type Language string

const (
	LanguageZH Language = "zh"
	LanguageEN Language = "en"
)

// ParseLanguage maps a user-supplied value to a Language,
// defaulting to Traditional Chinese.
func ParseLanguage(s string) Language {
	switch s {
	case "en", "EN":
		return LanguageEN
	default:
		return LanguageZH
	}
}
