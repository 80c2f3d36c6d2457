package ai

import "strings"

// StripFences removes markdown code-fence wrapping from a model
// response. Models regularly wrap JSON in ```json blocks despite
// instructions not to.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
