package models

import (
	"regexp"
	"strings"
)

// tickerPattern matches symbols the portal accepts: short uppercase
// alphanumerics with optional dot or dash (BRK.B, RDS-A). There is no
// validation against a real exchange list.
var tickerPattern = regexp.MustCompile(`^[A-Z0-9.\-]{1,10}$`)

// NormalizeTicker trims whitespace and uppercases a symbol.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidTicker reports whether s is an acceptable normalized symbol.
func ValidTicker(s string) bool {
	return tickerPattern.MatchString(s)
}
