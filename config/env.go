package config

import (
	"strings"
	"unicode"
)

// toEnvName turns a field name or tag into its environment form:
// "CustomerId" -> "CUSTOMER_ID", "log-level" -> "LOG_LEVEL", "log_level" -> "LOG_LEVEL".
func toEnvName(in string) string {
	in = strings.TrimSpace(in)

	var sb strings.Builder
	sb.Grow(len(in) + len(in)/3)

	previous := rune(0)
	for _, r := range in {
		switch {
		case r == '_' || r == '-' || r == '.':
			if previous != '_' && sb.Len() > 0 {
				sb.WriteRune('_')
			}
			previous = '_'
			continue
		case unicode.IsUpper(r) && sb.Len() > 0 && previous != '_' && !unicode.IsUpper(previous):
			sb.WriteRune('_')
		case unicode.IsDigit(r) && sb.Len() > 0 && previous != '_' && !unicode.IsDigit(previous):
			sb.WriteRune('_')
		}
		sb.WriteRune(unicode.ToUpper(r))
		previous = r
	}

	return sb.String()
}
