package internal

// Truncate shortens s to at most n bytes, marking cut text with "...".
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' || r == '.' {
			result = append(result, r)
		} else {
			result = append(result, '_')
		}
	}
	return string(result)
}

// isAlphaNumeric checks if a rune is an ASCII letter or digit
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
