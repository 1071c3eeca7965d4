package reference

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateWord checks that word is a single token containing a letter
func ValidateWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return fmt.Errorf("word cannot be empty")
	}
	if strings.HasPrefix(word, "-") {
		return fmt.Errorf("word must not start with '-': %q", word)
	}

	hasLetter := false
	for _, r := range word {
		if unicode.IsSpace(r) {
			return fmt.Errorf("word must not contain whitespace: %q", word)
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("word must contain letters: %q", word)
	}

	return nil
}
