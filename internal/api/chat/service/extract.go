package chatService

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern      = regexp.MustCompile(`\b\d{10}\b|\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	namePrefixPattern = regexp.MustCompile(`(?i)my name is |i am |i'm |name is |this is |name:`)
)

// extractEmail pulls the first email address out of free text.
func extractEmail(text string) string {
	return emailPattern.FindString(text)
}

// extractPhone pulls a 10-digit phone number, accepting 3-3-4 grouping
// with dashes or dots, and returns it with separators stripped.
func extractPhone(text string) string {
	match := phonePattern.FindString(text)
	if match == "" {
		return ""
	}
	match = strings.ReplaceAll(match, "-", "")
	return strings.ReplaceAll(match, ".", "")
}

// extractName cleans a self-introduction down to up to three
// capitalized words.
func extractName(text string) string {
	text = namePrefixPattern.ReplaceAllString(strings.TrimSpace(text), "")

	var nameWords []string
	for _, word := range strings.Fields(text) {
		if len(word) <= 1 || !isAlpha(word) {
			continue
		}
		nameWords = append(nameWords, capitalize(word))
		if len(nameWords) == 3 {
			break
		}
	}

	return strings.Join(nameWords, " ")
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(word) > 0
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
