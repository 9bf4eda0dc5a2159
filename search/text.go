package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonWord matches everything the tokenizer treats as a separator.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// minTokenLength drops stopword-like noise such as "a", "to", "me".
const minTokenLength = 3

// Tokenize lowercases a query, replaces non-word characters with spaces,
// splits on whitespace, and discards tokens shorter than three
// characters. A query made entirely of punctuation or short words yields
// no tokens.
func Tokenize(query string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(query), " ")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(word) >= minTokenLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// containsAll reports whether every token is a substring of text.
func containsAll(text string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}

// countMatches returns how many tokens are substrings of text.
func countMatches(text string, tokens []string) int {
	count := 0
	for _, token := range tokens {
		if strings.Contains(text, token) {
			count++
		}
	}
	return count
}
