package tokenizer

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`[A-Za-z0-9]+`)

// Raw returns maximal runs of ASCII letters and digits with case preserved.
func Raw(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// Tokenize returns the lower-cased alphanumeric tokens of text in order.
func Tokenize(text string) []string {
	tokens := Raw(text)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return tokens
}

// Set returns the unique lower-cased tokens of text.
func Set(text string) map[string]struct{} {
	tokens := Tokenize(text)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}
