package scorer

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"rlm/internal/tokenizer"
)

// DefaultMaxSnippets is the number of sentences kept per finding.
const DefaultMaxSnippets = 3

// Lexical scores chunks by the fraction of query terms they contain.
type Lexical struct {
	maxSnippets int
}

// NewLexical keeps up to maxSnippets sentences per finding.
func NewLexical(maxSnippets int) *Lexical {
	if maxSnippets <= 0 {
		maxSnippets = DefaultMaxSnippets
	}
	return &Lexical{maxSnippets: maxSnippets}
}

// Score returns term density weighted by ln(len(text)+10), together with the
// sentences of text that mention the most query terms. A text sharing no
// token with terms scores 0 and has no snippets.
func (s *Lexical) Score(text string, terms map[string]struct{}) (float64, []string) {
	tokens := tokenizer.Set(text)
	var hits []string
	for term := range terms {
		if _, ok := tokens[term]; ok {
			hits = append(hits, term)
		}
	}
	if len(hits) == 0 {
		return 0, nil
	}
	density := float64(len(hits)) / float64(max(len(terms), 1))
	score := density * math.Log(float64(utf8.RuneCountInString(text)+10))
	return score, s.snippets(text, hits)
}

func (s *Lexical) snippets(text string, hits []string) []string {
	type scored struct {
		count    int
		sentence string
	}
	var ranked []scored
	for _, sentence := range SplitSentences(text) {
		tokens := tokenizer.Set(sentence)
		count := 0
		for _, h := range hits {
			if _, ok := tokens[h]; ok {
				count++
			}
		}
		if count > 0 {
			ranked = append(ranked, scored{count, strings.TrimSpace(sentence)})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].count > ranked[j].count })
	if len(ranked) > s.maxSnippets {
		ranked = ranked[:s.maxSnippets]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.sentence
	}
	return out
}

// SplitSentences breaks text at every whitespace run that directly follows
// '.', '!' or '?'. The terminal punctuation stays with its sentence.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if i < start || (r != '.' && r != '!' && r != '?') {
			continue
		}
		end := i + utf8.RuneLen(r)
		next := end
		for next < len(text) {
			c, size := utf8.DecodeRuneInString(text[next:])
			if !unicode.IsSpace(c) {
				break
			}
			next += size
		}
		if next == end {
			continue
		}
		out = append(out, text[start:end])
		start = next
	}
	return append(out, text[start:])
}
