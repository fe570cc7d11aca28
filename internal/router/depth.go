package router

import (
	"regexp"

	"rlm/internal/tokenizer"
)

const (
	longTokenLen = 6
	cueBonus     = 8
	shallowMax   = 12
	mediumMax    = 24
)

var cueRe = regexp.MustCompile(`(?i)why|how|compare|difference|justify`)

// DepthRouter maps query complexity to a number of search passes (1-3).
// Open-ended or comparative wording and long, dense queries go deeper.
type DepthRouter struct{}

func NewDepthRouter() *DepthRouter { return &DepthRouter{} }

// Complexity counts tokens, adds one per token longer than six characters,
// and adds eight when the query contains a cue word anywhere, even inside
// another word.
func (r *DepthRouter) Complexity(query string) int {
	tokens := tokenizer.Raw(query)
	complexity := len(tokens)
	for _, t := range tokens {
		if len(t) > longTokenLen {
			complexity++
		}
	}
	if cueRe.MatchString(query) {
		complexity += cueBonus
	}
	return complexity
}

func (r *DepthRouter) Route(query string) int {
	return DepthFor(r.Complexity(query))
}

// DepthFor maps a complexity value onto the three depth tiers.
func DepthFor(complexity int) int {
	switch {
	case complexity <= shallowMax:
		return 1
	case complexity <= mediumMax:
		return 2
	default:
		return 3
	}
}
