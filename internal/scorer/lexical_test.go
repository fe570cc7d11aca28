package scorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rlm/internal/tokenizer"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "Only one sentence.", []string{"Only one sentence."}},
		{"no terminal", "no punctuation here", []string{"no punctuation here"}},
		{"three kinds", "First. Second! Third? Fourth", []string{"First.", "Second!", "Third?", "Fourth"}},
		{"punctuation without space", "v1.2 is out. Yes", []string{"v1.2 is out.", "Yes"}},
		{"repeated punctuation", "Wait... what?! Ok", []string{"Wait...", "what?!", "Ok"}},
		{"trailing space", "End. ", []string{"End.", ""}},
		{"whitespace run", "A.\n\t B", []string{"A.", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.in))
		})
	}
}

func TestScore_NoOverlap(t *testing.T) {
	s := NewLexical(0)
	score, snippets := s.Score("Mixture of Recursions routes tokens.", tokenizer.Set("xyzzy plugh"))
	assert.Zero(t, score)
	assert.Nil(t, snippets)
}

func TestScore_EmptyTerms(t *testing.T) {
	score, snippets := NewLexical(0).Score("anything at all", map[string]struct{}{})
	assert.Zero(t, score)
	assert.Nil(t, snippets)
}

func TestScore_Formula(t *testing.T) {
	text := "Mixture of Recursions routes tokens through shared layers."
	terms := tokenizer.Set("How do shared layers work?")

	score, snippets := NewLexical(0).Score(text, terms)

	// hits: shared, layers out of {how, do, shared, layers, work}
	want := 2.0 / 5.0 * math.Log(float64(len(text)+10))
	assert.InDelta(t, want, score, 1e-12)
	assert.Equal(t, []string{text}, snippets)
}

func TestScore_WholeTokensOnly(t *testing.T) {
	score, _ := NewLexical(0).Score("Recursions routes tokens.", tokenizer.Set("routing recursion"))
	assert.Zero(t, score)
}

func TestScore_SnippetRanking(t *testing.T) {
	text := "Alpha only. Nothing relevant here. Alpha and beta. Beta alone! Alpha beta gamma? Gamma."
	terms := tokenizer.Set("alpha beta gamma")

	score, snippets := NewLexical(0).Score(text, terms)

	require.Greater(t, score, 0.0)
	assert.Equal(t, []string{"Alpha beta gamma?", "Alpha and beta.", "Alpha only."}, snippets)
}

func TestScore_SnippetsContainQueryTerm(t *testing.T) {
	text := "Shared layers reduce parameters. Routers pick depth. Unrelated filler text."
	terms := tokenizer.Set("shared depth")

	_, snippets := NewLexical(0).Score(text, terms)

	require.NotEmpty(t, snippets)
	assert.LessOrEqual(t, len(snippets), DefaultMaxSnippets)
	for _, sn := range snippets {
		tokens := tokenizer.Set(sn)
		_, a := tokens["shared"]
		_, b := tokens["depth"]
		assert.True(t, a || b, sn)
	}
	assert.Equal(t, []string{"Shared layers reduce parameters.", "Routers pick depth."}, snippets)
}

func TestScore_MaxSnippetsConfigurable(t *testing.T) {
	text := "One x. Two x. Three x. Four x."
	_, snippets := NewLexical(2).Score(text, tokenizer.Set("x"))
	assert.Equal(t, []string{"One x.", "Two x."}, snippets)
}

func TestScore_LongerChunkScoresHigherAtEqualDensity(t *testing.T) {
	terms := tokenizer.Set("layers")
	s := NewLexical(0)
	short, _ := s.Score("layers", terms)
	long, _ := s.Score("layers are stacked many times over in a recursive transformer", terms)
	assert.Greater(t, long, short)
	assert.Greater(t, short, 0.0)
}
