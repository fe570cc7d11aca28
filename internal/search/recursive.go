package search

import (
	"sort"
	"strings"

	"rlm/internal/domain"
	"rlm/internal/tokenizer"
)

const (
	// DefaultTopK caps the findings returned by a single scoring pass.
	DefaultTopK = 6
	// DefaultBoost multiplies the score of the chunk that seeded a refined pass.
	DefaultBoost = 1.25

	focusMarker = " Focus on: "
)

// Config tunes a Recursive searcher. Zero values fall back to defaults.
type Config struct {
	TopK  int
	Boost float64
}

// Recursive runs a first scoring pass over every chunk and, for deeper
// queries, one refinement pass per first-pass finding.
type Recursive struct {
	chunks []domain.ContextChunk
	scorer domain.Scorer
	topK   int
	boost  float64
}

func NewRecursive(chunks []domain.ContextChunk, scorer domain.Scorer, cfg Config) *Recursive {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.Boost <= 0 {
		cfg.Boost = DefaultBoost
	}
	return &Recursive{chunks: chunks, scorer: scorer, topK: cfg.TopK, boost: cfg.Boost}
}

// Search returns first-pass findings when depth <= 1 or nothing matched.
// Otherwise it returns the concatenated refined passes, or the first-pass
// findings when every refined pass came back empty. Depth 3 refines exactly
// like depth 2: there is a single refinement level.
func (s *Recursive) Search(query string, depth int) []domain.ChunkFinding {
	findings := s.Pass(query, nil)
	if depth <= 1 || len(findings) == 0 {
		return findings
	}
	var refined []domain.ChunkFinding
	for _, f := range findings {
		seed := f.Chunk
		refined = append(refined, s.Pass(RefineQuery(query, f), &seed)...)
	}
	if len(refined) == 0 {
		return findings
	}
	return refined
}

// Pass scores every chunk against the query terms. A positive score for the
// chunk equal to boost is multiplied by the boost factor. Results are
// sorted by descending score, ties kept in chunk order, and capped at TopK.
func (s *Recursive) Pass(query string, boost *domain.ContextChunk) []domain.ChunkFinding {
	terms := tokenizer.Set(query)
	var findings []domain.ChunkFinding
	for _, chunk := range s.chunks {
		score, snippets := s.scorer.Score(chunk.Text, terms)
		if score > 0 && boost != nil && chunk == *boost {
			score *= s.boost
		}
		if score <= 0 {
			continue
		}
		findings = append(findings, domain.ChunkFinding{Chunk: chunk, Score: score, Snippets: snippets})
	}
	sort.SliceStable(findings, func(i, j int) bool { return findings[i].Score > findings[j].Score })
	if len(findings) > s.topK {
		findings = findings[:s.topK]
	}
	return findings
}

// RefineQuery narrows query with the snippets of a previous finding.
func RefineQuery(query string, finding domain.ChunkFinding) string {
	if len(finding.Snippets) == 0 {
		return query
	}
	return query + focusMarker + strings.Join(finding.Snippets, " ")
}
