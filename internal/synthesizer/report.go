package synthesizer

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"rlm/internal/domain"
)

// NoResultsMessage is returned when no chunk matched the query.
const NoResultsMessage = "I could not find relevant information in the local context."

// SummaryWidth is the column at which the summary paragraph wraps.
const SummaryWidth = 88

const summaryText = "This response was generated by recursively scanning the local RLM knowledge base, " +
	"routing the query to deeper passes when complexity required it. The summaries above " +
	"highlight the most relevant passages found in the repository documents."

// Report renders findings as a plain-text answer with a key findings list
// and a fixed summary paragraph.
type Report struct{}

func NewReport() *Report { return &Report{} }

func (r *Report) Synthesize(query string, findings []domain.ChunkFinding) string {
	if len(findings) == 0 {
		return NoResultsMessage
	}
	lines := []string{
		fmt.Sprintf("RLM response for: %s\n", query),
		"Key findings:",
	}
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("- Source: %s (chunk %d)", f.Chunk.Source, f.Chunk.Index))
		for _, snippet := range f.Snippets {
			lines = append(lines, "  • "+snippet)
		}
	}
	lines = append(lines, "\nSummary:", Summary())
	return strings.Join(lines, "\n")
}

// Summary returns the method paragraph wrapped at SummaryWidth columns.
func Summary() string {
	return wordwrap.String(summaryText, SummaryWidth)
}
