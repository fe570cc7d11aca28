// Package chunker splits documents into bounded chunks. Windows end on a word
// boundary rather than at a fixed offset, so most chunks are a little shorter
// than the maximum.
package chunker

import (
	"strings"

	"rlm/internal/domain"
)

// DefaultMaxChars is the default upper bound on chunk length, in characters.
const DefaultMaxChars = 1600

// WindowChunker splits normalized text into consecutive, non-overlapping
// windows of at most maxChars characters. Window boundaries fall on the
// single space separating two words, and that space is dropped, so joining
// the chunks of a document with " " yields its normalized text.
type WindowChunker struct {
	maxChars int
}

// NewWindowChunker returns a chunker with the given window size, or
// DefaultMaxChars when maxChars is not positive.
func NewWindowChunker(maxChars int) *WindowChunker {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &WindowChunker{maxChars: maxChars}
}

// MaxChars returns the configured window size.
func (c *WindowChunker) MaxChars() int { return c.maxChars }

// Chunk splits a document into chunks indexed from 0.
func (c *WindowChunker) Chunk(document domain.Document) []domain.ContextChunk {
	texts := c.Split(document.Content)
	if len(texts) == 0 {
		return nil
	}
	chunks := make([]domain.ContextChunk, len(texts))
	for i, text := range texts {
		chunks[i] = domain.ContextChunk{Source: document.Name, Index: i, Text: text}
	}
	return chunks
}

// Split normalizes text and returns the chunk texts in order.
func (c *WindowChunker) Split(text string) []string {
	runes := []rune(Normalize(text))
	if len(runes) == 0 {
		return nil
	}
	var out []string
	start := 0
	for start < len(runes) {
		if len(runes)-start <= c.maxChars {
			out = append(out, string(runes[start:]))
			break
		}
		end := start + c.maxChars
		if runes[end] == ' ' {
			out = append(out, string(runes[start:end]))
			start = end + 1
			continue
		}
		cut := lastSpace(runes, start+1, end)
		if cut < 0 {
			// a single word wider than the window
			out = append(out, string(runes[start:end]))
			start = end
			continue
		}
		out = append(out, string(runes[start:cut]))
		start = cut + 1
	}
	return out
}

// Normalize collapses every whitespace run to a single space and trims the ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func lastSpace(runes []rune, lo, hi int) int {
	for i := hi - 1; i >= lo; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}
