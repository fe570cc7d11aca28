package domain

// Document represents a single context file loaded into the system.
type Document struct {
	Path    string
	Name    string
	Content string
}

// ContextChunk is a bounded slice of a document's normalized text.
// Two chunks are the same chunk when all three fields are equal.
type ContextChunk struct {
	Source string
	Index  int
	Text   string
}

// ChunkFinding is a chunk judged relevant to a query.
type ChunkFinding struct {
	Chunk    ContextChunk
	Score    float64
	Snippets []string
}

// Chunker splits documents into chunks suitable for lexical retrieval.
type Chunker interface {
	Chunk(document Document) []ContextChunk
}

// Scorer rates a chunk text against a set of lower-cased query terms.
type Scorer interface {
	Score(text string, terms map[string]struct{}) (float64, []string)
}

// Router decides how many recursive passes a query deserves.
type Router interface {
	Route(query string) int
}

// Searcher runs one or more scoring passes over the chunk store.
type Searcher interface {
	Search(query string, depth int) []ChunkFinding
}

// Synthesizer renders findings into the final answer text.
type Synthesizer interface {
	Synthesize(query string, findings []ChunkFinding) string
}

// Assistant defines the operation exposed by the application core.
type Assistant interface {
	Answer(query string) string
}
