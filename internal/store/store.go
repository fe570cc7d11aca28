package store

import (
	"rlm/internal/domain"
)

// Store is the in-memory chunk list searched by every query. It is built
// once and never mutated, so it may be shared across goroutines.
type Store struct {
	chunks  []domain.ContextChunk
	sources []string
}

// Build chunks every document in order and returns the resulting store.
func Build(chunker domain.Chunker, docs []domain.Document) *Store {
	s := &Store{}
	for _, d := range docs {
		chunks := chunker.Chunk(d)
		if len(chunks) == 0 {
			continue
		}
		s.chunks = append(s.chunks, chunks...)
		s.sources = append(s.sources, d.Name)
	}
	return s
}

// FromChunks wraps an existing chunk list.
func FromChunks(chunks []domain.ContextChunk) *Store {
	s := &Store{chunks: append([]domain.ContextChunk(nil), chunks...)}
	seen := make(map[string]struct{})
	for _, c := range s.chunks {
		if _, ok := seen[c.Source]; ok {
			continue
		}
		seen[c.Source] = struct{}{}
		s.sources = append(s.sources, c.Source)
	}
	return s
}

// Chunks returns the stored chunks. Callers must not modify the slice.
func (s *Store) Chunks() []domain.ContextChunk { return s.chunks }

// Len returns the number of chunks.
func (s *Store) Len() int { return len(s.chunks) }

// Sources lists the names of documents that produced at least one chunk.
func (s *Store) Sources() []string { return s.sources }
