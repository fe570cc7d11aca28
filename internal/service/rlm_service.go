package service

import (
	"rlm/internal/chunker"
	"rlm/internal/config"
	"rlm/internal/domain"
	"rlm/internal/loader"
	"rlm/internal/logging"
	"rlm/internal/router"
	"rlm/internal/scorer"
	"rlm/internal/search"
	"rlm/internal/store"
	"rlm/internal/summarizer"
	"rlm/internal/synthesizer"
)

// Stats describes the knowledge base built at startup.
type Stats struct {
	FilesLoaded  int
	FilesSkipped []string
	Sources      []string
	Chunks       int
	// Overview is a short extract of the most representative sentences.
	Overview string
}

// RLMService answers queries from an in-memory chunk store. It is read-only
// after construction, so concurrent Answer calls are safe.
type RLMService struct {
	store       *store.Store
	router      domain.Router
	searcher    domain.Searcher
	synthesizer domain.Synthesizer
	logger      *logging.Logger
	stats       Stats
}

// New loads and chunks paths once using cfg and wires the retrieval pipeline.
func New(cfg *config.AppConfig, paths []string, logger *logging.Logger) *RLMService {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	docs, skipped := loader.New(cfg.Context.Extensions).Load(paths)
	for _, p := range skipped {
		logger.Debug("skipping context file %q", p)
	}
	st := store.Build(chunker.NewWindowChunker(cfg.Chunker.MaxChars), docs)
	svc := NewFromStore(st, cfg, logger)
	svc.stats.FilesLoaded = len(docs)
	svc.stats.FilesSkipped = skipped
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = chunker.Normalize(d.Content)
	}
	svc.stats.Overview = summarizer.NewFrequencySummarizer().Summarize(texts, cfg.Summary.MaxSentences)
	logger.Info("loaded %d of %d context files into %d chunks", len(docs), len(paths), st.Len())
	return svc
}

// NewFromStore wires the pipeline over an already built store.
func NewFromStore(st *store.Store, cfg *config.AppConfig, logger *logging.Logger) *RLMService {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	sc := scorer.NewLexical(cfg.Search.MaxSnippets)
	return &RLMService{
		store:       st,
		router:      router.NewDepthRouter(),
		searcher:    search.NewRecursive(st.Chunks(), sc, search.Config{TopK: cfg.Search.TopK, Boost: cfg.Search.Boost}),
		synthesizer: synthesizer.NewReport(),
		logger:      logger,
		stats:       Stats{Sources: st.Sources(), Chunks: st.Len()},
	}
}

// Answer routes the query, runs the recursive search and renders the result.
// It never fails: a query that matches nothing yields the fixed no-results message.
func (s *RLMService) Answer(query string) string {
	depth := s.router.Route(query)
	findings := s.searcher.Search(query, depth)
	s.logger.Debug("query %q: depth=%d findings=%d", query, depth, len(findings))
	return s.synthesizer.Synthesize(query, findings)
}

// Stats returns what was loaded at startup.
func (s *RLMService) Stats() Stats { return s.stats }
