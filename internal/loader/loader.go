package loader

import (
	"os"
	"path/filepath"
	"strings"

	"rlm/internal/domain"
)

// DefaultExtensions lists the file types read as flat text.
var DefaultExtensions = []string{".md", ".txt", ".csv", ".py", ".go"}

// Loader reads context files from disk. Paths that are missing, unreadable,
// directories, or of an unsupported type are skipped without error.
type Loader struct {
	extensions map[string]struct{}
}

func New(extensions []string) *Loader {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	m := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m[ext] = struct{}{}
	}
	return &Loader{extensions: m}
}

// Supported reports whether path has one of the configured extensions.
func (l *Loader) Supported(path string) bool {
	_, ok := l.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load returns one document per readable, supported path, in input order,
// along with the paths that were skipped.
func (l *Loader) Load(paths []string) (docs []domain.Document, skipped []string) {
	for _, p := range paths {
		doc, ok := l.read(p)
		if !ok {
			skipped = append(skipped, p)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, skipped
}

func (l *Loader) read(path string) (domain.Document, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return domain.Document{}, false
	}
	if !l.Supported(path) {
		return domain.Document{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, false
	}
	return domain.Document{
		Path:    path,
		Name:    filepath.Base(path),
		Content: strings.ToValidUTF8(string(data), ""),
	}, true
}
