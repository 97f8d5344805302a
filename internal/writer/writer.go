// Package writer persists rendered sitemap documents.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sitemapgen/pkg/sitemap"
)

// ErrUnsafeFileName is returned for names that would escape the output directory.
var ErrUnsafeFileName = errors.New("unsafe document file name")

// WriteDocuments writes every document into outputDir and returns the paths
// written, in document order.
func WriteDocuments(outputDir string, docs []sitemap.Document) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, 0, len(docs))

	for _, doc := range docs {
		path, err := DocumentPath(outputDir, doc.FileName)
		if err != nil {
			return paths, err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return paths, fmt.Errorf("creating directory for %s: %w", path, err)
		}

		if err := os.WriteFile(path, []byte(doc.XML), 0644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}

		paths = append(paths, path)
	}

	return paths, nil
}

// DocumentPath maps a document file name to a path under outputDir.
// Names may contain sub-directories but must stay inside outputDir.
func DocumentPath(outputDir, fileName string) (string, error) {
	name := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(fileName, "/")))
	if fileName == "" || name == "." || name == ".." || strings.HasPrefix(name, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeFileName, fileName)
	}

	return filepath.Join(outputDir, name), nil
}
