package sitemap

import (
	"fmt"
	"strings"
)

const xmlExt = ".xml"

// Normalize splits every node holding at least Limit URLs into surrogate
// nodes of at most Limit URLs each. The first surrogate carries the
// source's children; the others have none. Source nodes are not modified.
func Normalize(nodes []*Sitemap) []*Sitemap {
	result := make([]*Sitemap, 0, len(nodes))

	for _, s := range nodes {
		if len(s.urls) < s.limit {
			result = append(result, s)
			continue
		}

		result = append(result, split(s)...)
	}

	return result
}

func split(s *Sitemap) []*Sitemap {
	chunks := chunk(s.urls, s.limit)
	surrogates := make([]*Sitemap, len(chunks))

	for i, urls := range chunks {
		var children []*Sitemap
		if i == 0 {
			children = s.children
		}

		surrogates[i] = s.clone(chunkFileName(s.fileName, i), urls, children)
	}

	return surrogates
}

func chunk(urls []URLEntry, size int) [][]URLEntry {
	var chunks [][]URLEntry

	for i := 0; i < len(urls); i += size {
		end := min(i+size, len(urls))
		chunks = append(chunks, urls[i:end])
	}

	return chunks
}

// chunkFileName inserts -{i} before the .xml extension, or appends it.
func chunkFileName(name string, i int) string {
	base, found := strings.CutSuffix(name, xmlExt)
	if !found {
		return fmt.Sprintf("%s-%d", name, i)
	}

	return fmt.Sprintf("%s-%d%s", base, i, xmlExt)
}
