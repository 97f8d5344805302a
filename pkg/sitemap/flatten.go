package sitemap

import (
	"fmt"
	"strings"
)

// LeafPolicy decides which flattened nodes become output documents.
type LeafPolicy int

const (
	// RetainWithURLs keeps only nodes that hold URLs.
	RetainWithURLs LeafPolicy = iota
	// RetainWithURLsOrLeaf also keeps nodes with neither URLs nor children.
	// Such nodes are listed in the index but get no document of their own.
	RetainWithURLsOrLeaf
)

// ParseLeafPolicy maps a policy name to its value.
func ParseLeafPolicy(name string) (LeafPolicy, error) {
	switch strings.ToLower(name) {
	case "", "urls-only":
		return RetainWithURLs, nil
	case "urls-or-leaf":
		return RetainWithURLsOrLeaf, nil
	default:
		return 0, fmt.Errorf("unknown leaf policy %q", name)
	}
}

func (p LeafPolicy) String() string {
	switch p {
	case RetainWithURLs:
		return "urls-only"
	case RetainWithURLsOrLeaf:
		return "urls-or-leaf"
	default:
		return fmt.Sprintf("LeafPolicy(%d)", int(p))
	}
}

// retains reports whether node s is a candidate output document.
func (p LeafPolicy) retains(s *Sitemap) bool {
	if len(s.urls) > 0 {
		return true
	}

	return p == RetainWithURLsOrLeaf && len(s.children) == 0
}

// Flatten lists root and all of its descendants in breadth-first order.
func Flatten(root *Sitemap) []*Sitemap {
	if root == nil {
		return nil
	}

	result := []*Sitemap{root}

	for i := 0; i < len(result); i++ {
		result = append(result, result[i].children...)
	}

	return result
}

// Select keeps the nodes the policy retains, preserving order.
func Select(nodes []*Sitemap, policy LeafPolicy) []*Sitemap {
	selected := make([]*Sitemap, 0, len(nodes))

	for _, s := range nodes {
		if policy.retains(s) {
			selected = append(selected, s)
		}
	}

	return selected
}

// AssignNames names every unnamed node sitemap-{position}.xml. Named nodes
// are returned as is; unnamed ones are replaced by named copies.
func AssignNames(nodes []*Sitemap) []*Sitemap {
	named := make([]*Sitemap, len(nodes))

	for i, s := range nodes {
		if s.fileName != "" {
			named[i] = s
			continue
		}

		named[i] = s.clone(fmt.Sprintf("sitemap-%d.xml", i), s.urls, s.children)
	}

	return named
}
