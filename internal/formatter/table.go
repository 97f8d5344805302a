// Package formatter renders build summaries as aligned text tables.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"sitemapgen/pkg/sitemap"
)

// minColumnWidth keeps separators at least "---".
const minColumnWidth = 3

// Table renders header and rows as a markdown-style table whose columns are
// padded by display width, so CJK text lines up.
func Table(header []string, rows [][]string) string {
	colCount := len(header)
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}

	if colCount == 0 {
		return ""
	}

	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColumnWidth
	}

	all := append([][]string{header}, rows...)
	for _, row := range all {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(strings.TrimSpace(cell)))
		}
	}

	lines := make([]string, 0, len(all)+1)
	lines = append(lines, formatRow(header, colWidths))
	lines = append(lines, separator(colWidths))

	for _, row := range rows {
		lines = append(lines, formatRow(row, colWidths))
	}

	return strings.Join(lines, "\n")
}

func formatRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = strings.TrimSpace(row[j])
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func separator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}

// DocumentSummary lists rendered documents with their kind, entry count and size.
func DocumentSummary(docs []sitemap.Document) (string, error) {
	rows := make([][]string, 0, len(docs))

	for _, doc := range docs {
		parsed, err := sitemap.Parse([]byte(doc.XML))
		if err != nil {
			return "", err
		}

		kind, count := "urlset", len(parsed.Entries)
		if parsed.IsIndex {
			kind, count = "index", len(parsed.SubSitemaps)
		}

		rows = append(rows, []string{doc.FileName, kind, strconv.Itoa(count), strconv.Itoa(len(doc.XML))})
	}

	return Table([]string{"File", "Kind", "Entries", "Bytes"}, rows), nil
}
