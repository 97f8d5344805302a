package formatter

import (
	"strings"
	"testing"

	"sitemapgen/pkg/sitemap"
)

func TestTable(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:   "Basic table",
			header: []string{"Header 1", "Header 2"},
			rows:   [][]string{{"val 1", "val 2"}},
			expected: `
| Header 1 | Header 2 |
| -------- | -------- |
| val 1    | val 2    |
`,
		},
		{
			name:   "Minimum width",
			header: []string{"H1", "H2"},
			rows:   [][]string{{"v1", "v2"}},
			expected: `
| H1  | H2  |
| --- | --- |
| v1  | v2  |
`,
		},
		{
			name:   "Trim spaces in cells",
			header: []string{"  Col A ", "Col B"},
			rows:   [][]string{{"   val A   ", "val B"}},
			expected: `
| Col A | Col B |
| ----- | ----- |
| val A | val B |
`,
		},
		{
			name:   "Short rows are padded",
			header: []string{"File", "Entries"},
			rows:   [][]string{{"sitemap.xml"}},
			expected: `
| File        | Entries |
| ----------- | ------- |
| sitemap.xml |         |
`,
		},
		{
			name:   "Mixed CJK and ASCII",
			header: []string{"File", "Loc"},
			rows: [][]string{
				{"sitemap-0.xml", "http://例子.com/消防處"},
				{"sitemap-1.xml", "http://a.com"},
			},
			// "http://" (7) + 例子 (4) + ".com/" (5) + 消防處 (6) = 22
			expected: `
| File          | Loc                    |
| ------------- | ---------------------- |
| sitemap-0.xml | http://例子.com/消防處 |
| sitemap-1.xml | http://a.com           |
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Table(tt.header, tt.rows)
			if got != strings.TrimSpace(tt.expected) {
				t.Errorf("Table() = \n%v\nwant \n%v", got, tt.expected)
			}
		})
	}
}

func TestTable_Empty(t *testing.T) {
	if got := Table(nil, nil); got != "" {
		t.Errorf("Table(nil, nil) = %q, want empty", got)
	}
}

func TestDocumentSummary(t *testing.T) {
	root, err := sitemap.New(sitemap.Config{Limit: 2, HostName: "http://a.com", FileName: "pages.xml"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := root.AddLoc("http://a.com/1", "http://a.com/2", "http://a.com/3"); err != nil {
		t.Fatalf("AddLoc failed: %v", err)
	}

	docs, err := root.ToXML()
	if err != nil {
		t.Fatalf("ToXML failed: %v", err)
	}

	got, err := DocumentSummary(docs)
	if err != nil {
		t.Fatalf("DocumentSummary failed: %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected header, separator and 3 rows, got:\n%s", got)
	}

	for i, want := range []string{"| sitemap.xml | index  | 2 ", "| pages-0.xml | urlset | 2 ", "| pages-1.xml | urlset | 1 "} {
		if !strings.HasPrefix(lines[i+2], want) {
			t.Errorf("row %d = %q, want prefix %q", i, lines[i+2], want)
		}
	}
}
