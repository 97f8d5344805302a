package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"sitemapgen/internal/config"
	"sitemapgen/internal/writer"
	"sitemapgen/pkg/sitemap"
)

const host = "https://shop.example.com"

func loadFixture(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join("..", "fixtures", "site.yaml"))
	require.NoError(t, err)

	return cfg
}

func names(docs []sitemap.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.FileName
	}

	return out
}

func TestBuild_FixtureSite(t *testing.T) {
	cfg := loadFixture(t)

	root, err := cfg.Build()
	require.NoError(t, err)

	docs, err := root.ToXML()
	require.NoError(t, err)

	want := []string{"sitemap.xml", "home.xml", "catalogue-0.xml", "catalogue-1.xml", "videos.xml", "sitemap-3.xml"}
	if diff := cmp.Diff(want, names(docs)); diff != "" {
		t.Fatalf("document names mismatch (-want +got):\n%s", diff)
	}

	index, err := sitemap.Parse([]byte(docs[0].XML))
	require.NoError(t, err)
	require.Equal(t, []string{
		host + "/home.xml",
		host + "/catalogue-0.xml",
		host + "/catalogue-1.xml",
		host + "/videos.xml",
		host + "/sitemap-3.xml",
	}, index.SubSitemaps)

	catalogue, err := sitemap.Parse([]byte(docs[3].XML))
	require.NoError(t, err)
	require.Len(t, catalogue.Entries, 2)
	require.Equal(t, host+"/p/5", catalogue.Entries[1].Loc)

	reviews, err := sitemap.Parse([]byte(docs[5].XML))
	require.NoError(t, err)
	require.Equal(t, "2024-02-29", reviews.Entries[0].LastMod)
	require.Equal(t, sitemap.Daily, reviews.Entries[0].ChangeFreq)

	require.Contains(t, docs[4].XML, `xmlns:video="`+sitemap.VideoNS+`"`)
	require.Contains(t, docs[4].XML, "<video:family_friendly>yes</video:family_friendly>")
	require.Contains(t, docs[4].XML, "<video:duration>600</video:duration>")
	require.NotContains(t, docs[1].XML, "xmlns:video")
}

func TestBuild_FixtureSite_LeafPolicy(t *testing.T) {
	cfg := loadFixture(t)
	cfg.Output.Policy = sitemap.RetainWithURLsOrLeaf.String()

	root, err := cfg.Build()
	require.NoError(t, err)

	docs, err := root.ToXML()
	require.NoError(t, err)
	require.NotContains(t, names(docs), "archive.xml")

	index, err := sitemap.Parse([]byte(docs[0].XML))
	require.NoError(t, err)
	require.Equal(t, host+"/archive.xml", index.SubSitemaps[len(index.SubSitemaps)-1])
}

func TestBuild_WriteAndReadBack(t *testing.T) {
	cfg := loadFixture(t)

	root, err := cfg.Build()
	require.NoError(t, err)

	docs, err := root.ToXML()
	require.NoError(t, err)

	paths, err := writer.WriteDocuments(t.TempDir(), docs)
	require.NoError(t, err)
	require.Len(t, paths, len(docs))

	for i, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		require.Equal(t, docs[i].XML, string(data))

		_, err = sitemap.Parse(data)
		require.NoError(t, err)
	}

	again, err := root.ToXML()
	require.NoError(t, err)
	require.Equal(t, docs, again)
}
