// Package main provides the sitemapgen command-line tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitemapgen",
	Short: "Build sitemaps.org documents from a YAML site tree",
	Long: `sitemapgen turns a tree of sitemaps described in YAML into sitemap
documents. Sitemaps holding too many URLs are split into several files and an
index (sitemap.xml) is produced whenever more than one document results.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newBuildCmd(), newInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
