package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"sitemapgen/internal/formatter"
	"sitemapgen/pkg/sitemap"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Summarize existing sitemap or sitemap index files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))

			for _, path := range args {
				row, err := inspectFile(path)
				if err != nil {
					return err
				}

				rows = append(rows, row)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Table([]string{"File", "Kind", "Entries", "First"}, rows))

			return nil
		},
	}
}

func inspectFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	parsed, err := sitemap.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if parsed.IsIndex {
		return []string{path, "index", strconv.Itoa(len(parsed.SubSitemaps)), first(parsed.SubSitemaps)}, nil
	}

	locs := make([]string, len(parsed.Entries))
	for i, e := range parsed.Entries {
		locs[i] = e.Loc
	}

	return []string{path, "urlset", strconv.Itoa(len(locs)), first(locs)}, nil
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}

	return s[0]
}
