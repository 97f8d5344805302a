package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sitemapgen/internal/config"
	"sitemapgen/internal/formatter"
	"sitemapgen/internal/logger"
	"sitemapgen/internal/writer"
)

type buildOptions struct {
	configPath string
	outputDir  string
	logLevel   string
	dryRun     bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the configured sitemap tree and write the documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "sitemap.yaml", "path to YAML configuration")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory (overrides output.dir)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides logging.level)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "render without writing files")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level)
	log.Debug("configuration loaded", "path", opts.configPath, "config", cfg.String())

	start := time.Now()

	root, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building sitemap tree: %w", err)
	}

	docs, err := root.ToXML()
	if err != nil {
		return fmt.Errorf("rendering sitemaps: %w", err)
	}

	log.Info("rendered sitemaps", "documents", len(docs), "duration", time.Since(start))

	if opts.dryRun {
		log.Info("dry run, nothing written")
	} else {
		paths, err := writer.WriteDocuments(cfg.Output.Dir, docs)
		if err != nil {
			return err
		}

		for _, p := range paths {
			log.Debug("wrote document", "path", p)
		}

		log.Info("documents written", "dir", cfg.Output.Dir, "count", len(paths))
	}

	summary, err := formatter.DocumentSummary(docs)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), summary)

	return nil
}
