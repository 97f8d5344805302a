package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const siteYAML = `
sitemap:
  host_name: "http://example.com"
  limit: 2
  urls:
    - "http://example.com/1"
    - "http://example.com/2"
    - "http://example.com/3"
output:
  dir: "unused"
  timezone: UTC
logging:
  level: error
`

func TestBuildAndInspect(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "sitemap.yaml")
	outDir := filepath.Join(dir, "public")

	if err := os.WriteFile(configPath, []byte(siteYAML), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	var out bytes.Buffer

	build := newBuildCmd()
	build.SetOut(&out)
	build.SetArgs([]string{"--config", configPath, "--output", outDir})

	if err := build.Execute(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	for _, name := range []string{"sitemap.xml", "sitemap-0-0.xml", "sitemap-0-1.xml"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}

		if !strings.Contains(out.String(), name) {
			t.Errorf("summary does not mention %s:\n%s", name, out.String())
		}
	}

	out.Reset()

	inspect := newInspectCmd()
	inspect.SetOut(&out)
	inspect.SetArgs([]string{filepath.Join(outDir, "sitemap.xml"), filepath.Join(outDir, "sitemap-0-1.xml")})

	if err := inspect.Execute(); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	if !strings.Contains(out.String(), "http://example.com/sitemap-0-0.xml") {
		t.Errorf("inspect output missing index entry:\n%s", out.String())
	}

	if !strings.Contains(out.String(), "http://example.com/3") {
		t.Errorf("inspect output missing urlset entry:\n%s", out.String())
	}
}

func TestBuild_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "sitemap.yaml")
	outDir := filepath.Join(dir, "public")

	if err := os.WriteFile(configPath, []byte(siteYAML), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	build := newBuildCmd()
	build.SetOut(&bytes.Buffer{})
	build.SetArgs([]string{"--config", configPath, "--output", outDir, "--dry-run"})

	if err := build.Execute(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("dry run created %s", outDir)
	}
}

func TestBuild_MissingConfig(t *testing.T) {
	build := newBuildCmd()
	build.SetOut(&bytes.Buffer{})
	build.SetErr(&bytes.Buffer{})
	build.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})

	if err := build.Execute(); err == nil {
		t.Fatal("Expected error for missing config")
	}
}
