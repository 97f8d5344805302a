// Package config provides configuration management for sitemap builds.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"sitemapgen/pkg/sitemap"
)

// Configuration validation errors.
var (
	ErrMissingOutputDir = errors.New("output.dir is required")
	ErrInvalidLimit     = errors.New("limit must be positive")
	ErrInvalidPolicy    = errors.New("output.policy must be 'urls-only' or 'urls-or-leaf'")
	ErrInvalidTimezone  = errors.New("output.timezone is not a known time zone")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLastMod   = errors.New("lastmod is not a recognised date")
)

// lastModLayouts are the date forms accepted for url.lastmod.
var lastModLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	time.RFC3339,
	time.DateTime,
}

// Config represents a complete sitemap build configuration.
type Config struct {
	Sitemap SitemapConfig `yaml:"sitemap"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SitemapConfig describes one node of the sitemap tree.
type SitemapConfig struct {
	HostName string          `yaml:"host_name"`
	FileName string          `yaml:"file_name"`
	URLs     []URLConfig     `yaml:"urls"`
	Children []SitemapConfig `yaml:"children"`
	Limit    int             `yaml:"limit"`
}

// URLConfig is a page entry. In YAML it is either a bare URL string or a mapping.
type URLConfig struct {
	Video      *sitemap.Video `yaml:"video"`
	URL        string         `yaml:"url"`
	ChangeFreq string         `yaml:"changefreq"`
	Priority   string         `yaml:"priority"`
	LastMod    string         `yaml:"lastmod"`
	LastModISO string         `yaml:"lastmod_iso"`
}

// OutputConfig defines where and how documents are produced.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Policy   string `yaml:"policy"`
	Timezone string `yaml:"timezone"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// UnmarshalYAML accepts both `- http://...` and `- url: http://...`.
func (u *URLConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		u.URL = node.Value
		return nil
	}

	type plain URLConfig

	return node.Decode((*plain)(u))
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes, defaults and validates YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyDefaults fills unset values. Children inherit host_name and limit.
func (c *Config) ApplyDefaults() {
	if c.Output.Policy == "" {
		c.Output.Policy = sitemap.RetainWithURLs.String()
	}

	if c.Output.Timezone == "" {
		c.Output.Timezone = "Local"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Sitemap.Limit == 0 {
		c.Sitemap.Limit = sitemap.DefaultLimit
	}

	c.Sitemap.inherit()
}

func (s *SitemapConfig) inherit() {
	for i := range s.Children {
		child := &s.Children[i]

		if child.HostName == "" {
			child.HostName = s.HostName
		}

		if child.Limit == 0 {
			child.Limit = s.Limit
		}

		child.inherit()
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if _, err := sitemap.ParseLeafPolicy(c.Output.Policy); err != nil {
		return ErrInvalidPolicy
	}

	loc, err := c.Location()
	if err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return c.Sitemap.validate("sitemap", loc)
}

func (s *SitemapConfig) validate(path string, loc *time.Location) error {
	if s.Limit < 0 {
		return fmt.Errorf("%w: %s.limit", ErrInvalidLimit, path)
	}

	for i, u := range s.URLs {
		if _, err := u.Entry(loc); err != nil {
			return fmt.Errorf("%s.urls[%d]: %w", path, i, err)
		}
	}

	for i := range s.Children {
		if err := s.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i), loc); err != nil {
			return err
		}
	}

	return nil
}

// Location resolves output.timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Output.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(c.Output.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Output.Timezone)
		}

		return loc, nil
	}
}

// Policy returns the configured leaf policy.
func (c *Config) Policy() sitemap.LeafPolicy {
	p, err := sitemap.ParseLeafPolicy(c.Output.Policy)
	if err != nil {
		return sitemap.RetainWithURLs
	}

	return p
}

// Entry converts the YAML form into a library entry. Dates are read in loc.
func (u *URLConfig) Entry(loc *time.Location) (sitemap.Entry, error) {
	e := sitemap.Entry{
		URL:        u.URL,
		ChangeFreq: sitemap.ChangeFreq(u.ChangeFreq),
		LastModISO: u.LastModISO,
		Video:      u.Video,
	}

	if u.Priority != "" {
		p, err := sitemap.ParsePriority(u.Priority)
		if err != nil {
			return sitemap.Entry{}, err
		}

		e.Priority = &p
	}

	if u.LastMod != "" {
		t, err := parseLastMod(u.LastMod, loc)
		if err != nil {
			return sitemap.Entry{}, err
		}

		e.LastMod = t
	}

	if _, err := sitemap.NewValidator(loc).Validate(e); err != nil {
		return sitemap.Entry{}, err
	}

	return e, nil
}

func parseLastMod(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range lastModLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLastMod, value)
}

// Build converts the sitemap tree into library nodes.
func (c *Config) Build() (*sitemap.Sitemap, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	return c.Sitemap.build(loc, c.Policy())
}

func (s *SitemapConfig) build(loc *time.Location, policy sitemap.LeafPolicy) (*sitemap.Sitemap, error) {
	entries := make([]sitemap.Entry, 0, len(s.URLs))

	for i := range s.URLs {
		e, err := s.URLs[i].Entry(loc)
		if err != nil {
			return nil, fmt.Errorf("urls[%d]: %w", i, err)
		}

		entries = append(entries, e)
	}

	node, err := sitemap.New(sitemap.Config{
		Limit:    s.Limit,
		HostName: s.HostName,
		FileName: s.FileName,
		URLs:     entries,
		Location: loc,
		Policy:   policy,
	})
	if err != nil {
		return nil, err
	}

	for i := range s.Children {
		child, err := s.Children[i].build(loc, policy)
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}

		node.AddSitemap(child)
	}

	return node, nil
}

// CountURLs returns the number of URL entries in the whole tree.
func (s *SitemapConfig) CountURLs() int {
	n := len(s.URLs)
	for i := range s.Children {
		n += s.Children[i].CountURLs()
	}

	return n
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{URLs: %d, Limit: %d, Output: %s, Policy: %s}",
		c.Sitemap.CountURLs(),
		c.Sitemap.Limit,
		c.Output.Dir,
		c.Output.Policy,
	)
}
