// Package sitemap builds sitemaps.org documents from a tree of sitemap nodes,
// splitting oversized nodes and emitting an index when more than one
// document is produced.
package sitemap

import "time"

// ChangeFreq is the protocol's "how often this page changes" hint.
type ChangeFreq string

// Change frequencies defined by the sitemap protocol.
const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

const (
	// DefaultChangeFreq is used when an entry does not set one.
	DefaultChangeFreq = Weekly
	// DefaultPriority is used when an entry does not set one.
	DefaultPriority = 0.5
)

// Entry is a raw page reference as supplied by the caller.
type Entry struct {
	// LastMod is formatted as a YYYY-MM-DD date when LastModISO is empty.
	LastMod    time.Time
	Priority   *float64
	Video      *Video
	URL        string
	ChangeFreq ChangeFreq
	// LastModISO is used verbatim when set.
	LastModISO string
}

// Video is Google video sitemap metadata attached to a page.
type Video struct {
	FamilyFriendly  *bool    `yaml:"family_friendly"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	ThumbnailLoc    string   `yaml:"thumbnail_loc"`
	ContentLoc      string   `yaml:"content_loc"`
	PlayerLoc       string   `yaml:"player_loc"`
	PublicationDate string   `yaml:"publication_date"`
	Tags            []string `yaml:"tag"`
	Duration        int      `yaml:"duration"`
}

// URLEntry is a validated page reference. All fields are protocol-legal.
type URLEntry struct {
	Video      *Video
	Loc        string
	ChangeFreq ChangeFreq
	LastMod    string
	Priority   float64
}

// Priority returns a pointer to p, for use in Entry literals.
func Priority(p float64) *float64 {
	return &p
}
