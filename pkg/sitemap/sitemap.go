package sitemap

import (
	"slices"
	"time"
)

// DefaultLimit is the protocol maximum number of URLs per sitemap file.
// See https://www.sitemaps.org/protocol.html#index.
const DefaultLimit = 50000

// Config describes a new sitemap node.
type Config struct {
	// Location is the zone LastMod dates are formatted in (nil: time.Local).
	Location *time.Location
	// HostName prefixes index links: {HostName}/{FileName}.
	HostName string
	// FileName is assigned as sitemap-{n}.xml when empty.
	FileName string
	URLs     []Entry
	Children []*Sitemap
	// Limit is the URL count at which the node is split (default DefaultLimit).
	Limit int
	// Policy decides which nodes become documents. It is read from the root only.
	Policy LeafPolicy
}

// Sitemap is a node of the sitemap tree: a document-to-be holding its own
// URLs and any number of child sitemaps.
type Sitemap struct {
	validator *Validator
	hostName  string
	fileName  string
	urls      []URLEntry
	children  []*Sitemap
	limit     int
	policy    LeafPolicy
}

// New creates a sitemap node, validating the initial URLs.
func New(cfg Config) (*Sitemap, error) {
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &Sitemap{
		validator: NewValidator(cfg.Location),
		limit:     limit,
		hostName:  cfg.HostName,
		fileName:  cfg.FileName,
		policy:    cfg.Policy,
	}

	if len(cfg.URLs) > 0 {
		if err := s.AddURL(cfg.URLs...); err != nil {
			return nil, err
		}
	}

	for _, child := range cfg.Children {
		s.AddSitemap(child)
	}

	return s, nil
}

// AddURL validates entries and appends them in order. Nothing is appended
// unless every entry is valid.
func (s *Sitemap) AddURL(entries ...Entry) error {
	if len(entries) == 0 {
		return &EntryError{Err: ErrMissingURL}
	}

	validated := make([]URLEntry, 0, len(entries))

	for _, e := range entries {
		u, err := s.validator.Validate(e)
		if err != nil {
			return err
		}

		validated = append(validated, u)
	}

	s.urls = append(s.urls, validated...)

	return nil
}

// AddLoc adds bare URLs with default changefreq and priority.
func (s *Sitemap) AddLoc(locs ...string) error {
	entries := make([]Entry, len(locs))
	for i, loc := range locs {
		entries[i] = Entry{URL: loc}
	}

	return s.AddURL(entries...)
}

// AddSitemap attaches child and returns s for chaining. Nil children are
// ignored. Cycles are the caller's responsibility.
func (s *Sitemap) AddSitemap(child *Sitemap) *Sitemap {
	if child != nil {
		s.children = append(s.children, child)
	}

	return s
}

// Limit returns the split threshold.
func (s *Sitemap) Limit() int { return s.limit }

// HostName returns the host used in index links.
func (s *Sitemap) HostName() string { return s.hostName }

// FileName returns the configured or assigned file name.
func (s *Sitemap) FileName() string { return s.fileName }

// URLs returns a copy of the node's validated entries.
func (s *Sitemap) URLs() []URLEntry { return slices.Clone(s.urls) }

// Children returns a copy of the node's child list.
func (s *Sitemap) Children() []*Sitemap { return slices.Clone(s.children) }

// ToXML renders the whole tree. The index document, when present, comes first.
func (s *Sitemap) ToXML() ([]Document, error) {
	nodes := Select(Flatten(s), s.policy)
	nodes = AssignNames(nodes)
	nodes = Normalize(nodes)

	return Render(nodes)
}

// clone copies the node's settings with the given URLs and children.
func (s *Sitemap) clone(fileName string, urls []URLEntry, children []*Sitemap) *Sitemap {
	return &Sitemap{
		validator: s.validator,
		limit:     s.limit,
		hostName:  s.hostName,
		fileName:  fileName,
		policy:    s.policy,
		urls:      slices.Clone(urls),
		children:  slices.Clone(children),
	}
}
