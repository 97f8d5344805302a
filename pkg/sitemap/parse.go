package sitemap

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrUnknownDocument is returned when the root element is neither urlset nor sitemapindex.
var ErrUnknownDocument = errors.New("not a urlset or sitemapindex document")

type urlSetXML struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []urlXML `xml:"url"`
}

type urlXML struct {
	Video      *videoXML `xml:"video"`
	Loc        string    `xml:"loc"`
	ChangeFreq string    `xml:"changefreq"`
	Priority   string    `xml:"priority"`
	LastMod    string    `xml:"lastmod"`
}

type videoXML struct {
	Title           string   `xml:"title"`
	Description     string   `xml:"description"`
	ThumbnailLoc    string   `xml:"thumbnail_loc"`
	ContentLoc      string   `xml:"content_loc"`
	PlayerLoc       string   `xml:"player_loc"`
	PublicationDate string   `xml:"publication_date"`
	FamilyFriendly  string   `xml:"family_friendly"`
	Tags            []string `xml:"tag"`
	Duration        int      `xml:"duration"`
}

type indexXML struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Sitemaps []sitemapXML `xml:"sitemap"`
}

type sitemapXML struct {
	Loc string `xml:"loc"`
}

// ParseResult holds the content of a parsed sitemap document.
type ParseResult struct {
	Entries     []URLEntry // from a <urlset>
	SubSitemaps []string   // from a <sitemapindex>
	IsIndex     bool
}

// Parse decodes raw XML as either a sitemap index or a urlset.
func Parse(data []byte) (*ParseResult, error) {
	var root struct {
		XMLName xml.Name
	}
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding sitemap: %w", err)
	}

	switch root.XMLName.Local {
	case "sitemapindex":
		var idx indexXML
		if err := xml.Unmarshal(data, &idx); err != nil {
			return nil, fmt.Errorf("decoding sitemap index: %w", err)
		}

		result := &ParseResult{IsIndex: true}

		for _, s := range idx.Sitemaps {
			if s.Loc != "" {
				result.SubSitemaps = append(result.SubSitemaps, s.Loc)
			}
		}

		return result, nil
	case "urlset":
		var set urlSetXML
		if err := xml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("decoding urlset: %w", err)
		}

		result := &ParseResult{}

		for _, u := range set.URLs {
			entry, err := u.entry()
			if err != nil {
				return nil, err
			}

			result.Entries = append(result.Entries, entry)
		}

		return result, nil
	default:
		return nil, fmt.Errorf("%w: <%s>", ErrUnknownDocument, root.XMLName.Local)
	}
}

func (u urlXML) entry() (URLEntry, error) {
	e := URLEntry{
		Loc:        u.Loc,
		ChangeFreq: ChangeFreq(u.ChangeFreq),
		LastMod:    u.LastMod,
		Priority:   DefaultPriority,
	}

	if u.Priority != "" {
		p, err := ParsePriority(u.Priority)
		if err != nil {
			return URLEntry{}, &EntryError{URL: u.Loc, Err: err}
		}

		e.Priority = p
	}

	if u.Video != nil {
		e.Video = &Video{
			Title:           u.Video.Title,
			Description:     u.Video.Description,
			ThumbnailLoc:    u.Video.ThumbnailLoc,
			ContentLoc:      u.Video.ContentLoc,
			PlayerLoc:       u.Video.PlayerLoc,
			PublicationDate: u.Video.PublicationDate,
			Tags:            u.Video.Tags,
			Duration:        u.Video.Duration,
		}

		switch u.Video.FamilyFriendly {
		case "yes":
			e.Video.FamilyFriendly = boolPtr(true)
		case "no":
			e.Video.FamilyFriendly = boolPtr(false)
		}
	}

	return e, nil
}

func boolPtr(b bool) *bool {
	return &b
}
