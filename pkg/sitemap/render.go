package sitemap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// XML namespaces and the name of the index document.
const (
	SitemapNS      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	VideoNS        = "http://www.google.com/schemas/sitemap-video/1.1"
	IndexFileName  = "sitemap.xml"
	xmlDeclaration = `version="1.0"`
	indentSpaces   = 2
)

// Document is one rendered sitemap file.
type Document struct {
	FileName string
	XML      string
}

// Render builds a urlset document for every node holding URLs. When the list
// has more than one node, an index referencing all of them is prepended, so
// URL-less leaves kept by RetainWithURLsOrLeaf appear only in the index.
func Render(nodes []*Sitemap) ([]Document, error) {
	docs := make([]Document, 0, len(nodes)+1)

	for _, s := range nodes {
		if len(s.urls) == 0 {
			continue
		}

		out, err := renderURLSet(s.urls)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.fileName, err)
		}

		docs = append(docs, Document{FileName: s.fileName, XML: out})
	}

	if len(nodes) <= 1 {
		return docs, nil
	}

	index, err := renderIndex(nodes)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", IndexFileName, err)
	}

	return append([]Document{{FileName: IndexFileName, XML: index}}, docs...), nil
}

func renderURLSet(urls []URLEntry) (string, error) {
	doc, urlset := newDocument("urlset")

	hasVideo := false

	for _, u := range urls {
		el := urlset.CreateElement("url")
		addText(el, "loc", u.Loc)
		addText(el, "changefreq", string(u.ChangeFreq))
		addText(el, "priority", strconv.FormatFloat(u.Priority, 'f', -1, 64))

		if u.LastMod != "" {
			addText(el, "lastmod", u.LastMod)
		}

		if u.Video != nil {
			if !hasVideo {
				urlset.CreateAttr("xmlns:video", VideoNS)
				hasVideo = true
			}

			renderVideo(el.CreateElement("video:video"), u.Video)
		}
	}

	return serialize(doc)
}

func renderVideo(el *etree.Element, v *Video) {
	addText(el, "video:title", v.Title)
	addText(el, "video:description", v.Description)
	addText(el, "video:thumbnail_loc", v.ThumbnailLoc)
	addText(el, "video:content_loc", v.ContentLoc)

	if v.PlayerLoc != "" {
		addText(el, "video:player_loc", v.PlayerLoc)
	}

	if v.Duration > 0 {
		addText(el, "video:duration", strconv.Itoa(v.Duration))
	}

	if v.PublicationDate != "" {
		addText(el, "video:publication_date", v.PublicationDate)
	}

	if v.FamilyFriendly != nil {
		ff := "no"
		if *v.FamilyFriendly {
			ff = "yes"
		}

		addText(el, "video:family_friendly", ff)
	}

	for _, tag := range v.Tags {
		addText(el, "video:tag", tag)
	}
}

func renderIndex(nodes []*Sitemap) (string, error) {
	doc, index := newDocument("sitemapindex")

	for _, s := range nodes {
		addText(index.CreateElement("sitemap"), "loc", s.hostName+"/"+s.fileName)
	}

	return serialize(doc)
}

func newDocument(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", xmlDeclaration)

	el := doc.CreateElement(root)
	el.CreateAttr("xmlns", SitemapNS)

	return doc, el
}

func addText(parent *etree.Element, tag, text string) {
	parent.CreateElement(tag).SetText(text)
}

func serialize(doc *etree.Document) (string, error) {
	doc.Indent(indentSpaces)

	out, err := doc.WriteToString()
	if err != nil {
		return "", err
	}

	return strings.TrimRight(out, "\n"), nil
}
