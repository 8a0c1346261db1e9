// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// unknownCategory is the sentinel primary category for entries without one.
const unknownCategory = "Unknown"

// arxivIDPattern captures the short identifier from an abs URL
// (e.g. "http://arxiv.org/abs/1706.03762v1" → "1706.03762v1").
var arxivIDPattern = regexp.MustCompile(`/abs/(.+)$`)

// Atom feed shapes for the fields arxiv-scout extracts. The feed carries
// more (arxiv:comment, arxiv:journal_ref, ...) which is deliberately ignored.
type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
	Links      []atomLink     `xml:"link"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

// ParseFeed extracts papers from an arXiv Atom feed in document order.
//
// Each <entry> is decoded independently: a malformed entry is logged and
// skipped, and parsing continues with the next one. A feed with no
// extractable entries yields an empty slice, never an error.
func ParseFeed(r io.Reader, logger *zap.Logger) []types.Paper {
	if logger == nil {
		logger = zap.NewNop()
	}

	var papers []types.Paper
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// The document is broken past this point; keep what parsed.
			logger.Warn("feed truncated", zap.Error(err), zap.Int("parsed", len(papers)))
			break
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}

		var entry atomEntry
		if err := dec.DecodeElement(&entry, &se); err != nil {
			logger.Warn("skipping malformed feed entry", zap.Error(err))
			continue
		}

		paper, err := paperFromEntry(entry)
		if err != nil {
			logger.Warn("skipping feed entry", zap.String("id", entry.ID), zap.Error(err))
			continue
		}
		papers = append(papers, paper)
	}
	return papers
}

// paperFromEntry assembles a Paper from one decoded entry. Any failure here
// drops only this entry.
func paperFromEntry(e atomEntry) (types.Paper, error) {
	published, err := time.Parse(time.RFC3339, e.Published)
	if err != nil {
		return types.Paper{}, fmt.Errorf("parsing published date %q: %w", e.Published, err)
	}

	// Updated falls back to the published timestamp when absent or broken.
	updated := published
	if t, err := time.Parse(time.RFC3339, e.Updated); err == nil {
		updated = t
	}

	var authors []string
	for _, a := range e.Authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		authors = append(authors, name)
	}

	var categories []string
	for _, c := range e.Categories {
		if c.Term == "" {
			continue
		}
		categories = append(categories, c.Term)
	}
	primary := unknownCategory
	if len(categories) > 0 {
		primary = categories[0]
	}

	return types.Paper{
		ID:              e.ID,
		ArxivID:         extractArxivID(e.ID),
		Title:           normalizeSpace(e.Title),
		Authors:         authors,
		Summary:         normalizeSpace(e.Summary),
		Published:       published,
		Updated:         updated,
		Categories:      categories,
		PrimaryCategory: primary,
		Link:            e.ID,
		PDFLink:         pdfLink(e),
	}, nil
}

// pdfLink returns the first feed link carrying both href and type attributes
// whose href mentions pdf. When the feed exposes none, the link is derived
// from the abs URL by substituting the path segment and appending ".pdf".
func pdfLink(e atomEntry) string {
	for _, l := range e.Links {
		if l.Href == "" || l.Type == "" {
			continue
		}
		if strings.Contains(l.Href, "pdf") {
			return l.Href
		}
	}
	return strings.Replace(e.ID, "/abs/", "/pdf/", 1) + ".pdf"
}

// extractArxivID pulls the short identifier from the entry's abs URL.
// Returns "" when the URL does not match.
func extractArxivID(idURL string) string {
	m := arxivIDPattern.FindStringSubmatch(idURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// normalizeSpace collapses runs of whitespace (including the feed's internal
// newlines and indentation) to single spaces and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
