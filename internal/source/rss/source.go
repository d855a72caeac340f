package rss

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"news_pipeline/internal/domain"
	"news_pipeline/internal/markup"
)

type Config struct {
	Timeout    time.Duration
	MaxEntries int
}

// Source fetches RSS 2.0 and Atom feeds.
type Source struct {
	client     *resty.Client
	maxEntries int
}

type document struct {
	XMLName xml.Name
	Channel struct {
		Items []item `xml:"item"`
	} `xml:"channel"`
	Entries []atomEntry `xml:"entry"`
}

type item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Encoded     string   `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category"`
}

type atomEntry struct {
	Title string `xml:"title"`
	Links []struct {
		Href string `xml:"href,attr"`
		Rel  string `xml:"rel,attr"`
	} `xml:"link"`
	Summary    string `xml:"summary"`
	Content    string `xml:"content"`
	Published  string `xml:"published"`
	Updated    string `xml:"updated"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
}

func New(cfg Config) *Source {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 10
	}
	return &Source{
		client: resty.New().
			SetTimeout(cfg.Timeout).
			SetRetryCount(2).
			SetRetryWaitTime(time.Second).
			SetRetryMaxWaitTime(5 * time.Second),
		maxEntries: cfg.MaxEntries,
	}
}

// Fetch returns the newest entries of the feed at url with HTML stripped.
func (s *Source) Fetch(ctx context.Context, url string) ([]domain.FeedEntry, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("fetch feed %s: unexpected status %d", url, resp.StatusCode())
	}

	return s.parse(resp.Body())
}

func (s *Source) parse(body []byte) ([]domain.FeedEntry, error) {
	var doc document
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var entries []domain.FeedEntry
	for _, it := range doc.Channel.Items {
		content := it.Encoded
		if content == "" {
			content = it.Description
		}
		entries = append(entries, domain.FeedEntry{
			Title:       strings.TrimSpace(it.Title),
			Link:        strings.TrimSpace(it.Link),
			Description: markup.PlainText(it.Description),
			Content:     markup.PlainText(content),
			Categories:  it.Categories,
			PublishedAt: parseTime(it.PubDate),
		})
	}
	for _, e := range doc.Entries {
		content := e.Content
		if content == "" {
			content = e.Summary
		}
		entry := domain.FeedEntry{
			Title:       strings.TrimSpace(e.Title),
			Link:        atomLink(e),
			Description: markup.PlainText(e.Summary),
			Content:     markup.PlainText(content),
			PublishedAt: parseTime(e.Published),
		}
		if entry.PublishedAt == nil {
			entry.PublishedAt = parseTime(e.Updated)
		}
		for _, c := range e.Categories {
			entry.Categories = append(entry.Categories, c.Term)
		}
		entries = append(entries, entry)
	}

	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}
	return entries, nil
}

func atomLink(e atomEntry) string {
	for _, l := range e.Links {
		if l.Rel == "" || l.Rel == "alternate" {
			return strings.TrimSpace(l.Href)
		}
	}
	if len(e.Links) > 0 {
		return strings.TrimSpace(e.Links[0].Href)
	}
	return ""
}

var timeLayouts = []string{time.RFC1123Z, time.RFC1123, time.RFC3339, "Mon, 2 Jan 2006 15:04:05 -0700", "Mon, 2 Jan 2006 15:04:05 MST"}

func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
