package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>VnExpress</title>
  <item>
    <title>Giá vàng tăng</title>
    <link>https://example.com/gia-vang</link>
    <description><![CDATA[<p>Giá vàng <b>tăng</b> mạnh</p>]]></description>
    <content:encoded><![CDATA[<p>Đoạn một.</p><p>Đoạn hai.</p>]]></content:encoded>
    <pubDate>Tue, 04 Mar 2025 08:30:00 +0700</pubDate>
    <category>Kinh doanh</category>
  </item>
  <item>
    <title>Bóng đá</title>
    <link>https://example.com/bong-da</link>
    <description>Tin thể thao</description>
  </item>
</channel>
</rss>`

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>AI news</title>
    <link rel="alternate" href="https://example.com/ai"/>
    <summary>&lt;p&gt;Short&lt;/p&gt;</summary>
    <updated>2025-03-04T01:30:00Z</updated>
    <category term="technology"/>
  </entry>
</feed>`

func TestFetch_RSS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFeed))
	}))
	defer srv.Close()

	entries, err := New(Config{Timeout: time.Second}).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Giá vàng tăng", first.Title)
	assert.Equal(t, "https://example.com/gia-vang", first.Link)
	assert.Equal(t, "Giá vàng tăng mạnh", first.Description)
	assert.Contains(t, first.Content, "Đoạn một.")
	assert.NotContains(t, first.Content, "<p>")
	assert.Equal(t, []string{"Kinh doanh"}, first.Categories)
	require.NotNil(t, first.PublishedAt)
	assert.Equal(t, time.Date(2025, 3, 4, 1, 30, 0, 0, time.UTC), *first.PublishedAt)

	assert.Equal(t, "Tin thể thao", entries[1].Content)
	assert.Nil(t, entries[1].PublishedAt)
}

func TestParse_Atom(t *testing.T) {
	entries, err := New(Config{}).parse([]byte(atomFeed))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://example.com/ai", entries[0].Link)
	assert.Equal(t, "Short", entries[0].Content)
	assert.Equal(t, []string{"technology"}, entries[0].Categories)
	require.NotNil(t, entries[0].PublishedAt)
}

func TestParse_LimitsEntries(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<rss><channel>`)
	for i := 0; i < 15; i++ {
		b.WriteString(`<item><title>t</title><link>https://example.com/x</link></item>`)
	}
	b.WriteString(`</channel></rss>`)

	entries, err := New(Config{MaxEntries: 10}).parse([]byte(b.String()))
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestFetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(Config{Timeout: time.Second}).Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}
