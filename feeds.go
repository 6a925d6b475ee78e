package site

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neuralarc/site/content"
	"github.com/neuralarc/site/views"
)

const dayLayout = "2006-01-02"

type urlSet struct {
	XMLName xml.Name   `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// The landing page changes whenever a post is published, so it takes the
// newest post date. Posts are already sorted newest first.
func (a *App) sitemap(posts []content.BlogPost) urlSet {
	home := urlEntry{Loc: views.BuildURL(a.Config.URL), ChangeFreq: "weekly", Priority: "1.0"}
	if len(posts) > 0 && !posts[0].Date.IsZero() {
		home.LastMod = posts[0].Date.Format(dayLayout)
	}
	set := urlSet{URLs: []urlEntry{home}}
	for _, p := range posts {
		e := urlEntry{Loc: views.BuildURL(a.Config.URL, "blog", p.Slug), Priority: "0.6"}
		if !p.Date.IsZero() {
			e.LastMod = p.Date.Format(dayLayout)
		}
		set.URLs = append(set.URLs, e)
	}
	return set
}

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Atom    string   `xml:"xmlns:atom,attr"`
	Channel channel  `xml:"channel"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type channel struct {
	Title         string   `xml:"title"`
	Link          string   `xml:"link"`
	Self          atomLink `xml:"atom:link"`
	Description   string   `xml:"description"`
	Language      string   `xml:"language"`
	LastBuildDate string   `xml:"lastBuildDate,omitempty"`
	Items         []item   `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	Author      string `xml:"author,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
}

func (a *App) feed(posts []content.BlogPost) rss {
	ch := channel{
		Title:       a.Config.Name,
		Link:        views.BuildURL(a.Config.URL),
		Self:        atomLink{Href: fileURL(a.Config.URL, "feed.xml"), Rel: "self", Type: "application/rss+xml"},
		Description: a.Config.Description,
		Language:    "en",
		Items:       make([]item, 0, len(posts)),
	}
	if len(posts) > 0 && !posts[0].Date.IsZero() {
		ch.LastBuildDate = posts[0].Date.Format(time.RFC1123Z)
	}
	for _, p := range posts {
		link := views.BuildURL(a.Config.URL, "blog", p.Slug)
		it := item{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			Description: p.Excerpt,
			Category:    p.Category,
			Author:      p.Author,
		}
		if !p.Date.IsZero() {
			it.PubDate = p.Date.Format(time.RFC1123Z)
		}
		ch.Items = append(ch.Items, it)
	}
	return rss{Version: "2.0", Atom: "http://www.w3.org/2005/Atom", Channel: ch}
}

func (a *App) handleSitemap(c echo.Context) error {
	lib, err := a.library()
	if err != nil {
		return err
	}
	return writeXML(c, "application/xml; charset=utf-8", a.sitemap(lib.Posts))
}

func (a *App) handleFeed(c echo.Context) error {
	lib, err := a.library()
	if err != nil {
		return err
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", a.feed(lib.Posts))
}

func writeXML(c echo.Context, contentType string, v any) error {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, append([]byte(xml.Header), out...))
}
