package views

import (
	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/content"
)

// SiteConfig holds site-wide settings every page needs.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}

// HomeData is everything the landing page renders from.
type HomeData struct {
	Site        SiteConfig
	Lib         *content.Library
	CSRF        string
	Category    string // normalized portfolio filter
	Service     string // selected service id, "" for the first
	Testimonial int    // wrapped carousel index
	Form        contact.FormState
}

// PostData is a single blog post page.
type PostData struct {
	Site SiteConfig
	Lib  *content.Library
	CSRF string
	Post content.BlogPost
}
