package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// Component adapts a gomponents node to templ so handlers render through a
// single path.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

var colorClasses = map[string]map[string]string{
	"bg": {
		"blue": "bg-blue-500", "indigo": "bg-indigo-500", "purple": "bg-purple-500",
		"cyan": "bg-cyan-500", "teal": "bg-teal-500", "pink": "bg-pink-500",
	},
	"bgLight": {
		"blue": "bg-blue-500/10", "indigo": "bg-indigo-500/10", "purple": "bg-purple-500/10",
		"cyan": "bg-cyan-500/10", "teal": "bg-teal-500/10", "pink": "bg-pink-500/10",
	},
	"border": {
		"blue": "border-blue-500/20", "indigo": "border-indigo-500/20", "purple": "border-purple-500/20",
		"cyan": "border-cyan-500/20", "teal": "border-teal-500/20", "pink": "border-pink-500/20",
	},
	"text": {
		"blue": "text-blue-500", "indigo": "text-indigo-500", "purple": "text-purple-500",
		"cyan": "text-cyan-500", "teal": "text-teal-500", "pink": "text-pink-500",
	},
	"textLight": {
		"blue": "text-blue-400", "indigo": "text-indigo-400", "purple": "text-purple-400",
		"cyan": "text-cyan-400", "teal": "text-teal-400", "pink": "text-pink-400",
	},
	"gradient": {
		"blue": "from-blue-500 to-indigo-600", "indigo": "from-indigo-500 to-purple-600",
		"purple": "from-purple-500 to-pink-600", "cyan": "from-cyan-500 to-blue-600",
		"teal": "from-teal-500 to-cyan-600", "pink": "from-pink-500 to-purple-600",
	},
}

// ColorClass returns the utility class for a service colour. Unknown
// colours fall back to blue; unknown kinds yield "".
func ColorClass(kind, color string) string {
	m, ok := colorClasses[kind]
	if !ok {
		return ""
	}
	if c, ok := m[color]; ok {
		return c
	}
	return m["blue"]
}

// Stars returns how many of five stars are filled for rating.
func Stars(rating int) (filled, empty int) {
	filled = max(0, min(5, rating))
	return filled, 5 - filled
}

// homeURL builds a landing page link that keeps the other carousel and
// filter selections and jumps to anchor.
func homeURL(d HomeData, key, value, anchor string) string {
	q := url.Values{}
	if d.Category != "" && d.Category != content.AllCategory {
		q.Set("category", d.Category)
	}
	if d.Service != "" {
		q.Set("service", d.Service)
	}
	if d.Testimonial != 0 {
		q.Set("t", strconv.Itoa(d.Testimonial))
	}
	if value == "" || (key == "category" && value == content.AllCategory) {
		q.Del(key)
	} else {
		q.Set(key, value)
	}
	u := "/"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u + "#" + anchor
}

// icon renders a lucide icon through iconify.
func icon(name, class string) g.Node {
	return Span(
		Class("iconify inline-block "+class),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

func organizationJSONLD(cfg SiteConfig, info content.ContactInfo) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if info.Email != "" {
		data["email"] = info.Email
	}
	if info.Phone != "" {
		data["telephone"] = info.Phone
	}
	if info.Address != "" {
		data["address"] = info.Address
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func blogPostingJSONLD(cfg SiteConfig, post content.BlogPost) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Excerpt,
		"url":         postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if !post.Date.IsZero() {
		data["datePublished"] = post.Date.Format("2006-01-02")
	}
	if post.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.Author,
		}
	}
	if post.Image != "" {
		data["image"] = post.Image
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func formatDate(p content.BlogPost) string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("January 2, 2006")
}
