package views

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/content"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func homeData(t *testing.T) HomeData {
	t.Helper()
	lib, err := content.Load(content.Default())
	require.NoError(t, err)
	return HomeData{
		Site:     SiteConfig{Name: "Neuralarc Matrix", URL: "https://neuralarc.example"},
		Lib:      lib,
		CSRF:     "tok",
		Category: content.AllCategory,
	}
}

func TestColorClass(t *testing.T) {
	assert.Equal(t, "bg-purple-500", ColorClass("bg", "purple"))
	assert.Equal(t, "text-blue-400", ColorClass("textLight", "chartreuse"))
	assert.Equal(t, "", ColorClass("shadow", "blue"))
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating, filled, empty int
	}{
		{5, 5, 0},
		{3, 3, 2},
		{0, 0, 5},
		{-2, 0, 5},
		{9, 5, 0},
	}
	for _, tt := range tests {
		f, e := Stars(tt.rating)
		assert.Equal(t, tt.filled, f, "rating %d", tt.rating)
		assert.Equal(t, tt.empty, e, "rating %d", tt.rating)
	}
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://x.test", BuildURL("https://x.test"))
	assert.Equal(t, "https://x.test/blog/hello/", BuildURL("https://x.test", "blog", "hello"))
}

func TestHomeURL(t *testing.T) {
	d := HomeData{Category: "blockchain", Testimonial: 2}
	assert.Equal(t, "/?category=blockchain&service=vision&t=2#services", homeURL(d, "service", "vision", "services"))
	assert.Equal(t, "/?t=2#portfolio", homeURL(d, "category", content.AllCategory, "portfolio"))
	assert.Equal(t, "/?category=blockchain#testimonials", homeURL(HomeData{Category: "blockchain"}, "t", "", "testimonials"))
	assert.Equal(t, "/#contact", homeURL(HomeData{}, "service", "", "contact"))
}

func TestHomeSectionOrder(t *testing.T) {
	html := render(t, Home(homeData(t)))

	markers := []string{
		"data-navbar",
		`id="home"`,
		`id="services"`,
		`id="portfolio"`,
		`id="about"`,
		`id="testimonials"`,
		`id="blog"`,
		`id="contact"`,
		"<footer",
	}
	last := -1
	for _, m := range markers {
		i := strings.Index(html, m)
		require.NotEqual(t, -1, i, "missing %s", m)
		assert.Greater(t, i, last, "%s out of order", m)
		last = i
	}
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<meta name="csrf-token" content="tok">`)
}

func TestPortfolioFilter(t *testing.T) {
	d := homeData(t)
	d.Category = "blockchain"
	html := render(t, PortfolioSection(d))
	assert.Contains(t, html, "NFT Ticketing Platform")
	assert.NotContains(t, html, "Fitness AI")
	assert.Contains(t, html, `aria-current="true"`)

	assert.Contains(t, html, `href="/?category=enterprise#portfolio" data-step="prev"`)
	assert.Contains(t, html, `href="/?category=web3#portfolio" data-step="next"`)

	d.Category = content.AllCategory
	html = render(t, PortfolioSection(d))
	assert.Contains(t, html, "NFT Ticketing Platform")
	assert.Contains(t, html, "Fitness AI")
	// stepping back from "all" wraps to the last category, forward to the first
	assert.Contains(t, html, `href="/?category=web3#portfolio" data-step="prev"`)
	assert.Contains(t, html, `href="/?category=ai-agents#portfolio" data-step="next"`)
}

func TestTestimonialsWrap(t *testing.T) {
	d := homeData(t)
	d.Testimonial = -1
	html := render(t, TestimonialsSection(d))
	assert.Contains(t, html, "Emily Rodriguez")
	assert.NotContains(t, html, "Sarah Johnson")
	assert.Contains(t, html, "3 / 3")
	// next from the last wraps to the first
	assert.Contains(t, html, `href="/?t=0#testimonials"`)
}

func TestServicesSelection(t *testing.T) {
	d := homeData(t)
	html := render(t, ServicesSection(d))
	assert.Contains(t, html, `data-service="ai-agents"`)

	d.Service = "vision"
	html = render(t, ServicesSection(d))
	assert.Contains(t, html, `data-service="vision"`)

	d.Service = "nope"
	html = render(t, ServicesSection(d))
	assert.Contains(t, html, `data-service="ai-agents"`)
}

func TestContactFormStates(t *testing.T) {
	filled := contact.Fields{Name: "Jane", Email: "jane@x.com", Interest: "ai-agents", Message: "Hello"}

	t.Run("failure keeps fields", func(t *testing.T) {
		html := render(t, ContactForm(contact.FormState{Fields: filled, Error: contact.MsgMissingFields}, "tok"))
		assert.Contains(t, html, contact.MsgMissingFields)
		assert.Contains(t, html, `value="Jane"`)
		assert.Contains(t, html, `<option value="ai-agents" selected>`)
		assert.Contains(t, html, ">Hello</textarea>")
		assert.Contains(t, html, `name="_csrf" value="tok"`)
	})

	t.Run("success clears fields", func(t *testing.T) {
		html := render(t, ContactForm(contact.FormState{Success: true}, "tok"))
		assert.Contains(t, html, "Your message has been sent")
		assert.NotContains(t, html, `value="Jane"`)
		assert.NotContains(t, html, `role="alert"`)
	})

	t.Run("submitting disables button", func(t *testing.T) {
		html := render(t, ContactForm(contact.FormState{Fields: filled, Submitting: true}, "tok"))
		assert.Contains(t, html, " disabled>")
		assert.Contains(t, html, "Sending...")
		assert.Contains(t, html, `aria-busy="true"`)
	})
}

func TestPostPage(t *testing.T) {
	d := homeData(t)
	post, err := d.Lib.Post("future-of-decentralized-finance")
	require.NoError(t, err)

	html := render(t, PostPage(PostData{Site: d.Site, Lib: d.Lib, Post: post}))
	assert.Contains(t, html, `<meta property="og:type" content="article">`)
	assert.Contains(t, html, `"@type":"BlogPosting"`)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, `<link rel="canonical" href="https://neuralarc.example/blog/future-of-decentralized-finance/">`)
}

func TestErrorPagesWithoutLibrary(t *testing.T) {
	html := render(t, NotFound(SiteConfig{Name: "N"}, nil))
	assert.Contains(t, html, "Page not found")
	assert.NotContains(t, html, "<footer")
}

func TestComponentAdapter(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Component(g.Text("a<b")).Render(context.Background(), &b))
	assert.Equal(t, "a&lt;b", b.String())
}
