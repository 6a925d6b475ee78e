package views

import (
	"strings"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// Page wraps body in the document shell: head metadata, stylesheet,
// scripts and the CSRF token the contact form script reads.
func Page(site SiteConfig, meta PageMeta, csrf string, jsonLD string, body ...g.Node) g.Node {
	if meta.Title == "" {
		meta.Title = site.Name
	}
	if meta.Description == "" {
		meta.Description = site.Description
	}
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.URL == "" {
		meta.URL = BuildURL(site.URL)
	}
	if meta.Image == "" {
		meta.Image = site.URL + "/og.png"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				g.If(csrf != "", Meta(Name("csrf-token"), Content(csrf))),
				Link(Rel("canonical"), Href(meta.URL)),

				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				Meta(g.Attr("property", "og:description"), Content(meta.Description)),
				Meta(g.Attr("property", "og:type"), Content(meta.OGType)),
				Meta(g.Attr("property", "og:url"), Content(meta.URL)),
				Meta(g.Attr("property", "og:image"), Content(meta.Image)),
				Meta(Name("twitter:card"), Content("summary_large_image")),

				Link(Rel("icon"), Type("image/svg+xml"), Href("/favicon.svg")),
				Link(Rel("alternate"), Type("application/rss+xml"), g.Attr("title", site.Name), Href("/feed.xml")),
				Link(Rel("stylesheet"), Href("/public/styles.css")),

				g.If(jsonLD != "", Script(Type("application/ld+json"), g.Raw(jsonLD))),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-black text-white antialiased"),
				g.Group(body),
				Script(Src("/assets/site.js"), g.Attr("defer")),
			),
		),
	})
}

// NavbarSection is the fixed top bar.
func NavbarSection(lib *content.Library) g.Node {
	return Header(
		Class("fixed top-0 inset-x-0 z-50 bg-black/70 backdrop-blur border-b border-white/5"),
		g.Attr("data-navbar"),
		Nav(
			Class("container mx-auto px-4 flex items-center justify-between h-16"),
			brand(lib.Site, "text-xl"),
			Ul(
				Class("hidden md:flex items-center gap-8"),
				g.Map(lib.Nav, func(l content.NavLink) g.Node {
					return Li(A(Href(l.Href), Class("text-gray-300 hover:text-white transition-colors"), g.Text(l.Name)))
				}),
			),
			g.If(lib.Site.CTA != "",
				A(
					Href(lib.Site.CTAHref),
					Class("hidden md:inline-flex px-5 py-2 rounded-lg bg-gradient-to-r from-purple-600 to-blue-600 text-white font-medium"),
					g.Text(lib.Site.CTA),
				),
			),
			Button(
				Type("button"),
				Class("md:hidden text-gray-300"),
				g.Attr("data-menu-toggle"),
				g.Attr("aria-label", "Toggle menu"),
				icon("menu", "size-6"),
			),
		),
		Ul(
			Class("md:hidden hidden px-4 pb-4 space-y-2"),
			g.Attr("data-menu"),
			g.Map(lib.Nav, func(l content.NavLink) g.Node {
				return Li(A(Href(l.Href), Class("block py-2 text-gray-300"), g.Text(l.Name)))
			}),
		),
	)
}

func brand(s content.Site, size string) g.Node {
	return A(
		Href("/#home"),
		Class("font-bold tracking-tighter flex items-center "+size),
		Span(Class("bg-gradient-to-r from-white to-gray-400 bg-clip-text text-transparent mr-1.5"), g.Text(s.Brand)),
		g.If(s.BrandAccent != "",
			Span(Class("bg-gradient-to-r from-purple-400 to-blue-500 bg-clip-text text-transparent"), g.Text(s.BrandAccent)),
		),
		icon("brain", "ml-1.5 text-purple-400"),
	)
}

// FooterSection is the page footer.
func FooterSection(lib *content.Library) g.Node {
	f := lib.Footer
	return Footer(
		Class("bg-black pt-16 pb-8 border-t border-white/5"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8 lg:gap-16 mb-12"),
				Div(
					brand(lib.Site, "text-xl mb-4"),
					P(Class("text-gray-400 mb-6"), g.Text(f.Tagline)),
					Div(
						Class("flex space-x-4"),
						g.Map(f.Socials, func(l content.NavLink) g.Node {
							return A(
								Href(l.Href),
								Class("text-gray-400 hover:text-purple-400 transition-colors"),
								g.Attr("aria-label", l.Name),
								icon(socialIcon(l.Name), "size-5"),
							)
						}),
					),
				),
				g.Map(f.Columns, func(col content.FooterColumn) g.Node {
					return Div(
						H3(Class("text-white font-semibold mb-6"), g.Text(col.Title)),
						Ul(
							Class("space-y-3"),
							g.Map(col.Links, func(l content.NavLink) g.Node {
								return Li(A(Href(l.Href), Class("text-gray-400 hover:text-purple-400 transition-colors"), g.Text(l.Name)))
							}),
						),
					)
				}),
			),
			Div(
				Class("border-t border-gray-800 pt-8 flex flex-col md:flex-row justify-between items-center"),
				P(
					Class("text-gray-500 text-sm"),
					g.Textf("© %d %s %s. All rights reserved.", time.Now().Year(), lib.Site.Brand, lib.Site.BrandAccent),
				),
				Div(
					Class("flex gap-6 text-sm"),
					A(Href("/feed.xml"), Class("text-gray-500 hover:text-gray-400"), g.Text("RSS")),
					A(Href("/sitemap.xml"), Class("text-gray-500 hover:text-gray-400"), g.Text("Sitemap")),
				),
			),
		),
	)
}

func socialIcon(name string) string {
	switch name {
	case "Facebook", "Twitter", "Instagram", "Linkedin", "Github":
		return strings.ToLower(name)
	default:
		return "link"
	}
}
