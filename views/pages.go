package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// Home is the landing page. Sections always render in the same order.
func Home(d HomeData) g.Node {
	meta := PageMeta{URL: BuildURL(d.Site.URL)}
	return Page(d.Site, meta, d.CSRF, organizationJSONLD(d.Site, d.Lib.Contact),
		NavbarSection(d.Lib),
		Main(
			HeroSection(d.Lib.Hero),
			ServicesSection(d),
			PortfolioSection(d),
			AboutSection(d.Lib.About),
			TestimonialsSection(d),
			BlogSection(d.Lib.Posts),
			ContactSection(d),
		),
		FooterSection(d.Lib),
	)
}

// NotFound is the 404 page. lib may be nil when content failed to load.
func NotFound(site SiteConfig, lib *content.Library) g.Node {
	return errorPage(site, lib, "404", "Page not found",
		"The page you are looking for does not exist or has been moved.")
}

// ServerError is the 500 page.
func ServerError(site SiteConfig, lib *content.Library) g.Node {
	return errorPage(site, lib, "500", "Something went wrong",
		"An unexpected error occurred. Please try again later.")
}

func errorPage(site SiteConfig, lib *content.Library, code, title, lead string) g.Node {
	body := []g.Node{
		Main(
			Class("min-h-screen flex items-center justify-center px-4"),
			Div(
				Class("text-center"),
				P(Class("text-7xl font-bold bg-gradient-to-r from-purple-400 to-blue-500 bg-clip-text text-transparent mb-4"), g.Text(code)),
				H1(Class("text-2xl font-semibold text-white mb-2"), g.Text(title)),
				P(Class("text-gray-400 mb-8"), g.Text(lead)),
				A(Href("/"), Class("inline-flex px-6 py-3 rounded-lg bg-gradient-to-r from-purple-600 to-blue-600 font-medium"), g.Text("Back to home")),
			),
		),
	}
	if lib != nil {
		body = append([]g.Node{NavbarSection(lib)}, append(body, FooterSection(lib))...)
	}
	return Page(site, PageMeta{Title: title + " | " + site.Name}, "", "", body...)
}
