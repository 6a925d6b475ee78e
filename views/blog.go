package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// BlogSection previews the latest posts.
func BlogSection(posts []content.BlogPost) g.Node {
	if len(posts) == 0 {
		return nil
	}
	return Section(
		ID("blog"),
		Class("py-24 bg-black"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeader("INSIGHTS", "Latest from Our Blog",
				"Notes from the team on AI agents, decentralized systems and the engineering between them."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(posts, postCard),
			),
		),
	)
}

func postCard(p content.BlogPost) g.Node {
	return Article(
		Class("rounded-2xl overflow-hidden border border-white/5 bg-gray-900 flex flex-col"),
		g.If(p.Image != "",
			A(Href(p.Link()), Img(Src(p.Image), Alt(p.Title), Class("h-48 w-full object-cover"), g.Attr("loading", "lazy"))),
		),
		Div(
			Class("p-6 flex flex-col flex-1"),
			Div(
				Class("flex items-center gap-3 text-xs text-gray-500 mb-3"),
				g.If(p.Category != "", Span(Class("px-2 py-1 rounded bg-purple-500/10 text-purple-400"), g.Text(p.Category))),
				g.If(!p.Date.IsZero(), g.El("time", g.Attr("datetime", p.Date.Format("2006-01-02")), g.Text(formatDate(p)))),
			),
			H3(Class("text-xl font-semibold text-white mb-2"), A(Href(p.Link()), Class("hover:text-purple-400"), g.Text(p.Title))),
			P(Class("text-gray-400 text-sm mb-6 flex-1"), g.Text(p.Excerpt)),
			Div(
				Class("flex items-center justify-between text-sm"),
				g.If(p.Author != "", Span(Class("text-gray-300"), g.Text(p.Author))),
				A(Href(p.Link()), Class("inline-flex items-center text-purple-400 hover:text-purple-300"),
					g.Text("Read more"), icon("arrow-right", "ml-1 size-4")),
			),
		),
	)
}

// PostPage renders a full blog post.
func PostPage(d PostData) g.Node {
	p := d.Post
	meta := PageMeta{
		Title:       p.Title + " | " + d.Site.Name,
		Description: p.Excerpt,
		URL:         BuildURL(d.Site.URL, "blog", p.Slug),
		OGType:      "article",
		Image:       p.Image,
	}
	return Page(d.Site, meta, d.CSRF, blogPostingJSONLD(d.Site, p),
		NavbarSection(d.Lib),
		Main(
			Class("pt-32 pb-24"),
			Article(
				Class("container mx-auto px-4 max-w-3xl"),
				A(Href("/#blog"), Class("inline-flex items-center text-sm text-gray-400 hover:text-white mb-8"),
					icon("arrow-left", "mr-1 size-4"), g.Text("Back to blog")),
				g.If(p.Category != "", P(Class("text-purple-400 text-sm font-medium mb-3"), g.Text(p.Category))),
				H1(Class("text-4xl md:text-5xl font-bold text-white mb-6"), g.Text(p.Title)),
				Div(
					Class("flex items-center gap-3 text-sm text-gray-400 mb-10"),
					g.If(p.Author != "", Span(Class("text-gray-200"), g.Text(p.Author))),
					g.If(p.AuthorRole != "", Span(g.Text(p.AuthorRole))),
					g.If(!p.Date.IsZero(), g.El("time", g.Attr("datetime", p.Date.Format("2006-01-02")), g.Text(formatDate(p)))),
				),
				g.If(p.Image != "", Img(Src(p.Image), Alt(p.Title), Class("w-full rounded-2xl mb-10"))),
				Div(Class("prose prose-invert max-w-none"), g.Raw(p.Body)),
			),
		),
		FooterSection(d.Lib),
	)
}
