package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// PortfolioSection shows the category filter and the matching projects.
// The filter works as plain links; site.js upgrades it to in-place
// filtering.
func PortfolioSection(d HomeData) g.Node {
	projects := d.Lib.ProjectsByCategory(d.Category)
	return Section(
		ID("portfolio"),
		Class("py-24 bg-black"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeader("OUR WORK", "Featured Projects",
				"A selection of AI and blockchain systems we have designed, built and shipped with our clients."),
			Div(
				Class("flex flex-wrap justify-center gap-3 mb-12"),
				g.Attr("data-filter"),
				g.Map(d.Lib.FilterCategories(), func(c content.Category) g.Node {
					return A(
						Href(homeURL(d, "category", c.ID, "portfolio")),
						g.Attr("data-category", c.ID),
						Class(filterClass(c.ID == d.Category)),
						g.If(c.ID == d.Category, g.Attr("aria-current", "true")),
						g.Text(c.Label),
					)
				}),
			),
			categoryStepper(d),
			g.If(len(projects) == 0,
				P(Class("text-center text-gray-500"), g.Attr("data-empty"), g.Text("No projects in this category yet.")),
			),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(projects, projectCard),
			),
		),
	)
}

// categoryStepper steps through the filters one at a time on narrow
// screens, where the full row of pills wraps badly.
func categoryStepper(d HomeData) g.Node {
	label := ""
	for _, c := range d.Lib.FilterCategories() {
		if c.ID == d.Category {
			label = c.Label
		}
	}
	step := func(id, text, rel, glyph string) g.Node {
		return A(
			Href(homeURL(d, "category", id, "portfolio")),
			g.Attr("data-step", rel),
			g.Attr("data-step-category", id),
			g.Attr("aria-label", text),
			Class("px-3 py-1 rounded-full border border-white/10 text-gray-400 hover:text-white"),
			g.Text(glyph),
		)
	}
	return Div(
		Class("md:hidden flex items-center justify-center gap-4 -mt-8 mb-10 text-sm"),
		g.Attr("data-category-stepper"),
		step(d.Lib.PrevCategory(d.Category), "Previous category", "prev", "‹"),
		Span(Class("text-white"), g.Attr("data-step-label"), g.Text(label)),
		step(d.Lib.NextCategory(d.Category), "Next category", "next", "›"),
	)
}

func filterClass(active bool) string {
	base := "px-4 py-2 rounded-full text-sm border transition-colors"
	if active {
		return base + " border-purple-500 bg-purple-500/20 text-white"
	}
	return base + " border-white/10 text-gray-400 hover:text-white"
}

func projectCard(p content.Project) g.Node {
	return Article(
		Class("group rounded-2xl overflow-hidden border border-white/5 bg-gray-900"),
		g.Attr("data-project-category", p.Category),
		Div(
			Class("relative h-48 overflow-hidden"),
			Img(Src(p.Image), Alt(p.Title), Class("w-full h-full object-cover group-hover:scale-105 transition-transform"), g.Attr("loading", "lazy")),
			Div(
				Class("absolute top-4 left-4 w-10 h-10 rounded-lg bg-black/60 flex items-center justify-center"),
				icon(p.Icon, "size-5 text-purple-400"),
			),
		),
		Div(
			Class("p-6"),
			g.If(p.Client != "", Div(Class("text-xs uppercase tracking-wider text-gray-500 mb-1"), g.Text(p.Client))),
			H3(Class("text-xl font-semibold text-white mb-2"), g.Text(p.Title)),
			P(Class("text-gray-400 text-sm mb-4"), g.Text(p.Description)),
			Div(
				Class("flex flex-wrap gap-2 mb-4"),
				g.Map(p.Tags, func(t string) g.Node {
					return Span(Class("px-2 py-1 rounded text-xs bg-white/5 text-gray-300"), g.Text(t))
				}),
			),
			g.If(len(p.Stats) > 0,
				Div(
					Class("grid grid-cols-3 gap-2 border-t border-white/5 pt-4 mb-4"),
					g.Map(p.Stats, func(s content.Stat) g.Node {
						return Div(
							Div(Class("text-sm font-bold text-white"), g.Text(s.Value)),
							Div(Class("text-xs text-gray-500"), g.Text(s.Label)),
						)
					}),
				),
			),
			Div(
				Class("flex gap-4 text-sm"),
				g.If(p.CaseStudyURL != "", A(Href(p.CaseStudyURL), Class("text-purple-400 hover:text-purple-300"), g.Text("Case study"))),
				g.If(p.LiveURL != "", A(Href(p.LiveURL), Class("text-blue-400 hover:text-blue-300"), g.Text("Live demo"))),
			),
		),
	)
}
