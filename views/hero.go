package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// HeroSection is the top banner with the particle canvas, headline, stats
// and the rotating capability tabs.
func HeroSection(h content.Hero) g.Node {
	return Section(
		ID("home"),
		Class("relative min-h-screen flex items-center overflow-hidden pt-16"),
		g.Attr("aria-label", "Hero section"),
		g.El("canvas",
			Class("absolute inset-0 w-full h-full"),
			g.Attr("data-particles", strconv.Itoa(h.Effect.Particles)),
			g.Attr("data-seed", strconv.FormatUint(h.Effect.Seed, 10)),
			g.Attr("data-link-distance", strconv.FormatFloat(h.Effect.LinkDist, 'f', -1, 64)),
			g.Attr("aria-hidden", "true"),
		),
		Div(Class("absolute inset-0 bg-gradient-to-b from-black/80 via-black/60 to-black")),
		Div(
			Class("container mx-auto px-4 relative z-10 grid lg:grid-cols-2 gap-12 items-center"),
			Div(
				g.If(h.Eyebrow != "",
					Div(
						Class("inline-flex items-center px-4 py-1.5 mb-6 rounded-full border border-purple-500/20 bg-purple-500/5"),
						Span(Class("text-sm font-medium tracking-wide text-purple-400"), g.Text(h.Eyebrow)),
					),
				),
				H1(
					Class("text-4xl md:text-6xl font-bold leading-tight mb-6"),
					g.Text(h.Title+" "),
					Span(Class("bg-gradient-to-r from-purple-400 to-blue-500 bg-clip-text text-transparent"), g.Text(h.Highlight)),
				),
				P(Class("text-lg text-gray-400 mb-8 max-w-xl"), g.Text(h.Lead)),
				Div(
					Class("flex flex-wrap gap-4 mb-10"),
					g.If(h.Primary.Name != "",
						A(
							Href(h.Primary.Href),
							Class("inline-flex items-center px-6 py-3 rounded-lg bg-gradient-to-r from-purple-600 to-blue-600 font-medium"),
							g.Attr("aria-label", h.Primary.Name),
							g.Text(h.Primary.Name),
							icon("arrow-right", "ml-2 size-4"),
						),
					),
					g.If(h.Secondary.Name != "",
						A(
							Href(h.Secondary.Href),
							Class("inline-flex items-center px-6 py-3 rounded-lg border border-white/10 bg-white/5 font-medium"),
							g.Attr("aria-label", h.Secondary.Name),
							g.Text(h.Secondary.Name),
						),
					),
				),
				Div(
					Class("grid grid-cols-3 gap-4"),
					g.Attr("role", "list"),
					g.Attr("aria-label", "Key statistics"),
					g.Map(h.Stats, statCard),
				),
			),
			heroTabs(h.Tabs),
		),
	)
}

func statCard(s content.Stat) g.Node {
	return Div(
		Class("rounded-xl border border-white/5 bg-white/5 p-4"),
		g.Attr("role", "listitem"),
		Div(Class("text-2xl font-bold text-white"), g.Text(s.Value)),
		Div(Class("text-sm text-gray-400"), g.Text(s.Label)),
	)
}

// heroTabs renders every tab; the first is visible and site.js rotates
// them every four seconds.
func heroTabs(tabs []content.HeroTab) g.Node {
	if len(tabs) == 0 {
		return nil
	}
	return Div(
		Class("hidden lg:block rounded-2xl border border-white/10 bg-gradient-to-br from-gray-900 to-black p-6"),
		g.Attr("data-tabs"),
		g.Attr("data-interval", "4000"),
		Div(
			Class("flex gap-2 mb-6"),
			g.Attr("role", "tablist"),
			g.Map(indexed(tabs), func(t indexedTab) g.Node {
				return Button(
					Type("button"),
					g.Attr("role", "tab"),
					g.Attr("data-tab", strconv.Itoa(t.i)),
					g.Attr("aria-selected", strconv.FormatBool(t.i == 0)),
					Class(tabClass(t.i == 0)),
					g.Text(t.tab.Title),
				)
			}),
		),
		g.Map(indexed(tabs), func(t indexedTab) g.Node {
			return Div(
				g.Attr("role", "tabpanel"),
				g.Attr("data-panel", strconv.Itoa(t.i)),
				g.If(t.i != 0, g.Attr("hidden")),
				Class("flex items-start gap-4"),
				Div(
					Class("flex-shrink-0 w-10 h-10 rounded-lg bg-blue-500/10 flex items-center justify-center"),
					icon(t.tab.Icon, "text-blue-400 size-5"),
				),
				Div(
					H3(Class("text-lg font-semibold text-white mb-1"), g.Text(t.tab.Title)),
					P(Class("text-gray-400 text-sm"), g.Text(t.tab.Description)),
				),
			)
		}),
	)
}

type indexedTab struct {
	i   int
	tab content.HeroTab
}

func indexed(tabs []content.HeroTab) []indexedTab {
	out := make([]indexedTab, len(tabs))
	for i, t := range tabs {
		out[i] = indexedTab{i, t}
	}
	return out
}

func tabClass(active bool) string {
	base := "px-3 py-1.5 rounded-lg text-sm transition-colors"
	if active {
		return base + " bg-blue-500/20 text-white"
	}
	return base + " text-gray-400 hover:text-white"
}
