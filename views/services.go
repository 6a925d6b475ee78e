package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// ServicesSection lists every service and expands the selected one.
func ServicesSection(d HomeData) g.Node {
	services := d.Lib.Services
	if len(services) == 0 {
		return nil
	}
	active, ok := d.Lib.Service(d.Service)
	if !ok {
		active = services[0]
	}

	return Section(
		ID("services"),
		Class("relative py-24 bg-gradient-to-b from-gray-900 to-black overflow-hidden"),
		Div(
			Class("container mx-auto px-4 relative z-10"),
			sectionHeader("OUR EXPERTISE", "Intelligent Solutions for Modern Business",
				"We combine artificial intelligence with secure blockchain infrastructure to build systems that learn, adapt and earn trust."),
			Div(
				Class("grid lg:grid-cols-3 gap-8"),
				Div(
					Class("space-y-3"),
					g.Map(services, func(s content.Service) g.Node {
						return serviceTab(d, s, s.ID == active.ID)
					}),
				),
				serviceDetail(active),
			),
		),
	)
}

func serviceTab(d HomeData, s content.Service, active bool) g.Node {
	cls := "flex items-center gap-4 p-4 rounded-xl border transition-colors "
	if active {
		cls += ColorClass("border", s.Color) + " " + ColorClass("bgLight", s.Color)
	} else {
		cls += "border-white/5 hover:bg-white/5"
	}
	return A(
		Href(homeURL(d, "service", s.ID, "services")),
		Class(cls),
		g.If(active, g.Attr("aria-current", "true")),
		Div(
			Class("flex-shrink-0 w-10 h-10 rounded-lg flex items-center justify-center "+ColorClass("bgLight", s.Color)),
			icon(s.Icon, "size-5 "+ColorClass("textLight", s.Color)),
		),
		Div(
			Div(Class("font-semibold text-white"), g.Text(s.Title)),
			Div(Class("text-sm text-gray-400"), g.Text(s.ShortDescription)),
		),
	)
}

func serviceDetail(s content.Service) g.Node {
	return Article(
		Class("lg:col-span-2 rounded-2xl border bg-gradient-to-br from-gray-900 to-black p-8 "+ColorClass("border", s.Color)),
		g.Attr("data-service", s.ID),
		Div(
			Class("inline-flex items-center justify-center w-14 h-14 rounded-xl mb-6 bg-gradient-to-br "+ColorClass("gradient", s.Color)),
			icon(s.Icon, "size-7 text-white"),
		),
		H3(Class("text-2xl font-bold text-white mb-4"), g.Text(s.Title)),
		P(Class("text-gray-400 mb-8"), g.Text(s.Description)),
		Ul(
			Class("grid sm:grid-cols-2 gap-3 mb-8"),
			g.Map(s.Features, func(f string) g.Node {
				return Li(
					Class("flex items-center gap-2 text-gray-300"),
					icon("check-circle", "size-4 "+ColorClass("text", s.Color)),
					g.Text(f),
				)
			}),
		),
		g.If(s.CaseStudy.Title != "",
			Div(
				Class("rounded-xl p-5 "+ColorClass("bgLight", s.Color)),
				Div(Class("text-xs uppercase tracking-wider text-gray-400 mb-1"), g.Text("Case study")),
				Div(Class("font-semibold text-white"), g.Text(s.CaseStudy.Title)),
				Div(Class("text-sm "+ColorClass("textLight", s.Color)), g.Text(s.CaseStudy.Result)),
			),
		),
	)
}

func sectionHeader(eyebrow, title, lead string) g.Node {
	return Div(
		Class("text-center mb-16"),
		g.If(eyebrow != "", P(Class("text-blue-400 font-medium mb-2 tracking-wider"), g.Text(eyebrow))),
		H2(Class("text-3xl md:text-4xl font-bold text-white mb-4"), g.Text(title)),
		g.If(lead != "", P(Class("text-gray-400 max-w-2xl mx-auto"), g.Text(lead))),
	)
}
