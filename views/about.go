package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/content"
)

// AboutSection is the company story with headline numbers.
func AboutSection(a content.About) g.Node {
	return Section(
		ID("about"),
		Class("py-24 bg-gradient-to-b from-black to-gray-900"),
		Div(
			Class("container mx-auto px-4 grid lg:grid-cols-2 gap-12 items-center"),
			Div(
				g.If(a.Eyebrow != "", P(Class("text-blue-400 font-medium mb-2 tracking-wider"), g.Text(a.Eyebrow))),
				H2(Class("text-3xl md:text-4xl font-bold text-white mb-6"), g.Text(a.Title)),
				g.Map(a.Paragraphs, func(p string) g.Node {
					return P(Class("text-gray-400 mb-4"), g.Text(p))
				}),
				Div(
					Class("grid grid-cols-2 gap-6 mt-8"),
					g.Map(a.Stats, func(s content.Stat) g.Node {
						return Div(
							Div(Class("text-3xl font-bold bg-gradient-to-r from-purple-400 to-blue-500 bg-clip-text text-transparent"), g.Text(s.Value)),
							Div(Class("text-sm text-gray-400"), g.Text(s.Label)),
						)
					}),
				),
			),
			g.If(a.Image != "",
				Div(
					Class("relative rounded-2xl overflow-hidden border border-white/10"),
					Img(Src(a.Image), Alt(a.Title), Class("w-full h-full object-cover"), g.Attr("loading", "lazy")),
				),
			),
		),
	)
}

// TestimonialsSection shows one quote at a time. The prev/next controls are
// links carrying the wrapped index so the carousel works without script.
func TestimonialsSection(d HomeData) g.Node {
	items := d.Lib.Testimonials
	if len(items) == 0 {
		return nil
	}
	i := content.Wrap(d.Testimonial, len(items))
	t := items[i]
	filled, empty := Stars(t.Rating)

	return Section(
		ID("testimonials"),
		Class("py-24 bg-gray-900"),
		g.Attr("data-carousel"),
		Div(
			Class("container mx-auto px-4 max-w-4xl"),
			sectionHeader("TESTIMONIALS", "What Our Clients Say", ""),
			Figure(
				Class("rounded-2xl border border-white/10 bg-black/40 p-8 md:p-12"),
				g.Attr("data-slide", strconv.Itoa(i)),
				Div(
					Class("flex gap-1 mb-6"),
					g.Attr("aria-label", strconv.Itoa(filled)+" out of 5 stars"),
					g.Map(make([]struct{}, filled), func(struct{}) g.Node {
						return icon("star", "size-5 text-yellow-400")
					}),
					g.Map(make([]struct{}, empty), func(struct{}) g.Node {
						return icon("star", "size-5 text-gray-600")
					}),
				),
				g.El("blockquote",
					Class("text-xl text-gray-200 italic mb-8"),
					g.Text("“"+t.Quote+"”"),
				),
				FigCaption(
					Class("flex items-center gap-4"),
					g.If(t.Photo != "",
						Img(Src(t.Photo), Alt(t.Name), Class("w-14 h-14 rounded-full object-cover"), g.Attr("loading", "lazy")),
					),
					Div(
						Div(Class("font-semibold text-white"), g.Text(t.Name)),
						Div(Class("text-sm text-gray-400"), g.Text(attribution(t))),
						g.If(t.Solution != "", Div(Class("text-xs text-purple-400 mt-1"), g.Text(t.Solution))),
					),
				),
			),
			g.If(len(items) > 1,
				Div(
					Class("flex items-center justify-center gap-6 mt-8"),
					A(
						Href(homeURL(d, "t", strconv.Itoa(content.Prev(i, len(items))), "testimonials")),
						Class("p-2 rounded-full border border-white/10 hover:bg-white/5"),
						g.Attr("aria-label", "Previous testimonial"),
						g.Attr("data-prev"),
						icon("chevron-left", "size-5"),
					),
					Span(Class("text-sm text-gray-500"), g.Textf("%d / %d", i+1, len(items))),
					A(
						Href(homeURL(d, "t", strconv.Itoa(content.Next(i, len(items))), "testimonials")),
						Class("p-2 rounded-full border border-white/10 hover:bg-white/5"),
						g.Attr("aria-label", "Next testimonial"),
						g.Attr("data-next"),
						icon("chevron-right", "size-5"),
					),
				),
			),
		),
	)
}

func attribution(t content.Testimonial) string {
	switch {
	case t.Role != "" && t.Company != "":
		return t.Role + ", " + t.Company
	case t.Role != "":
		return t.Role
	default:
		return t.Company
	}
}
