package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/content"
)

// MsgSent is the banner shown after a successful submission.
const MsgSent = "Thank you! Your message has been sent. We'll get back to you shortly."

// ContactSection pairs the contact channels with the enquiry form.
func ContactSection(d HomeData) g.Node {
	info := d.Lib.Contact
	return Section(
		ID("contact"),
		Class("py-24 bg-gradient-to-b from-gray-900 to-black"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeader(info.Eyebrow, info.Title, info.Lead),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),
				Div(
					Div(
						Class("bg-gradient-to-br from-gray-900 to-black p-8 rounded-xl border border-gray-800 mb-8"),
						H3(Class("text-xl font-semibold text-white mb-6"), g.Text("Contact Information")),
						Div(
							Class("space-y-6"),
							g.If(info.Email != "", channel("mail", "Email Us", info.Email, "mailto:"+info.Email)),
							g.If(info.Phone != "", channel("phone", "Call Us", info.Phone, "tel:"+info.Phone)),
							g.If(info.Address != "", channel("map-pin", "Visit Us", info.Address, "")),
						),
					),
					g.If(len(info.Hours) > 0,
						Div(
							Class("bg-gradient-to-br from-gray-900 to-black p-8 rounded-xl border border-gray-800"),
							H3(Class("text-xl font-semibold text-white mb-6"), g.Text("Business Hours")),
							Ul(
								Class("space-y-3"),
								g.Map(info.Hours, func(h content.Hours) g.Node {
									return Li(
										Class("flex justify-between"),
										Span(Class("text-gray-400"), g.Text(h.Days)),
										Span(Class("text-white"), g.Text(h.Time)),
									)
								}),
							),
						),
					),
				),
				ContactForm(d.Form, d.CSRF),
			),
		),
	)
}

func channel(iconName, title, details, link string) g.Node {
	var body g.Node = P(Class("text-gray-400"), g.Text(details))
	if link != "" {
		body = A(Href(link), Class("text-gray-400 hover:text-blue-400 transition-colors"), g.Text(details))
	}
	return Div(
		Class("flex items-start"),
		Div(
			Class("flex-shrink-0 w-12 h-12 flex items-center justify-center rounded-lg bg-blue-500/10 text-blue-400 mr-4"),
			icon(iconName, "size-6"),
		),
		Div(
			H3(Class("text-lg font-medium text-white mb-1"), g.Text(title)),
			body,
		),
	)
}

const inputClass = "w-full bg-gray-800 border border-gray-700 rounded-lg px-4 py-3 text-white placeholder-gray-500 focus:outline-none focus:ring-2 focus:ring-blue-500 focus:border-transparent"

// ContactForm renders the enquiry form for state. It is returned on its own
// to script-driven submissions, which swap it in place of #contact-form.
func ContactForm(state contact.FormState, csrf string) g.Node {
	f := state.Fields
	return g.El("form",
		ID("contact-form"),
		Method("post"),
		Action("/contact/"),
		Class("bg-gradient-to-br from-gray-900 to-black p-8 rounded-xl border border-gray-800"),
		g.Attr("data-contact-form"),
		g.If(state.Submitting, g.Attr("aria-busy", "true")),
		Input(Type("hidden"), Name("_csrf"), Value(csrf)),
		H3(Class("text-xl font-semibold text-white mb-6"), g.Text("Send Us a Message")),

		g.If(state.Success,
			Div(
				Class("mb-6 rounded-lg border border-green-500/30 bg-green-500/10 px-4 py-3 text-green-400"),
				g.Attr("role", "status"),
				g.Text(MsgSent),
			),
		),
		g.If(state.Error != "",
			Div(
				Class("mb-6 rounded-lg border border-red-500/30 bg-red-500/10 px-4 py-3 text-red-400"),
				g.Attr("role", "alert"),
				g.Text(state.Error),
			),
		),

		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-6 mb-6"),
			field("name", "Your Name", Input(ID("name"), Name("name"), Type("text"), Class(inputClass),
				Placeholder("John Doe"), Value(f.Name), Required())),
			field("email", "Email Address", Input(ID("email"), Name("email"), Type("email"), Class(inputClass),
				Placeholder("john@example.com"), Value(f.Email), Required())),
		),
		Div(
			Class("mb-6"),
			field("interest", "I'm interested in", Select(
				ID("interest"), Name("interest"), Class(inputClass), Required(),
				Option(Value(""), g.Text("Select an option"), g.If(f.Interest == "", Selected())),
				g.Map(contact.Interests(), func(i contact.Interest) g.Node {
					return Option(Value(string(i)), g.Text(i.Label()), g.If(string(i) == f.Interest, Selected()))
				}),
			)),
		),
		Div(
			Class("mb-6"),
			field("message", "Message", Textarea(ID("message"), Name("message"), g.Attr("rows", "5"),
				Class(inputClass+" resize-none"), Placeholder("Tell us about your project..."), Required(),
				g.Text(f.Message))),
		),
		Button(
			Type("submit"),
			Class("w-full px-6 py-3 rounded-lg bg-gradient-to-r from-purple-600 to-blue-600 font-medium disabled:opacity-50"),
			g.If(state.Submitting, Disabled()),
			g.If(state.Submitting, g.Text("Sending...")),
			g.If(!state.Submitting, g.Text("Send Message")),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(
		g.El("label", g.Attr("for", id), Class("block text-gray-300 mb-2 text-sm"), g.Text(label)),
		control,
	)
}
