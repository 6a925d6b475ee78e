// Package content holds the authored records rendered by the landing page:
// services, portfolio projects, testimonials, blog posts and the copy for
// each page section. Records are loaded from YAML and Markdown and are
// immutable once loaded.
package content

import "time"

// AllCategory is the pseudo-category that disables the portfolio filter.
const AllCategory = "all"

// Library is the complete, validated content set for one page render.
type Library struct {
	Site         Site          `yaml:"site"`
	Nav          []NavLink     `yaml:"nav"`
	Hero         Hero          `yaml:"hero"`
	Services     []Service     `yaml:"services"`
	Categories   []Category    `yaml:"categories"`
	Projects     []Project     `yaml:"projects"`
	About        About         `yaml:"about"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Contact      ContactInfo   `yaml:"contact"`
	Footer       Footer        `yaml:"footer"`

	// Posts come from posts/*.md rather than site.yaml.
	Posts []BlogPost `yaml:"-"`
}

// Site carries brand copy shared by the navbar and footer.
type Site struct {
	Brand       string `yaml:"brand"`
	BrandAccent string `yaml:"brand_accent"`
	CTA         string `yaml:"cta"`
	CTAHref     string `yaml:"cta_href"`
}

// NavLink is an in-page anchor or external link.
type NavLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// Stat is a label/value pair shown as a headline number.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// HeroTab is one of the capability tabs on the hero card.
type HeroTab struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// Hero is the top banner.
type Hero struct {
	Eyebrow   string    `yaml:"eyebrow"`
	Title     string    `yaml:"title"`
	Highlight string    `yaml:"highlight"`
	Lead      string    `yaml:"lead"`
	Primary   NavLink   `yaml:"primary"`
	Secondary NavLink   `yaml:"secondary"`
	Stats     []Stat    `yaml:"stats"`
	Tabs      []HeroTab `yaml:"tabs"`
	Effect    Effect    `yaml:"effect"`
}

// Effect configures the decorative particle field behind the hero.
type Effect struct {
	Particles int     `yaml:"particles"`
	Seed      uint64  `yaml:"seed"`
	LinkDist  float64 `yaml:"link_distance"`
}

// CaseStudy summarises one engagement for a service.
type CaseStudy struct {
	Title  string `yaml:"title"`
	Result string `yaml:"result"`
}

// Service is one offering in the services grid.
type Service struct {
	ID               string    `yaml:"id"`
	Title            string    `yaml:"title"`
	ShortDescription string    `yaml:"short_description"`
	Description      string    `yaml:"description"`
	Icon             string    `yaml:"icon"`
	Color            string    `yaml:"color"`
	Features         []string  `yaml:"features"`
	CaseStudy        CaseStudy `yaml:"case_study"`
}

// Category is a portfolio filter option.
type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Project is a portfolio entry.
type Project struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Category     string   `yaml:"category"`
	Tags         []string `yaml:"tags"`
	CaseStudyURL string   `yaml:"case_study_url"`
	LiveURL      string   `yaml:"live_url"`
	Client       string   `yaml:"client"`
	Icon         string   `yaml:"icon"`
	Stats        []Stat   `yaml:"stats"`
}

// About is the company section.
type About struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
	Image      string   `yaml:"image"`
	Stats      []Stat   `yaml:"stats"`
}

// Testimonial is a client quote. Rating is 0-5 and only drives star icons.
type Testimonial struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Company  string `yaml:"company"`
	Quote    string `yaml:"quote"`
	Photo    string `yaml:"photo"`
	Rating   int    `yaml:"rating"`
	Solution string `yaml:"solution"`
}

// BlogPost is an article preview with a rendered body.
type BlogPost struct {
	Slug       string
	Title      string
	Excerpt    string
	Date       time.Time
	Author     string
	AuthorRole string
	Category   string
	Image      string
	Body       string // rendered HTML
}

// Link returns the post's canonical path.
func (p BlogPost) Link() string {
	return "/blog/" + p.Slug + "/"
}

// Hours is one row of the business hours table.
type Hours struct {
	Days string `yaml:"days"`
	Time string `yaml:"time"`
}

// ContactInfo lists the non-form contact channels.
type ContactInfo struct {
	Eyebrow string  `yaml:"eyebrow"`
	Title   string  `yaml:"title"`
	Lead    string  `yaml:"lead"`
	Email   string  `yaml:"email"`
	Phone   string  `yaml:"phone"`
	Address string  `yaml:"address"`
	Hours   []Hours `yaml:"hours"`
}

// FooterColumn is a titled list of links.
type FooterColumn struct {
	Title string    `yaml:"title"`
	Links []NavLink `yaml:"links"`
}

// Footer is the page footer.
type Footer struct {
	Tagline string         `yaml:"tagline"`
	Socials []NavLink      `yaml:"socials"`
	Columns []FooterColumn `yaml:"columns"`
}
