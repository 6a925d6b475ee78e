package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed data/site.yaml data/posts/*.md
var embedded embed.FS

// Default returns the content shipped with the binary.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

const dateLayout = "2006-01-02"

type postMatter struct {
	Title      string `yaml:"title"`
	Slug       string `yaml:"slug"`
	Excerpt    string `yaml:"excerpt"`
	Date       string `yaml:"date"`
	Author     string `yaml:"author"`
	AuthorRole string `yaml:"author_role"`
	Category   string `yaml:"category"`
	Image      string `yaml:"image"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Load reads site.yaml and posts/*.md from fsys and validates the result.
func Load(fsys fs.FS) (*Library, error) {
	raw, err := fs.ReadFile(fsys, "site.yaml")
	if err != nil {
		return nil, fmt.Errorf("read site.yaml: %w", err)
	}
	var lib Library
	if err := yaml.Unmarshal(raw, &lib); err != nil {
		return nil, fmt.Errorf("parse site.yaml: %w", err)
	}

	files, err := fs.Glob(fsys, "posts/*.md")
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for _, name := range files {
		post, err := loadPost(fsys, name)
		if err != nil {
			return nil, err
		}
		lib.Posts = append(lib.Posts, post)
	}
	sort.SliceStable(lib.Posts, func(i, j int) bool {
		return lib.Posts[i].Date.After(lib.Posts[j].Date)
	})

	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return &lib, nil
}

func loadPost(fsys fs.FS, name string) (BlogPost, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return BlogPost{}, fmt.Errorf("read %s: %w", name, err)
	}

	var fm postMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return BlogPost{}, fmt.Errorf("parse front matter of %s: %w", name, err)
	}

	var html bytes.Buffer
	if err := markdown.Convert(body, &html); err != nil {
		return BlogPost{}, fmt.Errorf("render %s: %w", name, err)
	}

	title := fm.Title
	if title == "" {
		base := strings.TrimSuffix(path.Base(name), path.Ext(name))
		base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
		title = cases.Title(language.English).String(base)
	}
	slug := fm.Slug
	if slug == "" {
		slug = Slugify(title)
	}

	var date time.Time
	if fm.Date != "" {
		date, err = time.Parse(dateLayout, fm.Date)
		if err != nil {
			return BlogPost{}, fmt.Errorf("%s: invalid date %q: %w", name, fm.Date, err)
		}
	}

	return BlogPost{
		Slug:       slug,
		Title:      title,
		Excerpt:    fm.Excerpt,
		Date:       date,
		Author:     fm.Author,
		AuthorRole: fm.AuthorRole,
		Category:   fm.Category,
		Image:      fm.Image,
		Body:       html.String(),
	}, nil
}

// Slugify lowercases s and collapses every run of non-alphanumerics into a
// single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
