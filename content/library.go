package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("content: not found")

// Validate checks identifiers, references and ranges across the library.
func (l *Library) Validate() error {
	var errs []error

	seen := make(map[string]struct{})
	for i, s := range l.Services {
		if s.ID == "" || s.Title == "" {
			errs = append(errs, fmt.Errorf("services[%d]: id and title are required", i))
			continue
		}
		if _, dup := seen[s.ID]; dup {
			errs = append(errs, fmt.Errorf("services[%d]: duplicate id %q", i, s.ID))
		}
		seen[s.ID] = struct{}{}
	}

	categories := make(map[string]struct{})
	for i, c := range l.Categories {
		if c.ID == "" || c.Label == "" {
			errs = append(errs, fmt.Errorf("categories[%d]: id and label are required", i))
			continue
		}
		if _, dup := categories[c.ID]; dup {
			errs = append(errs, fmt.Errorf("categories[%d]: duplicate id %q", i, c.ID))
		}
		categories[c.ID] = struct{}{}
	}

	seen = make(map[string]struct{})
	for i, p := range l.Projects {
		if p.ID == "" || p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: id and title are required", i))
			continue
		}
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = struct{}{}
		if _, ok := categories[p.Category]; !ok || p.Category == AllCategory {
			errs = append(errs, fmt.Errorf("projects[%d]: unknown category %q", i, p.Category))
		}
	}

	for i, t := range l.Testimonials {
		if t.Name == "" || t.Quote == "" {
			errs = append(errs, fmt.Errorf("testimonials[%d]: name and quote are required", i))
		}
		if t.Rating < 0 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonials[%d]: rating %d outside 0-5", i, t.Rating))
		}
	}

	seen = make(map[string]struct{})
	for i, p := range l.Posts {
		if p.Slug == "" || p.Title == "" {
			errs = append(errs, fmt.Errorf("posts[%d]: slug and title are required", i))
			continue
		}
		if _, dup := seen[p.Slug]; dup {
			errs = append(errs, fmt.Errorf("posts[%d]: duplicate slug %q", i, p.Slug))
		}
		seen[p.Slug] = struct{}{}
	}

	return errors.Join(errs...)
}

// FilterCategories returns the categories with the "all" option first.
func (l *Library) FilterCategories() []Category {
	out := make([]Category, 0, len(l.Categories)+1)
	out = append(out, Category{ID: AllCategory, Label: "All Projects"})
	for _, c := range l.Categories {
		if c.ID != AllCategory {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeCategory maps an arbitrary filter value to a known category id,
// falling back to "all".
func (l *Library) NormalizeCategory(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, c := range l.Categories {
		if c.ID == id {
			return id
		}
	}
	return AllCategory
}

// ProjectsByCategory returns the projects tagged with category id, or every
// project for "" and "all".
func (l *Library) ProjectsByCategory(id string) []Project {
	if id == "" || id == AllCategory {
		return l.Projects
	}
	var out []Project
	for _, p := range l.Projects {
		if p.Category == id {
			out = append(out, p)
		}
	}
	return out
}

// NextCategory returns the filter after id, wrapping to "all".
func (l *Library) NextCategory(id string) string {
	cats := l.FilterCategories()
	return cats[Next(categoryIndex(cats, id), len(cats))].ID
}

// PrevCategory returns the filter before id, wrapping to the last category.
func (l *Library) PrevCategory(id string) string {
	cats := l.FilterCategories()
	return cats[Prev(categoryIndex(cats, id), len(cats))].ID
}

func categoryIndex(cats []Category, id string) int {
	for i, c := range cats {
		if c.ID == id {
			return i
		}
	}
	return 0
}

// Post returns the post with the given slug.
func (l *Library) Post(slug string) (BlogPost, error) {
	for _, p := range l.Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// Service returns the service with the given id.
func (l *Library) Service(id string) (Service, bool) {
	for _, s := range l.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
