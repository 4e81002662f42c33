// Package catalog holds the fixed set of category plan templates.
package catalog

import "strings"

const (
	Relationships = "relationships"
	Family        = "family"
	Work          = "work"
	Financial     = "financial"
	Personal      = "personal"
	Social        = "social"
	Health        = "health"

	// DefaultCategory is served for any key the catalog does not know.
	DefaultCategory = Personal
)

const (
	ResourceBook  = "book"
	ResourceVideo = "video"
)

type Step struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Activities  []string `json:"activities"`
}

type Resource struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

type Template struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	EstimatedTime string     `json:"estimated_time"`
	Steps         []Step     `json:"steps"`
	Resources     []Resource `json:"resources"`
}

// Clone returns a deep copy; callers may mutate it freely.
func (t Template) Clone() Template {
	out := t
	out.Steps = make([]Step, len(t.Steps))
	for i, s := range t.Steps {
		s.Activities = append([]string(nil), s.Activities...)
		out.Steps[i] = s
	}
	out.Resources = append([]Resource(nil), t.Resources...)
	return out
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Catalog is read-only after construction.
type Catalog struct {
	templates  map[string]Template
	categories []Category
}

func New(templates map[string]Template, categories []Category) *Catalog {
	c := &Catalog{
		templates:  make(map[string]Template, len(templates)),
		categories: append([]Category(nil), categories...),
	}
	for k, t := range templates {
		c.templates[k] = t.Clone()
	}
	return c
}

// Default builds the catalog of the seven built-in templates.
func Default() *Catalog {
	return New(defaultTemplates(), defaultCategories())
}

// Resolve maps a category label to a template key, case-insensitively.
// Unknown or empty labels resolve to DefaultCategory.
func (c *Catalog) Resolve(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if _, ok := c.templates[key]; ok {
		return key
	}
	return DefaultCategory
}

// Lookup is an exact-match lookup that falls back to the personal template.
// The returned template shares slices with the catalog; use Clone before
// modifying it.
func (c *Catalog) Lookup(key string) Template {
	if t, ok := c.templates[key]; ok {
		return t
	}
	return c.templates[DefaultCategory]
}

func (c *Catalog) Has(key string) bool {
	_, ok := c.templates[key]
	return ok
}

func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

func defaultCategories() []Category {
	return []Category{
		{ID: Relationships, Name: "Relationships", Icon: "heart"},
		{ID: Family, Name: "Family Issues", Icon: "users"},
		{ID: Work, Name: "Work & Career", Icon: "briefcase"},
		{ID: Financial, Name: "Financial Stress", Icon: "dollar-sign"},
		{ID: Personal, Name: "Personal Growth", Icon: "trending-up"},
		{ID: Social, Name: "Social Pressures", Icon: "user-friends"},
		{ID: Health, Name: "Health & Lifestyle", Icon: "heart-pulse"},
	}
}
