// Package content loads the portfolio text: profile, about, experience,
// projects, skills and contact links.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

// Experience categories. The carousel auto-advances through Leadership.
const (
	CategoryTech        = "Tech"
	CategoryEngineering = "Engineering"
	CategoryLeadership  = "Leadership"
)

// Categories returns the experience categories in display order.
func Categories() []string {
	return []string{CategoryTech, CategoryEngineering, CategoryLeadership}
}

// Content is the whole portfolio document.
type Content struct {
	Profile    Profile    `yaml:"profile"`
	About      About      `yaml:"about"`
	Experience Experience `yaml:"experience"`
	Projects   Projects   `yaml:"projects"`
	Skills     Skills     `yaml:"skills"`
	Links      []Link     `yaml:"links"`
}

// Profile is the hero banner.
type Profile struct {
	Name     string   `yaml:"name"`
	Greeting string   `yaml:"greeting"`
	Roles    []string `yaml:"roles"`
	Avatar   string   `yaml:"avatar"`
	CTA      string   `yaml:"cta"`
}

// About is the about section.
type About struct {
	Heading string `yaml:"heading"`
	Text    string `yaml:"text"`
}

// Experience is the experience section.
type Experience struct {
	Subtitle string `yaml:"subtitle"`
	Items    []Job  `yaml:"items"`
}

// Job is one experience card.
type Job struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Location     string   `yaml:"location"`
	Duration     string   `yaml:"duration"`
	Type         string   `yaml:"type"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
}

// Projects is the projects section.
type Projects struct {
	Subtitle string    `yaml:"subtitle"`
	Items    []Project `yaml:"items"`
}

// Project is one project card.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Source      string   `yaml:"source"`
	Live        string   `yaml:"live"`
	Featured    bool     `yaml:"featured"`
}

// Skills is the skills section.
type Skills struct {
	Subtitle   string          `yaml:"subtitle"`
	Categories []SkillCategory `yaml:"categories"`
}

// SkillCategory groups skills under a title.
type SkillCategory struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

// Skill is a named proficiency from 0 to 100.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Link is a social or contact link.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// External reports whether the link leaves the page (http or https).
func (l Link) External() bool {
	return strings.HasPrefix(l.Href, "http://") || strings.HasPrefix(l.Href, "https://")
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("content: invalid document")

// Default returns the embedded sample document.
func Default() *Content {
	c, err := Parse(defaultDocument)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default: %v", err))
	}
	return c
}

// Load reads and validates the document at path. An empty path returns
// the embedded default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML document, rejecting unknown fields, and validates
// it.
func Parse(data []byte) (*Content, error) {
	var c Content
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks required fields, categories, levels and that project
// titles are unique.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return fmt.Errorf("%w: profile.name is required", ErrInvalid)
	}
	for i, j := range c.Experience.Items {
		if j.Title == "" {
			return fmt.Errorf("%w: experience.items[%d].title is required", ErrInvalid, i)
		}
		if !slices.Contains(Categories(), j.Category) {
			return fmt.Errorf("%w: experience.items[%d].category %q (want one of %s)",
				ErrInvalid, i, j.Category, strings.Join(Categories(), ", "))
		}
	}
	seen := make(map[string]bool, len(c.Projects.Items))
	for i, p := range c.Projects.Items {
		if p.Title == "" {
			return fmt.Errorf("%w: projects.items[%d].title is required", ErrInvalid, i)
		}
		key := strings.ToLower(p.Title)
		if seen[key] {
			return fmt.Errorf("%w: duplicate project %q", ErrInvalid, p.Title)
		}
		seen[key] = true
	}
	for i, cat := range c.Skills.Categories {
		for k, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("%w: skills.categories[%d].skills[%d] level %d out of range 0-100",
					ErrInvalid, i, k, s.Level)
			}
		}
	}
	for i, l := range c.Links {
		if l.Label == "" || l.Href == "" {
			return fmt.Errorf("%w: links[%d] needs label and href", ErrInvalid, i)
		}
	}
	return nil
}

// JobCategory returns a job's category, for carousel filtering.
func JobCategory(j Job) string { return j.Category }

// ProjectFilter selects which projects are listed.
type ProjectFilter int

const (
	FilterAll ProjectFilter = iota
	FilterFeatured
	FilterOther
)

func (f ProjectFilter) String() string {
	switch f {
	case FilterFeatured:
		return "featured"
	case FilterOther:
		return "other"
	default:
		return "all"
	}
}

// Filters returns the project filters in display order.
func Filters() []ProjectFilter {
	return []ProjectFilter{FilterAll, FilterFeatured, FilterOther}
}

// Next cycles all, featured, other.
func (f ProjectFilter) Next() ProjectFilter {
	return (f + 1) % 3
}

// Filter returns the projects matching f.
func (p Projects) Filter(f ProjectFilter) []Project {
	if f == FilterAll {
		return p.Items
	}
	var out []Project
	for _, it := range p.Items {
		if it.Featured == (f == FilterFeatured) {
			out = append(out, it)
		}
	}
	return out
}
