package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/portfolio.yaml
var portfolioYAML []byte

type Profile struct {
	Name       string `yaml:"name" json:"name"`
	Tagline    string `yaml:"tagline" json:"tagline"`
	University string `yaml:"university" json:"university"`
	Location   string `yaml:"location" json:"location"`
	Graduation string `yaml:"graduation" json:"graduation"`
	WorkAuth   string `yaml:"work_auth" json:"work_auth"`
	Summary    string `yaml:"summary" json:"summary"`
	About      string `yaml:"about" json:"about"`
}

// FirstName is used for the header brand.
func (p Profile) FirstName() string {
	first, _, _ := strings.Cut(p.Name, " ")
	return first
}

type Links struct {
	Email    string `yaml:"email" json:"email"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	Resume   string `yaml:"resume" json:"resume"`
}

type SkillGroup struct {
	Key        string   `yaml:"key" json:"key"`
	Title      string   `yaml:"title" json:"title"`
	ShortTitle string   `yaml:"short_title" json:"short_title,omitempty"`
	HeroLimit  int      `yaml:"hero_limit" json:"-"`
	Featured   bool     `yaml:"featured" json:"-"`
	Items      []string `yaml:"items" json:"items"`
}

// HeroItems returns the items shown on the hero card. A zero limit shows all of them.
func (g SkillGroup) HeroItems() []string {
	if g.HeroLimit <= 0 || g.HeroLimit >= len(g.Items) {
		return g.Items
	}
	return g.Items[:g.HeroLimit]
}

type Category struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

type LinkKind string

const (
	LinkCode        LinkKind = "code"
	LinkDemo        LinkKind = "demo"
	LinkDeck        LinkKind = "deck"
	LinkPublication LinkKind = "publication"
	LinkSocial      LinkKind = "social"
)

// linkKinds is also the render order.
var linkKinds = []LinkKind{LinkCode, LinkDemo, LinkDeck, LinkPublication, LinkSocial}

func (k LinkKind) Label() string {
	switch k {
	case LinkCode:
		return "Code"
	case LinkDemo:
		return "Demo"
	case LinkDeck:
		return "Deck"
	case LinkPublication:
		return "Publication"
	case LinkSocial:
		return "Social"
	}
	return string(k)
}

// Project is one portfolio entry. Projects are decoded once at startup and never mutated.
type Project struct {
	Title    string              `yaml:"title" json:"title"`
	Category []string            `yaml:"category" json:"category"`
	Summary  string              `yaml:"summary" json:"summary"`
	Stack    []string            `yaml:"stack" json:"stack"`
	Impact   []string            `yaml:"impact" json:"impact,omitempty"`
	Links    map[LinkKind]string `yaml:"links" json:"links,omitempty"`
}

type ProjectLink struct {
	Kind  LinkKind
	Label string
	URL   string
}

// VisibleLinks returns the project's links in display order, skipping "#" placeholders.
func (p Project) VisibleLinks() []ProjectLink {
	var out []ProjectLink
	for _, kind := range linkKinds {
		url := strings.TrimSpace(p.Links[kind])
		if url == "" || url == "#" {
			continue
		}
		out = append(out, ProjectLink{Kind: kind, Label: kind.Label(), URL: url})
	}
	return out
}

// Entry is a highlight or education item.
type Entry struct {
	Title        string   `yaml:"title"`
	Organization string   `yaml:"organization"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date"`
	LogoPath     string   `yaml:"logo_path"`
	BulletPoints []string `yaml:"bullet_points"`
}

type Site struct {
	Profile    Profile      `yaml:"profile"`
	Links      Links        `yaml:"links"`
	Skills     []SkillGroup `yaml:"skills"`
	Categories []Category   `yaml:"categories"`
	Projects   []Project    `yaml:"projects"`
	Highlights []Entry      `yaml:"highlights"`
	Education  []Entry      `yaml:"education"`
}

// LoadSite decodes and validates the portfolio content document.
func LoadSite(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	site := &Site{}
	if err := dec.Decode(site); err != nil {
		return nil, fmt.Errorf("parse content yaml: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return site, nil
}

func (s *Site) validate() error {
	if s.Profile.Name == "" {
		return errors.New("profile name is required")
	}
	if len(s.Categories) == 0 || s.Categories[0].Key != CategoryAll {
		return fmt.Errorf("first category must be %q", CategoryAll)
	}

	seen := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		if c.Key == "" {
			return errors.New("category key is required")
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate category %q", c.Key)
		}
		seen[c.Key] = true
	}

	titles := make(map[string]bool, len(s.Projects))
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d: title is required", i)
		}
		if titles[p.Title] {
			return fmt.Errorf("duplicate project title %q", p.Title)
		}
		titles[p.Title] = true

		for _, c := range p.Category {
			if c == CategoryAll || !seen[c] {
				return fmt.Errorf("project %q: unknown category %q", p.Title, c)
			}
		}
		for kind := range p.Links {
			if !slices.Contains(linkKinds, kind) {
				return fmt.Errorf("project %q: unknown link kind %q", p.Title, kind)
			}
		}
	}
	return nil
}

// HasCategory reports whether key is one of the site's fixed categories.
func (s *Site) HasCategory(key string) bool {
	return slices.ContainsFunc(s.Categories, func(c Category) bool { return c.Key == key })
}

// FeaturedSkills returns the groups shown on the hero card.
func (s *Site) FeaturedSkills() []SkillGroup {
	var out []SkillGroup
	for _, g := range s.Skills {
		if g.Featured {
			out = append(out, g)
		}
	}
	return out
}
