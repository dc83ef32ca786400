package main

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

const CategoryAll = "all"

// FilterState is the current search input. It lives in the query string only.
type FilterState struct {
	Query    string `form:"q" json:"query"`
	Category string `form:"category" json:"category"`
}

// Active reports whether the state narrows the project list at all.
func (f FilterState) Active() bool {
	return strings.TrimSpace(f.Query) != "" || f.Category != CategoryAll
}

// Matches reports whether p is visible for the given query and category.
// An empty or whitespace-only query matches every project in the category.
func Matches(p Project, query, category string) bool {
	if category != CategoryAll && !slices.Contains(p.Category, category) {
		return false
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}

	// Caser is stateful, so one per call.
	fold := cases.Fold()
	return strings.Contains(fold.String(searchText(p)), fold.String(q))
}

// FilterProjects keeps source order. The result is never nil.
func FilterProjects(projects []Project, query, category string) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if Matches(p, query, category) {
			out = append(out, p)
		}
	}
	return out
}

func searchText(p Project) string {
	parts := make([]string, 0, 2+len(p.Stack)+len(p.Impact))
	parts = append(parts, p.Title, p.Summary)
	parts = append(parts, p.Stack...)
	parts = append(parts, p.Impact...)
	return strings.Join(parts, " ")
}

// normalizeFilter maps unknown or empty categories to "all".
func (s *Site) normalizeFilter(f FilterState) FilterState {
	f.Query = strings.TrimSpace(f.Query)
	if !s.HasCategory(f.Category) {
		f.Category = CategoryAll
	}
	return f
}
