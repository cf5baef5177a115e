package algorithms

import "strings"

// Category is an exact-match selection. An empty Value means "any".
type Category[T any] struct {
	Value string
	Field func(T) string
	// Match overrides exact equality (used for city containment).
	Match func(item T, value string) bool
}

// Query describes one list view's filter state.
type Query[T any] struct {
	Text       string
	TextFields []func(T) string
	Categories []Category[T]
}

// Filter returns the items matching q. The input slice is never modified.
// Empty text and no active categories return items unchanged. The result is
// never nil.
func Filter[T any](items []T, q Query[T]) []T {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	active := make([]Category[T], 0, len(q.Categories))
	for _, c := range q.Categories {
		if strings.TrimSpace(c.Value) != "" {
			active = append(active, c)
		}
	}

	if text == "" && len(active) == 0 {
		if items == nil {
			return []T{}
		}
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchesText(item, text, q.TextFields) {
			continue
		}
		if !matchesCategories(item, active) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesText[T any](item T, text string, fields []func(T) string) bool {
	if text == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f(item)), text) {
			return true
		}
	}
	return false
}

func matchesCategories[T any](item T, cats []Category[T]) bool {
	for _, c := range cats {
		value := strings.TrimSpace(c.Value)
		if c.Match != nil {
			if !c.Match(item, value) {
				return false
			}
			continue
		}
		if c.Field == nil || c.Field(item) != value {
			return false
		}
	}
	return true
}

// CityMatches reports whether any of the given fields contains the city name, case-insensitively.
func CityMatches(city string, fields ...string) bool {
	city = strings.ToLower(strings.TrimSpace(city))
	if city == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), city) {
			return true
		}
	}
	return false
}
