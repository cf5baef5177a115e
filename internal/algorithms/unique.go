package algorithms

import "strings"

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AppendUnique adds item to list unless it is blank or already present
// (compared trimmed and case-insensitively). Insertion order is kept.
func AppendUnique(list []string, item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return list
	}
	key := normalizeKey(item)
	for _, existing := range list {
		if normalizeKey(existing) == key {
			return list
		}
	}
	return append(list, item)
}

// UniqueList runs AppendUnique over items in order.
func UniqueList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = AppendUnique(out, it)
	}
	return out
}

// SplitList splits a comma separated string into a deduplicated list.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return UniqueList(strings.Split(raw, ","))
}
