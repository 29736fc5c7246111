package utils

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders items by a locale-aware comparison of their names.
// A Collator is not safe for concurrent use, so each call builds its own.
func SortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
