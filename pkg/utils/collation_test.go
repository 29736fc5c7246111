package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByNameIsStableAndLocaleAware(t *testing.T) {
	type item struct{ name, tag string }
	items := []item{{"b", "1"}, {"A", "2"}, {"b", "3"}, {"ä", "4"}}

	SortByName(items, func(i item) string { return i.name })

	assert.Equal(t, []item{{"A", "2"}, {"ä", "4"}, {"b", "1"}, {"b", "3"}}, items)
}
