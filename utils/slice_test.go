package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupByKeepsFirstAppearanceOrder(t *testing.T) {
	keys, groups := GroupBy([]string{"b1", "a1", "b2", "c1", "a2"}, func(s string) string { return s[:1] })

	assert.Equal(t, []string{"b", "a", "c"}, keys)
	assert.Equal(t, []string{"b1", "b2"}, groups["b"])
	assert.Equal(t, []string{"a1", "a2"}, groups["a"])
	assert.Equal(t, []string{"c1"}, groups["c"])
}

func TestFind(t *testing.T) {
	items := []int{1, 2, 3}
	found := Find(items, func(i int) bool { return i == 2 })
	if assert.NotNil(t, found) {
		*found = 20
	}
	assert.Equal(t, []int{1, 20, 3}, items)
	assert.Nil(t, Find(items, func(i int) bool { return i == 9 }))
}

func TestFilterMap(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []string{"2", "4"}, Map(even, func(i int) string { return string(rune('0' + i)) }))
	assert.True(t, Contains([]string{"출근", "퇴근"}, "퇴근"))
	assert.False(t, Contains([]string{"출근", "퇴근"}, "외출"))
}
