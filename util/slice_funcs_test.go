package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	require.True(t, Contains([]int{1, 2, 3}, 2))
	require.False(t, Contains([]int{1, 2, 3}, 4))
	require.False(t, Contains([]int{}, 1))
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(x int) string {
		return string(rune('a' + x - 1))
	})
	require.Equal(t, []string{"a", "b", "c"}, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4, 5}, func(x int) bool { return x%2 == 0 })
	require.Equal(t, []int{2, 4}, got)
}

func TestFilterEmptyResultIsEmptyNotNil(t *testing.T) {
	got := Filter([]int{1, 3, 5}, func(x int) bool { return x%2 == 0 })
	require.Empty(t, got)
}
