package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{3, 5, 5}, 5), "first match wins")
	require.Equal(t, -1, FindIndex([]int{3, 5}, 4))
	require.Equal(t, -1, FindIndex([]string{}, "a"))
	require.True(t, Contains([]string{"a", "b"}, "b"))
	require.False(t, Contains[int](nil, 0))
}
