package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangleKey(t *testing.T) {
	expected := TriangleKey{1, 4, 7}
	permutations := []Triangle{
		{1, 4, 7},
		{1, 7, 4},
		{4, 1, 7},
		{4, 7, 1},
		{7, 1, 4},
		{7, 4, 1},
	}
	for _, tri := range permutations {
		assert.Equal(t, expected, tri.Key(), "key of %s", tri)
	}
}

func TestTriangleEdges(t *testing.T) {
	tri := Triangle{3, 5, 9}
	assert.Equal(t, [3]Edge{{3, 5}, {5, 9}, {9, 3}}, tri.Edges())
	assert.True(t, tri.Has(9))
	assert.False(t, tri.Has(4))
}

func TestTriangleDistinct(t *testing.T) {
	assert.True(t, Triangle{0, 1, 2}.Distinct())
	assert.False(t, Triangle{0, 1, 0}.Distinct())
	assert.False(t, Triangle{2, 2, 1}.Distinct())
	assert.False(t, Triangle{1, 2, 2}.Distinct())
}

func TestEdgeNormalized(t *testing.T) {
	assert.Equal(t, Edge{2, 8}, Edge{8, 2}.Normalized())
	assert.Equal(t, Edge{2, 8}, Edge{2, 8}.Normalized())
}

func TestTriangleListSet(t *testing.T) {
	list := TriangleList{{0, 1, 2}, {2, 1, 0}, {1, 2, 3}}
	set := list.Set()
	assert.Len(t, set, 2)
	assert.Contains(t, set, TriangleKey{0, 1, 2})
	assert.Contains(t, set, TriangleKey{1, 2, 3})

	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}}, list.Vertices())
}

func TestPointIsFinite(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	assert.True(t, Point{0, 0}.IsFinite())
	assert.True(t, Point{-3.5, math.MaxFloat32}.IsFinite())
	assert.False(t, Point{nan, 0}.IsFinite())
	assert.False(t, Point{0, nan}.IsFinite())
	assert.False(t, Point{-inf, 1}.IsFinite())
	assert.False(t, Point{1, inf}.IsFinite())
}
