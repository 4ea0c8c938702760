package sort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var variants = []struct {
	name string
	fn   func(Sorter)
}{
	{"bubble", Bubble},
	{"selection", Selection},
	{"insertion", Insertion},
}

func TestSortDemoArray(t *testing.T) {
	in := []int{1, 5, 99, 14, 56, 4, 78, 100, 45, 87, 1}
	want := IntArray{1, 1, 4, 5, 14, 45, 56, 78, 87, 99, 100}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			arr := append(IntArray(nil), in...)
			v.fn(arr)
			assert.Equal(t, want, arr)
		})
	}
}

func TestSortEdgeCases(t *testing.T) {
	cases := []struct {
		name string
		in   IntArray
		want IntArray
	}{
		{"empty", IntArray{}, IntArray{}},
		{"single", IntArray{7}, IntArray{7}},
		{"duplicates", IntArray{2, 2, 1}, IntArray{1, 2, 2}},
		{"sorted", IntArray{1, 2, 3, 4, 5}, IntArray{1, 2, 3, 4, 5}},
		{"reversed", IntArray{5, 4, 3, 2, 1}, IntArray{1, 2, 3, 4, 5}},
		{"allEqual", IntArray{3, 3, 3, 3}, IntArray{3, 3, 3, 3}},
	}
	for _, v := range variants {
		for _, c := range cases {
			t.Run(v.name+"/"+c.name, func(t *testing.T) {
				arr := append(IntArray{}, c.in...)
				v.fn(arr)
				assert.Equal(t, c.want, arr)
			})
		}
	}
}

func TestSortPreservesElements(t *testing.T) {
	in := IntArray{8, 5, 4, 7, 2, 6, 1, 2, 15}
	counts := func(a IntArray) map[int]int {
		m := make(map[int]int)
		for _, v := range a {
			m[v]++
		}
		return m
	}
	want := counts(in)
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			arr := append(IntArray(nil), in...)
			v.fn(arr)
			assert.True(t, IsSorted(arr))
			assert.Equal(t, want, counts(arr))
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			arr := IntArray{9, 1, 8, 2, 8, 3}
			v.fn(arr)
			once := append(IntArray(nil), arr...)
			v.fn(arr)
			assert.Equal(t, once, arr)
		})
	}
}

// countingSorter records how often the wrapped sequence is compared and
// swapped.
type countingSorter struct {
	Sorter
	less  int
	swaps int
}

func (c *countingSorter) Less(i, j int) bool {
	c.less++
	return c.Sorter.Less(i, j)
}

func (c *countingSorter) Swap(i, j int) {
	c.swaps++
	c.Sorter.Swap(i, j)
}

func TestSelectionSwapBound(t *testing.T) {
	inputs := []IntArray{
		{1, 5, 99, 14, 56, 4, 78, 100, 45, 87, 1},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 4, 5},
		{3, 3, 3},
	}
	for _, in := range inputs {
		arr := append(IntArray(nil), in...)
		c := &countingSorter{Sorter: arr}
		Selection(c)
		n := len(in)
		require.True(t, IsSorted(arr))
		assert.LessOrEqual(t, c.swaps, n-1)
		assert.Equal(t, n*(n-1)/2, c.less)
	}
}

func TestBubbleEarlyExit(t *testing.T) {
	arr := IntArray{1, 2, 3, 4, 5, 6, 7, 8}
	c := &countingSorter{Sorter: arr}
	Bubble(c)
	// a swap-free first pass proves the array sorted: one pass, no swaps
	assert.Equal(t, len(arr)-1, c.less)
	assert.Zero(t, c.swaps)
}

type pair struct {
	key int
	seq int
}

type pairArray []pair

func (p pairArray) Len() int { return len(p) }

func (p pairArray) Less(i, j int) bool { return p[i].key < p[j].key }

func (p pairArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func TestInsertionStable(t *testing.T) {
	arr := pairArray{
		{key: 2, seq: 0},
		{key: 1, seq: 1},
		{key: 2, seq: 2},
		{key: 1, seq: 3},
		{key: 2, seq: 4},
	}
	Insertion(arr)
	require.True(t, IsSorted(arr))
	last := make(map[int]int)
	for _, e := range arr {
		if prev, ok := last[e.key]; ok {
			assert.Less(t, prev, e.seq, "equal keys reordered")
		}
		last[e.key] = e.seq
	}
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(IntArray{}))
	assert.True(t, IsSorted(IntArray{42}))
	assert.True(t, IsSorted(IntArray{1, 1, 2}))
	assert.False(t, IsSorted(IntArray{2, 1}))
}

func TestIntArrayString(t *testing.T) {
	assert.Equal(t, "1 5 99", IntArray{1, 5, 99}.String())
	assert.Equal(t, "7", IntArray{7}.String())
	assert.Equal(t, "", IntArray{}.String())
	assert.Equal(t, "-3 0", IntArray{-3, 0}.String())
}
