package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsFromMap(t *testing.T) {
	t.Run("sorts keys ascending", func(t *testing.T) {
		p := ParamsFromMap(map[int]any{2: "b", 1: "a", 3: "c"})
		assert.Equal(t, []int{1, 2, 3}, p.Keys())
		assert.Equal(t, Params{{1, "a"}, {2, "b"}, {3, "c"}}, p)
	})

	t.Run("keeps sparse and negative keys", func(t *testing.T) {
		p := ParamsFromMap(map[int]any{10: "x", -1: "y", 0: "z"})
		assert.Equal(t, []int{-1, 0, 10}, p.Keys())
	})

	t.Run("nil map is empty", func(t *testing.T) {
		p := ParamsFromMap(nil)
		assert.Empty(t, p)
		assert.Empty(t, p.Keys())
	})
}

func TestParamsGet(t *testing.T) {
	p := ParamsFromMap(map[int]any{0: "x", 2: 42, 7: true})

	t.Run("finds stored keys", func(t *testing.T) {
		v, ok := p.Get(0)
		assert.True(t, ok)
		assert.Equal(t, "x", v)

		v, ok = p.Get(7)
		assert.True(t, ok)
		assert.Equal(t, true, v)
	})

	t.Run("misses absent keys", func(t *testing.T) {
		_, ok := p.Get(1)
		assert.False(t, ok)

		_, ok = p.Get(9)
		assert.False(t, ok)
	})

	t.Run("misses on empty params", func(t *testing.T) {
		_, ok := Params{}.Get(0)
		assert.False(t, ok)

		_, ok = Params(nil).Get(0)
		assert.False(t, ok)
	})
}

func TestParamsMap(t *testing.T) {
	m := map[int]any{3: "c", 1: "a"}
	p := ParamsFromMap(m)

	got := p.Map()
	assert.Equal(t, m, got)

	// The returned map is a copy, not the stored state.
	got[5] = "e"
	_, ok := p.Get(5)
	assert.False(t, ok)
}
