package route

import (
	"cmp"
	"slices"
)

// Param is a single action parameter: an integer key and its value.
type Param struct {
	Key   int
	Value any
}

// Params holds the action parameters of a route, ordered by ascending key.
// Action descriptors reference these values by key, not by position, so the
// ordering only matters for deterministic iteration and serialization.
type Params []Param

// ParamsFromMap converts a key/value map into Params sorted by ascending key.
func ParamsFromMap(m map[int]any) Params {
	if len(m) == 0 {
		return nil
	}
	p := make(Params, 0, len(m))
	for k, v := range m {
		p = append(p, Param{Key: k, Value: v})
	}
	slices.SortFunc(p, func(a, b Param) int { return cmp.Compare(a.Key, b.Key) })
	return p
}

// Get returns the value stored under the given key.
func (p Params) Get(key int) (any, bool) {
	i, ok := slices.BinarySearchFunc(p, key, func(e Param, k int) int { return cmp.Compare(e.Key, k) })
	if !ok {
		return nil, false
	}
	return p[i].Value, true
}

// Keys returns the parameter keys in ascending order.
func (p Params) Keys() []int {
	keys := make([]int, len(p))
	for i, e := range p {
		keys[i] = e.Key
	}
	return keys
}

// Map returns the parameters as a key/value map.
func (p Params) Map() map[int]any {
	if len(p) == 0 {
		return nil
	}
	m := make(map[int]any, len(p))
	for _, e := range p {
		m[e.Key] = e.Value
	}
	return m
}
