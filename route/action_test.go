package route

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		target   string
		method   string
		keys     []int
		parseErr bool
	}{
		{name: "target and method", in: "pages::Show", target: "pages", method: "Show"},
		{name: "single key", in: "pages::Show/0", target: "pages", method: "Show", keys: []int{0}},
		{name: "reordering keys", in: "pages::Compare/2/0/1", target: "pages", method: "Compare", keys: []int{2, 0, 1}},
		{name: "repeated keys", in: "pages::Pair/0/0", target: "pages", method: "Pair", keys: []int{0, 0}},
		{name: "bare target defers method", in: "pages", target: "pages", method: ""},
		{name: "leading slash trimmed", in: "/pages::Show", target: "pages", method: "Show"},
		{name: "leading backslashes trimmed", in: `\\app\pages::Show`, target: `app\pages`, method: "Show"},
		{name: "negative key", in: "pages::Show/-1", target: "pages", method: "Show", keys: []int{-1}},
		{name: "empty descriptor", in: "", parseErr: true},
		{name: "separators only", in: `/\`, parseErr: true},
		{name: "no target", in: "::Show", parseErr: true},
		{name: "empty method after separator", in: "pages::", parseErr: true},
		{name: "empty method with keys", in: "pages::/0", parseErr: true},
		{name: "non-integer key", in: "pages::Show/first", parseErr: true},
		{name: "float key", in: "pages::Show/1.5", parseErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseAction(tt.in)
			if tt.parseErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, a.Target())
			assert.Equal(t, tt.method, a.Method())
			assert.Equal(t, tt.keys, a.ParamKeys())
			assert.False(t, a.IsFunc())
			assert.False(t, a.IsZero())
		})
	}
}

func TestActionString(t *testing.T) {
	t.Run("reassembles descriptors", func(t *testing.T) {
		for _, descriptor := range []string{
			"pages",
			"pages::Show",
			"pages::Show/0",
			"pages::Compare/2/0/1",
		} {
			a, err := parseAction(descriptor)
			require.NoError(t, err)
			assert.Equal(t, descriptor, a.String())
		}
	})

	t.Run("func action", func(t *testing.T) {
		a := Action{fn: func(_ io.Writer, _ Params, _ ...any) (any, error) { return nil, nil }}
		assert.Equal(t, "func", a.String())
		assert.True(t, a.IsFunc())
		assert.False(t, a.IsZero())
	})

	t.Run("zero action", func(t *testing.T) {
		var a Action
		assert.Equal(t, "", a.String())
		assert.True(t, a.IsZero())
		assert.False(t, a.IsFunc())
	})
}

func TestActionArgs(t *testing.T) {
	params := ParamsFromMap(map[int]any{0: "x", 1: "y", 2: "z"})

	t.Run("resolves keys in descriptor order", func(t *testing.T) {
		a, err := parseAction("pages::Compare/2/0/2")
		require.NoError(t, err)

		args, err := a.args(params)
		require.NoError(t, err)
		assert.Equal(t, []any{"z", "x", "z"}, args)
	})

	t.Run("no keys means no arguments", func(t *testing.T) {
		a, err := parseAction("pages::Show")
		require.NoError(t, err)

		args, err := a.args(params)
		require.NoError(t, err)
		assert.Nil(t, args)
	})

	t.Run("absent key is undefined parameter", func(t *testing.T) {
		a, err := parseAction("pages::Show/9")
		require.NoError(t, err)

		_, err = a.args(params)
		assert.ErrorIs(t, err, ErrUndefinedActionParameter)
	})
}
