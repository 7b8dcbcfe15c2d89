package route

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	t.Run("zero value discards writes", func(t *testing.T) {
		var o Output
		n, err := o.Write([]byte("dropped"))
		require.NoError(t, err)
		assert.Equal(t, 7, n)

		o.Print("dropped")
		o.Printf("%s", "dropped")
		o.Println("dropped")
	})

	t.Run("writes go to the installed sink", func(t *testing.T) {
		var o Output
		var buf strings.Builder
		o.SetOutput(&buf)

		o.Print("a ")
		o.Printf("%d ", 2)
		o.Println("c")
		assert.Equal(t, "a 2 c\n", buf.String())
	})

	t.Run("nil sink discards again", func(t *testing.T) {
		var o Output
		var buf strings.Builder
		o.SetOutput(&buf)
		o.Print("kept")
		o.SetOutput(nil)
		o.Print("dropped")

		assert.Equal(t, "kept", buf.String())
	})

	t.Run("out is always writable", func(t *testing.T) {
		var o Output
		_, err := o.Out().Write([]byte("x"))
		assert.NoError(t, err)
	})
}

func TestCaptureCall(t *testing.T) {
	t.Run("captures output around the call", func(t *testing.T) {
		g := &greeter{}
		ret, out, err := captureCall(g, func() (any, error) {
			g.Print("during")
			return "value", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "value", ret)
		assert.Equal(t, "during", out)
	})

	t.Run("releases the sink afterwards", func(t *testing.T) {
		g := &greeter{}
		_, _, err := captureCall(g, func() (any, error) { return nil, nil })
		require.NoError(t, err)

		g.Print("stray")
		_, out, err := captureCall(g, func() (any, error) { return nil, nil })
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("captures even when the call errors", func(t *testing.T) {
		g := &greeter{}
		_, out, err := captureCall(g, func() (any, error) {
			g.Print("before failing")
			return nil, assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, "before failing", out)
	})

	t.Run("releases the sink on panic", func(t *testing.T) {
		g := &greeter{}
		assert.Panics(t, func() {
			_, _, _ = captureCall(g, func() (any, error) {
				g.Print("partial")
				panic("target exploded")
			})
		})

		g.Print("stray")
		_, out, err := captureCall(g, func() (any, error) { return nil, nil })
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("plain targets are fine", func(t *testing.T) {
		ret, out, err := captureCall(struct{}{}, func() (any, error) { return 1, nil })
		require.NoError(t, err)
		assert.Equal(t, 1, ret)
		assert.Empty(t, out)
	})
}
