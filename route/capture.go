package route

import (
	"fmt"
	"io"
	"strings"
)

// OutputSetter is implemented by action targets that emit incidental output.
// Before each hook and method invocation the dispatcher installs a capture
// sink; whatever the target writes during the call is prepended to that
// call's stringified return value.
type OutputSetter interface {
	SetOutput(w io.Writer)
}

// Output is an embeddable incidental-output helper for action targets. It
// satisfies OutputSetter and silently discards writes made outside a
// dispatch.
type Output struct {
	w io.Writer
}

// SetOutput installs the sink for subsequent writes.
func (o *Output) SetOutput(w io.Writer) {
	o.w = w
}

// Out returns the helper as a writer, always safe to write to.
func (o *Output) Out() io.Writer {
	return o
}

// Write implements io.Writer against the installed sink.
func (o *Output) Write(p []byte) (int, error) {
	if o.w == nil {
		return len(p), nil
	}
	return o.w.Write(p)
}

// Print writes to the installed sink in the manner of fmt.Print.
func (o *Output) Print(args ...any) {
	fmt.Fprint(o, args...)
}

// Printf writes to the installed sink in the manner of fmt.Printf.
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o, format, args...)
}

// Println writes to the installed sink in the manner of fmt.Println.
func (o *Output) Println(args ...any) {
	fmt.Fprintln(o, args...)
}

// capture scopes incidental output around a single call. The dispatcher
// opens a capture before invoking a hook or method and closes it after,
// joining whatever was written with the call's own result.
type capture struct {
	buf strings.Builder
}

// open installs the capture on a target, when the target accepts one.
func (c *capture) open(target any) {
	if s, ok := target.(OutputSetter); ok {
		s.SetOutput(&c.buf)
	}
}

// close removes the capture from the target and returns the captured text.
func (c *capture) close(target any) string {
	if s, ok := target.(OutputSetter); ok {
		s.SetOutput(nil)
	}
	out := c.buf.String()
	c.buf.Reset()
	return out
}

// captureCall scopes an output capture around a single call. The capture
// is released on every exit path, so a panicking target cannot leak its
// sink into a later dispatch.
func captureCall(target any, call func() (any, error)) (ret any, out string, err error) {
	var c capture
	c.open(target)
	defer func() { out = c.close(target) }()
	ret, err = call()
	return
}
