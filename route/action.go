package route

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ActionFunc is a callable route action. It receives a sink for incidental
// output, the route's action parameters, and any construction parameters
// passed to Run. The returned value is validated and stringified the same
// way as a target method result.
type ActionFunc func(w io.Writer, params Params, args ...any) (any, error)

// TargetFunc constructs an action target from construction parameters.
// Factories are registered on a router under a target name; the descriptor
// form of an action names the factory to use.
type TargetFunc func(args ...any) (any, error)

// Action is the dispatchable form of a route action: either a function or a
// parsed descriptor naming a registered target, a method, and the keys of
// the action parameters to pass, in call order.
//
// Descriptors are parsed once, when the action is configured, not on every
// dispatch. The descriptor grammar is
//
//	Target::Method
//	Target::Method/k0/k1/.../kn
//
// where each k is a decimal key into the route's action parameters. The
// method part may be omitted entirely (a bare "Target"), in which case the
// router's default action method is applied at dispatch time.
type Action struct {
	fn        ActionFunc
	target    string
	method    string
	paramKeys []int
}

// parseAction parses a descriptor string into its Action form. Leading
// separator characters are trimmed from the target name first.
func parseAction(s string) (Action, error) {
	s = strings.TrimLeft(s, `\/`)

	target, rest, found := strings.Cut(s, "::")
	if target == "" {
		return Action{}, fmt.Errorf("route: action descriptor %q has no target", s)
	}
	if !found {
		return Action{target: target}, nil
	}

	segments := strings.Split(rest, "/")
	if segments[0] == "" {
		return Action{}, fmt.Errorf("route: action descriptor %q has no method", s)
	}
	a := Action{target: target, method: segments[0]}
	if len(segments) == 1 {
		return a, nil
	}

	a.paramKeys = make([]int, len(segments)-1)
	for i, seg := range segments[1:] {
		key, err := strconv.Atoi(seg)
		if err != nil {
			return Action{}, fmt.Errorf("route: action descriptor %q: parameter key %q is not an integer", s, seg)
		}
		a.paramKeys[i] = key
	}
	return a, nil
}

// IsFunc reports whether the action is a callable rather than a descriptor.
func (a Action) IsFunc() bool {
	return a.fn != nil
}

// IsZero reports whether the action is unset.
func (a Action) IsZero() bool {
	return a.fn == nil && a.target == ""
}

// Target returns the descriptor's target name. Empty for func actions.
func (a Action) Target() string {
	return a.target
}

// Method returns the descriptor's method name. Empty when the descriptor
// relies on the router's default action method, and for func actions.
func (a Action) Method() string {
	return a.method
}

// ParamKeys returns the descriptor's parameter keys in call order.
func (a Action) ParamKeys() []int {
	return a.paramKeys
}

// String reassembles the descriptor form of the action. Func actions render
// as "func"; the zero action renders as "".
func (a Action) String() string {
	if a.fn != nil {
		return "func"
	}
	if a.target == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(a.target)
	if a.method != "" || len(a.paramKeys) > 0 {
		b.WriteString("::")
		b.WriteString(a.method)
	}
	for _, key := range a.paramKeys {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(key))
	}
	return b.String()
}

// args resolves the descriptor's parameter keys against the stored action
// parameters, producing the positional arguments for the method call. A key
// absent from the parameters is ErrUndefinedActionParameter.
func (a Action) args(params Params) ([]any, error) {
	if len(a.paramKeys) == 0 {
		return nil, nil
	}
	args := make([]any, len(a.paramKeys))
	for i, key := range a.paramKeys {
		v, ok := params.Get(key)
		if !ok {
			return nil, fmt.Errorf("%w: key %d in %q", ErrUndefinedActionParameter, key, a.String())
		}
		args[i] = v
	}
	return args, nil
}
