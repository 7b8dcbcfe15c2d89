package route

import (
	"fmt"
	"reflect"
	"strings"
)

// BeforeActioner is implemented by action targets that intercept dispatch.
// The hook runs after the target is constructed and its method resolved,
// before the method itself. A non-empty hook result (captured output plus
// the stringified return value) becomes Run's result and the main method
// and any after hook are skipped.
type BeforeActioner interface {
	BeforeAction(method string, params []any) any
}

// AfterActioner is implemented by action targets that produce their result
// lazily. The hook runs only when the main method returned the empty
// result, and its return value is used instead.
type AfterActioner interface {
	AfterAction(method string, params []any) any
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Run dispatches the route's action. The result is everything written to
// the incidental output channel during the dispatch followed by the
// stringified return value.
//
// Construction parameters are forwarded to the target's factory; callable
// actions receive them after the action parameters. Dispatch is
// synchronous, returning only after the whole hook chain completes. On
// error no partial result is returned, captured output included.
func (r *Route) Run(args ...any) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.action.IsZero() {
		return "", ErrNoAction
	}
	if r.action.IsFunc() {
		return r.runFunc(args)
	}
	return r.runTarget(args)
}

// runFunc invokes a callable action with a capture sink, the action
// parameters, and the construction parameters.
func (r *Route) runFunc(args []any) (string, error) {
	var buf strings.Builder
	ret, err := r.action.fn(&buf, r.params, args...)
	if err != nil {
		return "", err
	}
	s, err := stringifyResult(ret)
	if err != nil {
		return "", err
	}
	return buf.String() + s, nil
}

// runTarget performs the descriptor dispatch: resolve the method name and
// ordered parameters, construct the target, then run the before hook, the
// method, and the after hook, each under its own output capture.
func (r *Route) runTarget(args []any) (string, error) {
	if r.router == nil {
		return "", fmt.Errorf("%w: %q (route has no router)", ErrTargetNotFound, r.action.target)
	}

	method := r.action.method
	if method == "" {
		method = r.router.DefaultActionMethod()
	}

	callArgs, err := r.action.args(r.params)
	if err != nil {
		return "", err
	}

	target, err := r.newTarget(args)
	if err != nil {
		return "", err
	}

	fn := reflect.ValueOf(target).MethodByName(method)
	if !fn.IsValid() {
		return "", fmt.Errorf("%w: %s.%s", ErrMethodNotFound, r.action.target, method)
	}

	if h, ok := target.(BeforeActioner); ok {
		ret, out, _ := captureCall(target, func() (any, error) {
			return h.BeforeAction(method, callArgs), nil
		})
		s, err := stringifyResult(ret)
		if err != nil {
			return "", err
		}
		if res := out + s; res != "" {
			return res, nil
		}
	}

	ret, out, err := captureCall(target, func() (any, error) {
		return callMethod(r.action.target+"."+method, fn, callArgs)
	})
	if err != nil {
		return "", err
	}
	s, err := stringifyResult(ret)
	if err != nil {
		return "", err
	}

	if isEmptyResult(ret) {
		if h, ok := target.(AfterActioner); ok {
			aret, aout, _ := captureCall(target, func() (any, error) {
				return h.AfterAction(method, callArgs), nil
			})
			as, err := stringifyResult(aret)
			if err != nil {
				return "", err
			}
			return out + aout + as, nil
		}
	}

	return out + s, nil
}

// newTarget resolves the descriptor's target name through the router and
// constructs an instance with the supplied construction parameters.
func (r *Route) newTarget(args []any) (any, error) {
	factory, ok := r.router.Target(r.action.target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, r.action.target)
	}
	target, err := factory(args...)
	if err != nil {
		return nil, fmt.Errorf("route: constructing target %q: %w", r.action.target, err)
	}
	if target == nil {
		return nil, fmt.Errorf("route: target %q factory returned nil", r.action.target)
	}
	return target, nil
}

// callMethod invokes a resolved method with the ordered parameter values,
// adapting each value to the parameter type it lands on. Methods may
// return nothing, a single value, an error, or a value and an error; any
// other return shape is ErrInvalidActionResult.
func callMethod(name string, fn reflect.Value, args []any) (any, error) {
	t := fn.Type()

	numIn := t.NumIn()
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("route: method %s takes at least %d arguments, have %d", name, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("route: method %s takes %d arguments, have %d", name, numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if t.IsVariadic() && i >= numIn-1 {
			pt = t.In(numIn - 1).Elem()
		} else {
			pt = t.In(i)
		}
		v, err := conformArg(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("route: method %s argument %d: %w", name, i, err)
		}
		in[i] = v
	}

	out := fn.Call(in)
	switch t.NumOut() {
	case 0:
		return nil, nil
	case 1:
		if t.Out(0).Implements(errorType) {
			err, _ := out[0].Interface().(error)
			return nil, err
		}
		return out[0].Interface(), nil
	case 2:
		if !t.Out(1).Implements(errorType) {
			return nil, fmt.Errorf("%w: method %s second return is %s, not error", ErrInvalidActionResult, name, t.Out(1))
		}
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		return nil, fmt.Errorf("%w: method %s returns %d values", ErrInvalidActionResult, name, t.NumOut())
	}
}

// conformArg adapts a stored parameter value to a method parameter type.
// Assignable values pass through, convertible ones are converted, except
// that nothing converts to string implicitly (an integer would convert as
// a rune, which is never what a stored parameter means).
func conformArg(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", pt)
	}
	v := reflect.ValueOf(arg)
	switch {
	case v.Type().AssignableTo(pt):
		return v, nil
	case pt.Kind() == reflect.String && v.Kind() != reflect.String:
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), pt)
	case v.Type().ConvertibleTo(pt):
		return v.Convert(pt), nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), pt)
}

// stringifyResult coerces an action return value to its string form. A
// value is acceptable only if it has a defined string conversion: a
// fmt.Stringer, a scalar (string, bool, integer, float), or nil, which
// stringifies to the empty string. Anything else is ErrInvalidActionResult.
func stringifyResult(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(v), nil
	}
	return "", fmt.Errorf("%w: %T", ErrInvalidActionResult, v)
}

// isEmptyResult reports whether a return value is the empty result that
// makes an after hook eligible: nil or the empty string. Zero numbers and
// false are results, not absence.
func isEmptyResult(v any) bool {
	return v == nil || v == ""
}
