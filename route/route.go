package route

import (
	"fmt"
	"strings"
)

// Route binds a URL template (origin + path) to an action and its
// parameters. Routes are configured through fluent setters during
// registration and treated as immutable once dispatch begins.
//
// Configuration errors (an unparseable action descriptor, a duplicate name)
// latch on the route: the first error sticks, later setters become no-ops,
// and both Run and GetError surface it.
type Route struct {
	router      Router
	namedRoutes map[string]*Route
	name        string
	origin      string
	path        string
	action      Action
	params      Params
	options     map[string]any
	err         error
}

// NewRoute returns a route bound to rtr with a descriptor action. The
// origin, path, and descriptor are normalized the same way the setters
// normalize them.
func NewRoute(rtr Router, origin, path, action string) *Route {
	r := &Route{router: rtr, path: "/"}
	return r.SetOrigin(origin).SetPath(path).SetAction(action)
}

// NewRouteFunc returns a route bound to rtr with a callable action.
func NewRouteFunc(rtr Router, origin, path string, fn ActionFunc) *Route {
	r := &Route{router: rtr, path: "/"}
	return r.SetOrigin(origin).SetPath(path).SetActionFunc(fn)
}

// --- Configuration ---

// SetOrigin sets the origin part of the URL template. Leading slashes are
// stripped; the origin may contain placeholder tokens.
func (r *Route) SetOrigin(origin string) *Route {
	if r.err == nil {
		r.origin = strings.TrimLeft(origin, "/")
	}
	return r
}

// SetPath sets the path part of the URL template. The stored path always
// starts with exactly one slash and carries no trailing slash; the root
// path stays "/". The path may contain placeholder tokens.
func (r *Route) SetPath(path string) *Route {
	if r.err == nil {
		r.path = "/" + strings.Trim(path, "/")
	}
	return r
}

// SetAction sets the action from its descriptor form, parsed once here. A
// malformed descriptor latches on the route.
func (r *Route) SetAction(descriptor string) *Route {
	if r.err == nil {
		a, err := parseAction(descriptor)
		if err != nil {
			r.err = err
			return r
		}
		r.action = a
	}
	return r
}

// SetActionFunc sets a callable action, replacing any descriptor.
func (r *Route) SetActionFunc(fn ActionFunc) *Route {
	if r.err == nil {
		r.action = Action{fn: fn}
	}
	return r
}

// SetActionParams stores the action parameters keyed by integer index. The
// stored mapping is re-sorted ascending by key immediately, so iteration
// over ActionParams is deterministic regardless of the map supplied.
func (r *Route) SetActionParams(params map[int]any) *Route {
	if r.err == nil {
		r.params = ParamsFromMap(params)
	}
	return r
}

// SetName sets the name for the route, used to look it up on its router.
// Setting a second name, or a name already taken by another route on the
// same router, latches an error.
func (r *Route) SetName(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("route: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		if r.namedRoutes != nil {
			if _, taken := r.namedRoutes[name]; taken {
				r.err = fmt.Errorf("%w: %q", ErrDuplicateName, name)
				return r
			}
			r.namedRoutes[name] = r
		}
		r.name = name
	}
	return r
}

// SetOptions replaces the route's metadata. Options are opaque to the
// route itself.
func (r *Route) SetOptions(options map[string]any) *Route {
	if r.err == nil {
		r.options = options
	}
	return r
}

// SetOption sets a single metadata entry.
func (r *Route) SetOption(key string, value any) *Route {
	if r.err == nil {
		if r.options == nil {
			r.options = make(map[string]any)
		}
		r.options[key] = value
	}
	return r
}

// --- Inspection ---

// Origin returns the origin template. With parameters supplied it
// delegates to the router's placeholder filling; with none it returns the
// stored template verbatim.
func (r *Route) Origin(params ...any) string {
	if len(params) == 0 || r.router == nil {
		return r.origin
	}
	return r.router.FillPlaceholders(r.origin, params...)
}

// Path returns the path template, resolved like Origin.
func (r *Route) Path(params ...any) string {
	if len(params) == 0 || r.router == nil {
		return r.path
	}
	return r.router.FillPlaceholders(r.path, params...)
}

// URL returns the resolved origin followed by the resolved path. No
// separator is inserted; the path always starts with a slash.
func (r *Route) URL(originParams, pathParams []any) string {
	return r.Origin(originParams...) + r.Path(pathParams...)
}

// Action returns the configured action.
func (r *Route) Action() Action {
	return r.action
}

// ActionParams returns the stored action parameters, sorted ascending by
// key.
func (r *Route) ActionParams() Params {
	return r.params
}

// Name returns the name for the route, if any.
func (r *Route) Name() string {
	return r.name
}

// Options returns the route's metadata, if any.
func (r *Route) Options() map[string]any {
	return r.options
}

// Option returns a single metadata entry.
func (r *Route) Option(key string) (any, bool) {
	v, ok := r.options[key]
	return v, ok
}

// GetError returns any error that was latched on the route.
func (r *Route) GetError() error {
	return r.err
}
