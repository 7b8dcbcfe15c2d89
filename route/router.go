package route

import (
	"fmt"
	"strings"
)

// Router is the collaborator contract a Route consumes. It supplies
// placeholder substitution for URL fragments, the method name applied when
// an action descriptor omits one, and resolution of descriptor target
// names to factories.
type Router interface {
	FillPlaceholders(template string, params ...any) string
	DefaultActionMethod() string
	Target(name string) (TargetFunc, bool)
}

// WalkFunc is the type of the function called for each route visited by
// Walk.
type WalkFunc func(route *Route) error

// Table registers routes and implements the Router contract they depend
// on. Registration is a configuration-phase activity; once configured, a
// table is safe for concurrent dispatch.
//
//	tbl := route.NewTable()
//	tbl.RegisterTarget("pages", newPages)
//	tbl.Handle("example.com", "/about", "pages::Show/0").
//		SetActionParams(map[int]any{0: "about"})
type Table struct {
	routes      []*Route
	namedRoutes map[string]*Route
	targets     map[string]TargetFunc

	defaultActionMethod string
}

// NewTable returns a new route table instance.
func NewTable() *Table {
	return &Table{
		namedRoutes:         make(map[string]*Route),
		targets:             make(map[string]TargetFunc),
		defaultActionMethod: "Index",
	}
}

// SetDefaultActionMethod sets the method name applied to action
// descriptors that omit one.
func (t *Table) SetDefaultActionMethod(method string) *Table {
	t.defaultActionMethod = method
	return t
}

// RegisterTarget registers a factory under a target name, making the name
// resolvable from action descriptors. Registering a name again replaces
// the previous factory.
func (t *Table) RegisterTarget(name string, fn TargetFunc) *Table {
	t.targets[name] = fn
	return t
}

// --- Route factory methods ---

// NewRoute creates an empty route for configuration, registered on the
// table.
func (t *Table) NewRoute() *Route {
	route := &Route{
		router:      t,
		namedRoutes: t.namedRoutes,
		path:        "/",
	}
	t.routes = append(t.routes, route)
	return route
}

// Handle registers a new route with the given URL template and action
// descriptor.
func (t *Table) Handle(origin, path, action string) *Route {
	return t.NewRoute().SetOrigin(origin).SetPath(path).SetAction(action)
}

// HandleFunc registers a new route with the given URL template and a
// callable action.
func (t *Table) HandleFunc(origin, path string, fn ActionFunc) *Route {
	return t.NewRoute().SetOrigin(origin).SetPath(path).SetActionFunc(fn)
}

// Get returns a route registered with the given name.
func (t *Table) Get(name string) *Route {
	return t.namedRoutes[name]
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []*Route {
	return t.routes
}

// Walk calls walkFn for each registered route in registration order,
// stopping at the first error.
func (t *Table) Walk(walkFn WalkFunc) error {
	for _, route := range t.routes {
		if err := walkFn(route); err != nil {
			return err
		}
	}
	return nil
}

// --- Router contract ---

// FillPlaceholders substitutes {name} tokens in the template with the
// supplied parameters, left to right. Parameters are formatted with
// fmt.Sprint; tokens beyond the supplied parameters stay verbatim and
// surplus parameters are ignored.
func (t *Table) FillPlaceholders(template string, params ...any) string {
	if len(params) == 0 {
		return template
	}
	idxs := tokenIndices(template)
	if len(idxs) == 0 {
		return template
	}
	var b strings.Builder
	var end, used int
	for i := 0; i < len(idxs) && used < len(params); i += 2 {
		b.WriteString(template[end:idxs[i]])
		fmt.Fprint(&b, params[used])
		used++
		end = idxs[i+1]
	}
	b.WriteString(template[end:])
	return b.String()
}

// DefaultActionMethod returns the method name applied to action
// descriptors that omit one.
func (t *Table) DefaultActionMethod() string {
	return t.defaultActionMethod
}

// Target resolves a descriptor target name to its registered factory.
func (t *Table) Target(name string) (TargetFunc, bool) {
	fn, ok := t.targets[name]
	return fn, ok
}

// tokenIndices returns the first and one past the last index of each
// top-level {...} token in s, tracking nesting level so inner braces stay
// part of their token. Stray closing braces are literal text; an unclosed
// token is not a token.
func tokenIndices(s string) []int {
	var level, idx int
	var idxs []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idx = i
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, idx, i+1)
			} else if level < 0 {
				level = 0
			}
		}
	}
	return idxs
}
