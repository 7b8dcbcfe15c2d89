// Package route implements a dispatchable route: a URL template bound to
// an action and its parameters, executed on demand against a registered
// target.
//
// A route does not match incoming requests. It owns the other half of a
// router's job: given a configured action, resolve the target, reorder the
// parameters, run the lifecycle hooks, and collect everything the action
// produced into a single result string. Collection management lives in
// Table, which implements the Router contract routes depend on.
//
// # Routes
//
// Create a table and register routes on it:
//
//	tbl := route.NewTable()
//	tbl.RegisterTarget("pages", func(args ...any) (any, error) {
//		return &Pages{}, nil
//	})
//	tbl.Handle("example.com", "/about/", "pages::Show/0").
//		SetActionParams(map[int]any{0: "about"}).
//		SetName("about")
//
//	result, err := tbl.Get("about").Run()
//
// The URL template has two parts. The origin never starts with a slash;
// the path always starts with exactly one and never ends with one. Both
// are normalized on set, so "/about/" above is stored as "/about".
//
// # Action Descriptors
//
// A descriptor names a registered target, a method, and optionally which
// action parameters to pass:
//
//	"pages"                  method defaults to the table's default
//	"pages::Show"            no arguments
//	"pages::Show/0"          Show(params[0])
//	"pages::Compare/2/0/2"   Compare(params[2], params[0], params[2])
//
// The trailing segments are keys into the route's action parameters, in
// the desired call order. Keys may reorder, repeat, or omit stored
// parameters; a key with no stored parameter is ErrUndefinedActionParameter.
// Descriptors are parsed once, when the action is set.
//
// # Callable Actions
//
// A route can carry a function instead of a descriptor:
//
//	tbl.HandleFunc("example.com", "/ping", func(w io.Writer, params route.Params, args ...any) (any, error) {
//		fmt.Fprint(w, "pong ")
//		return len(args), nil
//	})
//
// The writer collects incidental output, params are the stored action
// parameters, and args are the construction parameters passed to Run.
//
// # Targets and Hooks
//
// Descriptor dispatch constructs the target through its registered
// factory, forwarding Run's arguments, and invokes the named method by
// reflection. Methods may return nothing, a value, an error, or a value
// and an error.
//
// A target may implement two optional hooks. BeforeAction runs first; a
// non-empty result short-circuits the dispatch and becomes the route's
// result, skipping the method entirely. AfterAction runs only when the
// method returned nothing (nil or ""), and supplies the result instead:
//
//	func (p *Pages) BeforeAction(method string, params []any) any {
//		if p.maintenance {
//			return "down for maintenance"
//		}
//		return nil
//	}
//
// # Incidental Output
//
// Anything an action writes to its output sink during a call is captured
// and prepended to that call's stringified return value. Targets opt in by
// implementing OutputSetter, most simply by embedding Output:
//
//	type Pages struct {
//		route.Output
//	}
//
//	func (p *Pages) Show(page string) string {
//		p.Printf("<!-- %s -->", page)
//		return "<h1>" + page + "</h1>"
//	}
//
// Each hook and method invocation gets its own capture, released on every
// exit path, so concurrent dispatches never share output state.
//
// # Results and Errors
//
// A dispatch result is always one string. Return values must be nil, a
// scalar, or a fmt.Stringer; anything else is ErrInvalidActionResult.
// Unresolvable targets and methods are ErrTargetNotFound and
// ErrMethodNotFound. All errors surface synchronously from Run, and an
// error never carries a partial result.
//
// Configuration errors latch on the route when they happen and surface
// from Run and GetError:
//
//	r := tbl.Handle("", "/x", "pages::")
//	if err := r.GetError(); err != nil {
//		// malformed descriptor reported here
//	}
//
// # Placeholders
//
// Origin and path templates may contain {name} tokens. The table fills
// them left to right from the supplied parameters, leaving tokens beyond
// the parameters verbatim:
//
//	r := tbl.Handle("{tenant}.example.com", "/users/{id}", "users::Show/0")
//	url := r.URL([]any{"acme"}, []any{42})   // "acme.example.com/users/42"
//
// NormalizeOrigin converts a configured origin's host part to its ASCII
// form per RFC 5890, for tables that are loaded from documents where
// internationalized hostnames may appear.
package route
