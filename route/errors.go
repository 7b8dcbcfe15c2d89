package route

import "errors"

// Configuration errors.
var (
	// ErrNoAction is returned by Run when the route was never given an
	// action to dispatch.
	ErrNoAction = errors.New("route: route has no action")

	// ErrDuplicateName is latched on a route when SetName is given a name
	// that is already taken within the owning router.
	ErrDuplicateName = errors.New("route: duplicate route name")
)

// Dispatch errors.
var (
	// ErrUndefinedActionParameter is returned when an action descriptor
	// references a parameter key that is absent from the stored action
	// parameters. Raised before the target is instantiated.
	ErrUndefinedActionParameter = errors.New("route: action parameter is not defined")

	// ErrTargetNotFound is returned when the router cannot resolve the
	// descriptor's target name to a registered target.
	ErrTargetNotFound = errors.New("route: action target not found")

	// ErrMethodNotFound is returned when the instantiated target has no
	// exported method with the resolved name.
	ErrMethodNotFound = errors.New("route: action method not found")

	// ErrInvalidActionResult is returned when an action produces a value
	// that is not nil, a scalar, or a fmt.Stringer, or when a target
	// method has a return shape the dispatcher cannot interpret.
	ErrInvalidActionResult = errors.New("route: action result is not stringable")
)
