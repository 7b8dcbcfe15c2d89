package routefile

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Hmida71/routing/route"
)

// ApplyConfig adjusts how a document is applied to a table.
type ApplyConfig struct {
	// AutoName assigns a generated name to every entry that has none,
	// making all applied routes addressable through Table.Get.
	AutoName bool

	// NameFunc produces generated names. Defaults to GenerateRouteName.
	NameFunc func() string
}

// Apply registers every entry of the document on tbl, in document order,
// and returns the created routes. Origins are normalized with
// [route.NormalizeOrigin] before registration. A document-wide default
// action method, when present, is set on the table first.
//
// Apply stops at the first entry that fails; entries before it stay
// registered on the table.
func (f *File) Apply(tbl *route.Table, cfg ApplyConfig) ([]*route.Route, error) {
	nameFunc := cfg.NameFunc
	if nameFunc == nil {
		nameFunc = GenerateRouteName
	}

	if f.Defaults.ActionMethod != "" {
		tbl.SetDefaultActionMethod(f.Defaults.ActionMethod)
	}

	routes := make([]*route.Route, 0, len(f.Routes))
	for i, e := range f.Routes {
		origin, err := route.NormalizeOrigin(e.Origin)
		if err != nil {
			return nil, fmt.Errorf("routefile: route %d (%s): %w", i, e.Path, err)
		}

		r := tbl.Handle(origin, e.Path, e.Action)
		if len(e.Params) > 0 {
			r.SetActionParams(e.Params)
		}
		if len(e.Options) > 0 {
			r.SetOptions(e.Options)
		}

		name := e.Name
		if name == "" && cfg.AutoName {
			name = nameFunc()
		}
		if name != "" {
			r.SetName(name)
		}

		if err := r.GetError(); err != nil {
			return nil, fmt.Errorf("routefile: route %d (%s): %w", i, e.Path, err)
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// GenerateRouteName returns a fresh generated route name. Names are UUID
// version 7 strings: time-ordered, so a name generated later sorts after
// the names generated before it.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func GenerateRouteName() string {
	return uuid.Must(uuid.NewV7()).String()
}
