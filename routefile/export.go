package routefile

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Hmida71/routing/route"
)

// Export rebuilds a document from a live table: the table's default action
// method plus one entry per registered route, in registration order.
//
// Only descriptor actions have a textual form. A route with a callable
// action, a latched error, or no action at all fails the export.
func Export(tbl *route.Table) (*File, error) {
	f := &File{
		Defaults: Defaults{ActionMethod: tbl.DefaultActionMethod()},
		Routes:   make([]Entry, 0, len(tbl.Routes())),
	}

	err := tbl.Walk(func(r *route.Route) error {
		if err := r.GetError(); err != nil {
			return fmt.Errorf("routefile: export route %q: %w", exportName(r), err)
		}

		a := r.Action()
		switch {
		case a.IsFunc():
			return fmt.Errorf("routefile: export route %q: callable actions have no descriptor form", exportName(r))
		case a.IsZero():
			return fmt.Errorf("routefile: export route %q: no action configured", exportName(r))
		}

		entry := Entry{
			Name:   r.Name(),
			Origin: r.Origin(),
			Path:   r.Path(),
			Action: a.String(),
		}
		if params := r.ActionParams(); len(params) > 0 {
			entry.Params = params.Map()
		}
		if options := r.Options(); len(options) > 0 {
			entry.Options = options
		}
		f.Routes = append(f.Routes, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ExportYAML serializes the table to a YAML route table document.
func ExportYAML(tbl *route.Table) ([]byte, error) {
	f, err := Export(tbl)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(f)
}

// ExportJSON serializes the table to an indented JSON route table
// document.
func ExportJSON(tbl *route.Table) ([]byte, error) {
	f, err := Export(tbl)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(f, "", "  ")
}

// exportName identifies a route in export errors, preferring its name over
// its URL template.
func exportName(r *route.Route) string {
	if name := r.Name(); name != "" {
		return name
	}
	return r.URL(nil, nil)
}
