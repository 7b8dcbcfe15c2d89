// Package routefile loads and saves declarative route tables.
//
// A route table document is YAML holding table-wide defaults and a list of
// route entries. JSON documents parse as well, since YAML is a superset of
// JSON.
//
//	defaults:
//	  actionMethod: Show
//	routes:
//	  - name: about
//	    origin: "{lang}.example.com"
//	    path: /about
//	    action: pages::Show/0
//	    params:
//	      0: about
//	    options:
//	      public: true
//
// Documents are validated against an embedded JSON Schema before they are
// decoded; violations carry their location in the document.
//
// # Applying
//
// [File.Apply] registers every entry on a [route.Table]. Origins are
// normalized to their registration form first, and entries without a name
// can be assigned generated ones:
//
//	f, err := routefile.Load("routes.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	routes, err := f.Apply(tbl, routefile.ApplyConfig{AutoName: true})
//
// # Exporting
//
// [Export] rebuilds a document from a live table; [ExportYAML] and
// [ExportJSON] serialize it. Only descriptor actions can be exported: a
// callable action has no textual form.
package routefile
