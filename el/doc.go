// Package el provides the UI DSL for building pages around the installed
// auth forms.
//
// It re-exports the element constructors, attribute helpers, and common
// utilities from github.com/clerkmount/clerkmount/pkg/vdom.
//
// Typical usage:
//
//	import . "github.com/clerkmount/clerkmount/el"
//
//	page := Div(Class("hero"),
//	    H1(Text("Welcome back")),
//	)
package el
