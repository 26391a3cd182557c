// Package vdom provides the node model the installed auth pages are built
// from.
//
// Pages assembled by this module are static shells: the tree is composed
// once at install time, rendered on the server, and all interactivity is
// owned by the identity provider's browser widgets. There is consequently
// no event, diffing, or hydration machinery here, only element
// construction:
//
//	node := vdom.Div(vdom.Class("card"),
//	    vdom.H1(vdom.Text("Welcome")),
//	    vdom.P(vdom.Text("Sign in to continue")),
//	)
package vdom
