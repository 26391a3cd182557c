// Package clerk provides page-tree bindings for Clerk's browser widgets.
//
// The components here do no authentication work themselves. Provider emits
// the ClerkJS loader tag carrying the publishable key; SignIn and SignUp
// emit mount points plus the script that hands them to the loaded widget
// library. Everything past that (rendering the forms, talking to Clerk's
// API, session handling) happens in the browser, inside ClerkJS.
package clerk
