// Package clerkmount installs drop-in Clerk sign-in and sign-up pages
// onto an application.
//
// The installers compose a centered page around Clerk's pre-built form
// widgets, wrap it in the Clerk provider context, and register it in the
// application's page table under a catch-all route key, so the route and
// every sub-path below it (factor-two, sso-callback, ...) resolve to the
// same page.
//
// Usage:
//
//	a := clerkmount.NewApp(clerkmount.AppConfig{Title: "My App"})
//	clerkmount.InstallPages(a,
//	    clerkmount.WithPublishableKey(os.Getenv("CLERK_PUBLISHABLE_KEY")),
//	)
//	log.Fatal(a.Run(":8080"))
package clerkmount

import (
	"github.com/clerkmount/clerkmount/pkg/app"
	"github.com/clerkmount/clerkmount/pkg/clerk"
)

// App is the host application owning the page table.
type App = app.App

// AppConfig configures the host application.
type AppConfig = app.Config

// Options are the component options forwarded to the mounted widgets.
type Options = clerk.Options

// NewApp creates a new host application.
func NewApp(cfg AppConfig) *App {
	return app.New(cfg)
}
