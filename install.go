package clerkmount

import (
	"fmt"

	"github.com/clerkmount/clerkmount/pkg/app"
	"github.com/clerkmount/clerkmount/pkg/clerk"
	"github.com/clerkmount/clerkmount/pkg/routekey"
)

// Default routes for the installed pages.
const (
	DefaultSignInRoute = "/signin"
	DefaultSignUpRoute = "/signup"
)

// Catch-all slugs used in the derived page keys.
const (
	SignInSlug = "signin"
	SignUpSlug = "signup"
)

// installConfig collects everything the installers accept.
type installConfig struct {
	clerk       clerk.Config
	signInRoute string
	signUpRoute string
	options     clerk.Options
}

func defaultInstallConfig() installConfig {
	return installConfig{
		signInRoute: DefaultSignInRoute,
		signUpRoute: DefaultSignUpRoute,
	}
}

// InstallOption configures the page installers.
type InstallOption func(*installConfig)

// WithPublishableKey sets the Clerk publishable key forwarded to the
// provider context. The key is never inspected here.
func WithPublishableKey(key string) InstallOption {
	return func(c *installConfig) {
		c.clerk.PublishableKey = key
	}
}

// WithClerkConfig sets the full provider configuration (key and script
// URL), e.g. one loaded with clerk.FromEnv.
func WithClerkConfig(cfg clerk.Config) InstallOption {
	return func(c *installConfig) {
		c.clerk = cfg
	}
}

// WithRoute overrides the route for both pages. For the single-page
// installers this sets the route of the installed page; for InstallPages
// prefer WithSignInRoute and WithSignUpRoute.
func WithRoute(route string) InstallOption {
	return func(c *installConfig) {
		c.signInRoute = route
		c.signUpRoute = route
	}
}

// WithSignInRoute overrides the sign-in route. Default "/signin".
func WithSignInRoute(route string) InstallOption {
	return func(c *installConfig) {
		c.signInRoute = route
	}
}

// WithSignUpRoute overrides the sign-up route. Default "/signup".
func WithSignUpRoute(route string) InstallOption {
	return func(c *installConfig) {
		c.signUpRoute = route
	}
}

// WithOptions sets the component options forwarded to the form widgets.
// The installers fill in Path and Routing from the route.
func WithOptions(opts clerk.Options) InstallOption {
	return func(c *installConfig) {
		c.options = opts
	}
}

func buildInstallConfig(opts []InstallOption) installConfig {
	cfg := defaultInstallConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// mustValidate panics when the route is not absolute. Installation is a
// startup-time operation; a bad route is a programming error, not a
// runtime condition to recover from.
func mustValidate(route string) {
	if err := routekey.Validate(route); err != nil {
		panic(fmt.Sprintf("clerkmount: %v", err))
	}
}

// InstallSignInPage installs a sign-in page on the given app.
//
// The page is a full-viewport centered column containing Clerk's sign-in
// form, wrapped in the provider context. It is registered under the key
// derived from the route, e.g. "/signin" becomes
// "signin/[[...signin]]/index", so the route and all its sub-paths serve
// this page. Reinstalling the same route silently overwrites the previous
// entry.
//
// Panics if the route is not absolute. No page is installed in that case.
func InstallSignInPage(a *app.App, opts ...InstallOption) {
	cfg := buildInstallConfig(opts)
	installSignIn(a, cfg)
}

// InstallSignUpPage installs a sign-up page on the given app, with the
// same structure and key convention as InstallSignInPage under the
// "/signup" default route.
func InstallSignUpPage(a *app.App, opts ...InstallOption) {
	cfg := buildInstallConfig(opts)
	installSignUp(a, cfg)
}

// InstallPages installs the sign-in and sign-up pages with a shared
// provider configuration and shared component options.
//
// Both routes are validated before either page is installed, so a bad
// route leaves the page table untouched.
func InstallPages(a *app.App, opts ...InstallOption) {
	cfg := buildInstallConfig(opts)

	mustValidate(cfg.signInRoute)
	mustValidate(cfg.signUpRoute)

	installSignIn(a, cfg)
	installSignUp(a, cfg)
}

func installSignIn(a *app.App, cfg installConfig) {
	route := cfg.signInRoute
	mustValidate(route)

	options := cfg.options
	options.Path = route
	if options.Routing == "" {
		options.Routing = "path"
	}

	page := clerk.Provider(
		center(vstack(formSpacing, clerk.SignIn(options))),
		cfg.clerk,
	)
	a.SetPage(routekey.ForRoute(route, SignInSlug), page)
}

func installSignUp(a *app.App, cfg installConfig) {
	route := cfg.signUpRoute
	mustValidate(route)

	options := cfg.options
	options.Path = route
	if options.Routing == "" {
		options.Routing = "path"
	}

	page := clerk.Provider(
		center(vstack(formSpacing, clerk.SignUp(options))),
		cfg.clerk,
	)
	a.SetPage(routekey.ForRoute(route, SignUpSlug), page)
}
