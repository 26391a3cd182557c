package clerk

// Options are the component options forwarded to a mounted widget.
//
// The common ClerkJS component props are enumerated; anything newer or
// experimental can ride along in Extra, which is serialized into the mount
// options verbatim. Enumerated fields take precedence over Extra entries
// with the same name, so explicit configuration stays authoritative.
type Options struct {
	// Path is the route the component is mounted under. Set by the page
	// installers; with path routing ClerkJS owns every sub-path below it
	// (factor-two, sso-callback, ...).
	Path string

	// Routing selects the widget's routing strategy. The installers use
	// "path", matching the catch-all page key they register.
	Routing string

	// SignUpURL is where the sign-in widget links "don't have an account".
	SignUpURL string

	// SignInURL is where the sign-up widget links "already have an account".
	SignInURL string

	// ForceRedirectURL always redirects here after completion.
	ForceRedirectURL string

	// FallbackRedirectURL redirects here when no redirect_url is present.
	FallbackRedirectURL string

	// Appearance is the ClerkJS appearance object (theme, variables,
	// element overrides), forwarded as-is.
	Appearance map[string]any

	// InitialValues prefills widget fields (emailAddress, username, ...).
	InitialValues map[string]string

	// Extra holds any additional mount options, forwarded verbatim.
	Extra map[string]any
}

// mountOptions flattens the options into the object handed to
// Clerk.mountSignIn / Clerk.mountSignUp.
func (o Options) mountOptions() map[string]any {
	m := make(map[string]any)
	for k, v := range o.Extra {
		m[k] = v
	}
	if o.Path != "" {
		m["path"] = o.Path
	}
	if o.Routing != "" {
		m["routing"] = o.Routing
	}
	if o.SignUpURL != "" {
		m["signUpUrl"] = o.SignUpURL
	}
	if o.SignInURL != "" {
		m["signInUrl"] = o.SignInURL
	}
	if o.ForceRedirectURL != "" {
		m["forceRedirectUrl"] = o.ForceRedirectURL
	}
	if o.FallbackRedirectURL != "" {
		m["fallbackRedirectUrl"] = o.FallbackRedirectURL
	}
	if o.Appearance != nil {
		m["appearance"] = o.Appearance
	}
	if len(o.InitialValues) > 0 {
		m["initialValues"] = o.InitialValues
	}
	return m
}
