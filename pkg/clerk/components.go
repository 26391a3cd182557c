package clerk

import (
	"encoding/json"
	"fmt"

	"github.com/clerkmount/clerkmount/pkg/vdom"
)

// Internal prop keys. Props starting with "_" are never rendered as
// attributes; they let tests and callers inspect what a tree was built
// from.
const (
	PropComponent      = "_clerk_component"
	PropOptions        = "_clerk_options"
	PropPublishableKey = "_clerk_publishable_key"
)

// Mount element IDs.
const (
	SignInElementID = "clerk-sign-in"
	SignUpElementID = "clerk-sign-up"
)

// Provider wraps a page tree in the Clerk provider context: a root element
// carrying the publishable key and the ClerkJS loader tag. Every Clerk
// component below it mounts against that instance.
func Provider(child *vdom.VNode, cfg Config) *vdom.VNode {
	script := vdom.Script(
		vdom.Async(),
		vdom.CrossOrigin("anonymous"),
		vdom.Src(cfg.scriptURL()),
	)
	if cfg.PublishableKey != "" {
		script.Props["data-clerk-publishable-key"] = cfg.PublishableKey
	}

	root := vdom.Div(
		vdom.Data("clerk-provider", "true"),
		script,
		child,
	)
	root.Props[PropPublishableKey] = cfg.PublishableKey
	return root
}

// IsProvider reports whether node is a provider-context wrapper.
func IsProvider(node *vdom.VNode) bool {
	if node == nil || node.Props == nil {
		return false
	}
	return node.Props["data-clerk-provider"] == "true"
}

// SignIn returns the pre-built Clerk sign-in form: a mount element plus
// the script that mounts the widget with the given options once ClerkJS
// has loaded.
func SignIn(opts Options) *vdom.VNode {
	return mountComponent("sign-in", "mountSignIn", SignInElementID, opts)
}

// SignUp returns the pre-built Clerk sign-up form.
func SignUp(opts Options) *vdom.VNode {
	return mountComponent("sign-up", "mountSignUp", SignUpElementID, opts)
}

// mountComponent builds the mount point div and its companion script.
func mountComponent(name, mountFn, elementID string, opts Options) *vdom.VNode {
	node := vdom.Div(
		vdom.ID(elementID),
		vdom.Data("clerk-component", name),
		vdom.Script(vdom.Raw(mountScript(mountFn, elementID, opts))),
	)
	node.Props[PropComponent] = name
	node.Props[PropOptions] = opts
	return node
}

// mountScript renders the inline script that mounts a widget. Mount
// options are JSON; encoding/json escapes <, > and & so the payload is
// safe inside a script element.
func mountScript(mountFn, elementID string, opts Options) string {
	payload, err := json.Marshal(opts.mountOptions())
	if err != nil {
		// Options are maps and strings; the only way Marshal fails is an
		// unsupported value smuggled through Extra. Surface it at install
		// time rather than emitting a broken page.
		panic(fmt.Sprintf("clerk: cannot serialize mount options: %v", err))
	}

	return fmt.Sprintf(`window.addEventListener("load",function(){`+
		`if(!window.Clerk){return;}`+
		`window.Clerk.load().then(function(){`+
		`window.Clerk.%s(document.getElementById(%q),%s);`+
		`});});`, mountFn, elementID, payload)
}

// ComponentOptions returns the options a form component was constructed
// with, if node is one.
func ComponentOptions(node *vdom.VNode) (Options, bool) {
	if node == nil || node.Props == nil {
		return Options{}, false
	}
	opts, ok := node.Props[PropOptions].(Options)
	return opts, ok
}

// FindComponent returns the form component of the given name inside a
// page tree.
func FindComponent(tree *vdom.VNode, name string) *vdom.VNode {
	return tree.Find(func(n *vdom.VNode) bool {
		return n.Props != nil && n.Props[PropComponent] == name
	})
}
