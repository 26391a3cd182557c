package clerkmount

import (
	"fmt"

	"github.com/clerkmount/clerkmount/pkg/vdom"
)

// spacingScale maps the spacing scale used by the stacked layout to CSS
// lengths, in px. Index is the scale step.
var spacingScale = []int{0, 4, 8, 12, 16, 24, 32, 40, 48, 64}

// formSpacing is the scale step between stacked elements on the auth pages.
const formSpacing = 7

// center wraps a node in a full-viewport flex container that centers its
// content both ways.
func center(child *vdom.VNode) *vdom.VNode {
	return vdom.Div(
		vdom.StyleAttr("display:flex;align-items:center;justify-content:center;height:100vh"),
		child,
	)
}

// vstack stacks children vertically, center-aligned, with a fixed gap
// from the spacing scale.
func vstack(spacing int, children ...*vdom.VNode) *vdom.VNode {
	if spacing < 0 || spacing >= len(spacingScale) {
		spacing = len(spacingScale) - 1
	}
	style := fmt.Sprintf("display:flex;flex-direction:column;align-items:center;gap:%dpx", spacingScale[spacing])

	args := make([]any, 0, len(children)+1)
	args = append(args, vdom.StyleAttr(style))
	for _, child := range children {
		args = append(args, child)
	}
	return vdom.Div(args...)
}
