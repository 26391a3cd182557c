package clerkmount

import (
	"strings"
	"testing"

	"github.com/clerkmount/clerkmount/pkg/vdom"
)

func TestCenterWrapsChild(t *testing.T) {
	child := vdom.Div(vdom.ID("x"))
	c := center(child)

	if len(c.Children) != 1 || c.Children[0] != child {
		t.Fatal("center should wrap exactly the given child")
	}
	style, _ := c.Props["style"].(string)
	for _, want := range []string{"display:flex", "align-items:center", "height:100vh"} {
		if !strings.Contains(style, want) {
			t.Errorf("style %q missing %q", style, want)
		}
	}
}

func TestVStackSpacing(t *testing.T) {
	s := vstack(7, vdom.Div(), vdom.Div())

	style, _ := s.Props["style"].(string)
	if !strings.Contains(style, "gap:40px") {
		t.Errorf("style %q missing 40px gap for scale step 7", style)
	}
	if len(s.Children) != 2 {
		t.Errorf("len(Children) = %d, want 2", len(s.Children))
	}
}

func TestVStackSpacingClamped(t *testing.T) {
	s := vstack(99, vdom.Div())
	style, _ := s.Props["style"].(string)
	if !strings.Contains(style, "gap:64px") {
		t.Errorf("out-of-range spacing should clamp to the top of the scale, got %q", style)
	}
}
