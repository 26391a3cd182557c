package el

import (
	"testing"

	"github.com/clerkmount/clerkmount/pkg/vdom"
)

func TestDSLBuildsVdomNodes(t *testing.T) {
	node := Div(Class("wrap"),
		H1(Text("hi")),
		A(Href("/signin"), Text("go")),
	)

	if node.Kind != vdom.KindElement || node.Tag != "div" {
		t.Fatalf("node = %v %q, want div element", node.Kind, node.Tag)
	}
	if node.Props["class"] != "wrap" {
		t.Errorf("class = %v, want wrap", node.Props["class"])
	}
	if len(node.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(node.Children))
	}
	if node.Children[1].Props["href"] != "/signin" {
		t.Errorf("href = %v, want /signin", node.Children[1].Props["href"])
	}
}

func TestDSLHelpers(t *testing.T) {
	if If(false, Div()) != nil {
		t.Error("If(false) should be nil")
	}
	frag := Fragment(Span(), Span())
	if frag.Kind != vdom.KindFragment || len(frag.Children) != 2 {
		t.Errorf("fragment = %v with %d children", frag.Kind, len(frag.Children))
	}
	if Nothing().Kind != vdom.KindFragment {
		t.Error("Nothing should be an empty fragment")
	}
}
