package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/clerkmount/clerkmount/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Text("Hello, World!")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "Hello, World!" {
		t.Errorf("got %q, want %q", html, "Hello, World!")
	}
}

func TestRenderTextEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Text("<script>alert('xss')</script>")
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Class("container"),
		vdom.H1(vdom.Text("Title")),
		vdom.P(vdom.Text("Content")),
	)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `<div class="container">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, `<h1>Title</h1>`) {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, `<p>Content</p>`) {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestRenderAttributesSorted(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.StyleAttr("height:100vh"), vdom.Class("center"), vdom.ID("root"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div class="center" id="root" style="height:100vh"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Div(vdom.Data("value", `"><script>`))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, `"><script>`) {
		t.Errorf("attribute should be escaped, got %q", html)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Script(vdom.Async(), vdom.Src("/app.js"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<script async src="/app.js"></script>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderVoidElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Img(vdom.Src("/logo.png"), vdom.Alt("logo"))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<img alt="logo" src="/logo.png">`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
	if strings.Contains(html, "</img>") {
		t.Errorf("void element should not have closing tag, got %q", html)
	}
}

func TestRenderFragment(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Fragment(vdom.Span(vdom.Text("a")), vdom.Span(vdom.Text("b")))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<span>a</span><span>b</span>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	node := vdom.Raw(`<script>window.init()</script>`)
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<script>window.init()</script>` {
		t.Errorf("raw content should pass through unescaped, got %q", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderToWriter(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nil node should render nothing, got %q", buf.String())
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	node := vdom.Div(vdom.P(vdom.Text("x")))
	html, err := renderer.RenderToString(node)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output should contain newlines, got %q", html)
	}
}
