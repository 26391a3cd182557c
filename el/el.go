package el

import "github.com/clerkmount/clerkmount/pkg/vdom"

// Type aliases for the node primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
type Attr = vdom.Attr

// Element constructors.
func Html(args ...any) *VNode     { return vdom.Html(args...) }
func Head(args ...any) *VNode     { return vdom.Head(args...) }
func Body(args ...any) *VNode     { return vdom.Body(args...) }
func Title(args ...any) *VNode    { return vdom.Title(args...) }
func Meta(args ...any) *VNode     { return vdom.Meta(args...) }
func LinkEl(args ...any) *VNode   { return vdom.LinkEl(args...) }
func Header(args ...any) *VNode   { return vdom.Header(args...) }
func Footer(args ...any) *VNode   { return vdom.Footer(args...) }
func Main(args ...any) *VNode     { return vdom.Main(args...) }
func Nav(args ...any) *VNode      { return vdom.Nav(args...) }
func Section(args ...any) *VNode  { return vdom.Section(args...) }
func Div(args ...any) *VNode      { return vdom.Div(args...) }
func H1(args ...any) *VNode       { return vdom.H1(args...) }
func H2(args ...any) *VNode       { return vdom.H2(args...) }
func H3(args ...any) *VNode       { return vdom.H3(args...) }
func P(args ...any) *VNode        { return vdom.P(args...) }
func Span(args ...any) *VNode     { return vdom.Span(args...) }
func Pre(args ...any) *VNode      { return vdom.Pre(args...) }
func A(args ...any) *VNode        { return vdom.A(args...) }
func Img(args ...any) *VNode      { return vdom.Img(args...) }
func Script(args ...any) *VNode   { return vdom.Script(args...) }
func Noscript(args ...any) *VNode { return vdom.Noscript(args...) }
func StyleEl(args ...any) *VNode  { return vdom.StyleEl(args...) }

// Helpers.
func Text(content string) *VNode               { return vdom.Text(content) }
func Textf(format string, args ...any) *VNode  { return vdom.Textf(format, args...) }
func Raw(html string) *VNode                   { return vdom.Raw(html) }
func Fragment(children ...any) *VNode          { return vdom.Fragment(children...) }
func Group(children ...any) *VNode             { return vdom.Group(children...) }
func If(condition bool, node *VNode) *VNode    { return vdom.If(condition, node) }
func Nothing() *VNode                          { return vdom.Nothing() }

// Attribute helpers.
func ID(id string) Attr                 { return vdom.ID(id) }
func Class(classes ...string) Attr      { return vdom.Class(classes...) }
func StyleAttr(style string) Attr       { return vdom.StyleAttr(style) }
func Data(key, value string) Attr       { return vdom.Data(key, value) }
func Lang(lang string) Attr             { return vdom.Lang(lang) }
func Href(url string) Attr              { return vdom.Href(url) }
func Rel(rel string) Attr               { return vdom.Rel(rel) }
func Src(src string) Attr               { return vdom.Src(src) }
func Alt(alt string) Attr               { return vdom.Alt(alt) }
func Type(t string) Attr                { return vdom.Type(t) }
func Name(name string) Attr             { return vdom.Name(name) }
func Content(content string) Attr       { return vdom.Content(content) }
func Charset(charset string) Attr       { return vdom.Charset(charset) }
func Async() Attr                       { return vdom.Async() }
func Defer() Attr                       { return vdom.Defer() }
func CrossOrigin(mode string) Attr      { return vdom.CrossOrigin(mode) }
func Role(role string) Attr             { return vdom.Role(role) }
func AriaLabel(label string) Attr       { return vdom.AriaLabel(label) }
func IsVoidElement(tag string) bool     { return vdom.IsVoidElement(tag) }
