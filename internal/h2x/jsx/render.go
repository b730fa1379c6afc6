// Package jsx serializes a parsed fragment tree as JSX text.
package jsx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kilianc/h2x/internal/h2x/ast"
)

// defaultIndent is the per-depth indent unit.
const defaultIndent = "  "

// maxDepth bounds the render walk. The parser builds its tree iteratively and
// cannot overflow, but rendering a pathologically nested tree recursively
// could, so the walk fails past this depth instead.
const maxDepth = 4096

var (
	// ErrResourceExhausted is the only failure kind rendering can produce.
	// Malformed markup is never an error; it is resolved by the fallback
	// rules below.
	ErrResourceExhausted = errors.New("resource exhausted")

	ErrDepthExceeded = fmt.Errorf("nesting depth exceeds %d: %w", maxDepth, ErrResourceExhausted)
)

type Options struct {
	// Indent is the per-depth indent unit. Empty means two spaces.
	Indent string
}

// Render serializes nodes as a single JSX expression:
//
//   - attribute names are renamed per the fixed tables in tables.go; names
//     not in a table (data-*, aria-*, anything unknown) pass through as-is
//   - style attribute strings become object expressions, one camelCased
//     property per parseable declaration
//   - valueless attributes render as bare-name shorthand
//   - void elements and childless elements self-close
//   - comments become {/* ... */}
//   - text containing JSX-significant characters is wrapped as a string
//     expression
//   - more than one top-level node is wrapped in a fragment (<>...</>)
//   - output is re-indented from scratch; whitespace-only text between
//     siblings is dropped and remaining text runs are whitespace-collapsed
//
// An empty (or whitespace-only) input renders as the empty string.
func Render(nodes []ast.Node, opts Options) (string, error) {
	indent := opts.Indent
	if indent == "" {
		indent = defaultIndent
	}
	r := &renderer{indent: indent}

	top := renderable(nodes)
	if len(top) == 0 {
		return "", nil
	}
	if len(top) == 1 {
		if err := r.node(top[0], 0); err != nil {
			return "", err
		}
		return strings.Join(r.lines, "\n"), nil
	}

	r.line(0, "<>")
	for _, n := range top {
		if err := r.node(n, 1); err != nil {
			return "", err
		}
	}
	r.line(0, "</>")
	return strings.Join(r.lines, "\n"), nil
}

type renderer struct {
	indent string
	lines  []string
}

func (r *renderer) line(depth int, s string) {
	r.lines = append(r.lines, strings.Repeat(r.indent, depth)+s)
}

func (r *renderer) node(n ast.Node, depth int) error {
	if depth > maxDepth {
		return ErrDepthExceeded
	}
	switch t := n.(type) {
	case ast.Text:
		r.line(depth, renderText(t.Value))
		return nil
	case ast.Comment:
		r.line(depth, renderComment(t.Value))
		return nil
	case ast.Element:
		return r.element(t, depth)
	default:
		// The parser only produces the three variants above; anything else
		// is dropped rather than failing the whole conversion.
		return nil
	}
}

func (r *renderer) element(el ast.Element, depth int) error {
	var open strings.Builder
	open.WriteString("<" + el.Tag)
	for _, a := range el.Attrs {
		open.WriteString(" " + renderAttr(a))
	}

	kids := renderable(el.Children)
	if el.Void || len(kids) == 0 {
		r.line(depth, open.String()+" />")
		return nil
	}

	// A lone text child stays on one line.
	if t, ok := kids[0].(ast.Text); ok && len(kids) == 1 {
		r.line(depth, open.String()+">"+renderText(t.Value)+"</"+el.Tag+">")
		return nil
	}

	r.line(depth, open.String()+">")
	for _, c := range kids {
		if err := r.node(c, depth+1); err != nil {
			return err
		}
	}
	r.line(depth, "</"+el.Tag+">")
	return nil
}

// renderable drops whitespace-only text runs and collapses runs of
// whitespace inside the ones that remain.
func renderable(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		t, ok := n.(ast.Text)
		if !ok {
			out = append(out, n)
			continue
		}
		collapsed := strings.Join(strings.Fields(t.Value), " ")
		if collapsed == "" {
			continue
		}
		out = append(out, ast.Text{Value: collapsed})
	}
	return out
}

func renderAttr(a ast.Attr) string {
	name := jsxAttrName(a.Key)
	if a.Kind == ast.AttrBool {
		return name
	}
	if a.Key == "style" {
		if expr, ok := styleExpr(a.Value); ok {
			return name + "=" + expr
		}
		// Nothing in the style string parsed; fall through and emit it
		// verbatim as a plain quoted attribute.
	}
	return name + "=" + quoteAttr(a.Value)
}

// quoteAttr re-quotes an attribute value. Double quotes by default; a value
// containing a double quote switches to single quotes; a value containing
// both kinds becomes a string expression so the quoting is never invalid.
func quoteAttr(val string) string {
	if !strings.Contains(val, `"`) {
		return `"` + val + `"`
	}
	if !strings.Contains(val, "'") {
		return "'" + val + "'"
	}
	return "{" + strconv.Quote(val) + "}"
}

// styleExpr converts a CSS declaration string into a JSX object expression.
// Declarations without a colon, or with an empty key or value, are skipped
// individually. Returns false when no declaration survives.
func styleExpr(css string) (string, bool) {
	var props []string
	for _, decl := range strings.Split(css, ";") {
		k, v, found := strings.Cut(decl, ":")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !found || k == "" || v == "" {
			continue
		}
		props = append(props, styleKey(k)+": "+strconv.Quote(v))
	}
	if len(props) == 0 {
		return "", false
	}
	return "{{" + strings.Join(props, ", ") + "}}", true
}

// styleKey camelCases a CSS property name. Custom properties (--foo) keep
// their spelling, quoted. A leading hyphen (vendor prefix) capitalizes the
// first word too: -webkit-transition -> WebkitTransition.
func styleKey(k string) string {
	if strings.HasPrefix(k, "--") {
		return strconv.Quote(k)
	}
	var b strings.Builder
	for i, seg := range strings.Split(k, "-") {
		if seg == "" {
			continue
		}
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]) + seg[1:])
	}
	return b.String()
}

// renderText passes character data through, except that text containing a
// JSX-significant character ({, }, <, >) is emitted as a quoted string
// expression so none of it is read as markup or an expression delimiter.
func renderText(s string) string {
	if strings.ContainsAny(s, "{}<>") {
		return "{" + strconv.Quote(s) + "}"
	}
	return s
}

// renderComment emits a JSX comment. A body containing the comment
// terminator has it broken with a space so the output stays well formed.
func renderComment(body string) string {
	body = strings.TrimSpace(body)
	body = strings.ReplaceAll(body, "*/", "* /")
	if body == "" {
		return "{/* */}"
	}
	return "{/* " + body + " */}"
}
