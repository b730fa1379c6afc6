// Package parse builds a fragment tree from HTML text.
//
// The goal is a tree as close to the source as possible, not a browser-grade
// document: there is no implied <html>/<body> scaffolding, no foster
// parenting, and unknown tags are ordinary elements. Tag and attribute names
// are normalized to lower case, which is also what keeps them intrinsic
// elements on the JSX side.
package parse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/kilianc/h2x/internal/h2x/ast"
)

// voidTags is the standard HTML void-element list. These never take children
// and never carry a close tag in the source.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Parse tokenizes src and builds the fragment tree. It never fails:
//
//   - unclosed tags are auto-closed at end of input
//   - a close tag pops open elements up to and including the nearest open
//     element with the same tag name; with no such element it is dropped
//   - on a duplicated attribute the first occurrence wins
//   - doctype tokens are dropped
//
// Entity references in text and attribute values are decoded by the
// tokenizer. An empty input produces an empty (nil) sequence, not an error.
func Parse(src string) []ast.Node {
	z := html.NewTokenizer(strings.NewReader(src))

	var root []ast.Node
	var open []*ast.Element // stack of elements still under construction

	emit := func(n ast.Node) {
		if len(open) == 0 {
			root = append(root, n)
			return
		}
		top := open[len(open)-1]
		top.Children = append(top.Children, n)
	}

	// closeTop pops the innermost open element and attaches it to its parent.
	closeTop := func() {
		el := open[len(open)-1]
		open = open[:len(open)-1]
		emit(*el)
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// End of input. Whatever is still open was never closed in the
			// source; close it here so the tree is always complete.
			for len(open) > 0 {
				closeTop()
			}
			return root

		case html.TextToken:
			if txt := z.Token().Data; txt != "" {
				emit(ast.Text{Value: txt})
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			el := &ast.Element{
				Tag:   tok.Data,
				Attrs: collectAttrs(tok.Attr),
				Void:  voidTags[tok.Data],
			}
			// Void elements and explicitly self-closed tags (<div/>) are
			// complete as soon as they appear.
			if el.Void || tt == html.SelfClosingTagToken {
				emit(*el)
				continue
			}
			open = append(open, el)

		case html.EndTagToken:
			name := z.Token().Data
			// The tokenizer lower-cases tag names, so matching against the
			// open stack is effectively case-insensitive.
			at := -1
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].Tag == name {
					at = i
					break
				}
			}
			if at == -1 {
				continue // stray close tag, dropped
			}
			for len(open) > at {
				closeTop()
			}

		case html.CommentToken:
			emit(ast.Comment{Value: z.Token().Data})

		case html.DoctypeToken:
			// Fragments do not carry doctypes into JSX.
		}
	}
}

// collectAttrs converts tokenizer attributes, keeping the first occurrence of
// each key. An attribute with an empty value is indistinguishable from a
// valueless one at the token level; both become AttrBool, which the renderer
// turns into JSX shorthand.
func collectAttrs(attrs []html.Attribute) []ast.Attr {
	if len(attrs) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(attrs))
	out := make([]ast.Attr, 0, len(attrs))
	for _, a := range attrs {
		if seen[a.Key] {
			continue
		}
		seen[a.Key] = true
		kind := ast.AttrString
		if a.Val == "" {
			kind = ast.AttrBool
		}
		out = append(out, ast.Attr{Key: a.Key, Kind: kind, Value: a.Val})
	}
	return out
}
