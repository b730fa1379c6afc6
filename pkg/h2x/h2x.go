// Package h2x converts HTML fragments into JSX fragments.
package h2x

import (
	"github.com/kilianc/h2x/internal/h2x/jsx"
	"github.com/kilianc/h2x/internal/h2x/parse"
)

// ErrResourceExhausted is the only error kind conversion can produce, and
// only on pathological nesting depth. Malformed markup never fails; it is
// resolved by the documented recovery and fallback rules.
var ErrResourceExhausted = jsx.ErrResourceExhausted

// Options configures conversion. The zero value means the documented
// defaults; the translation tables themselves are fixed.
type Options struct {
	// Indent is the per-depth indent unit. Empty means two spaces.
	Indent string
}

// ConvertString converts an HTML fragment into a single JSX expression.
// Multiple top-level nodes are wrapped in a fragment; empty input converts
// to the empty string.
func ConvertString(src string) (string, error) {
	return ConvertStringOptions(src, Options{})
}

// ConvertStringOptions is ConvertString with explicit options.
func ConvertStringOptions(src string, opts Options) (string, error) {
	return jsx.Render(parse.Parse(src), jsx.Options{Indent: opts.Indent})
}

// Convert is ConvertString over raw bytes.
func Convert(src []byte) ([]byte, error) {
	out, err := ConvertString(string(src))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
