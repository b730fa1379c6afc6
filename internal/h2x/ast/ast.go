package ast

type Node interface {
	node()
}

// Text is a run of character data. Entity references are decoded before the
// run is stored.
type Text struct {
	Value string
}

func (Text) node() {}

// Comment is the body of a <!-- ... --> comment, delimiters excluded.
type Comment struct {
	Value string
}

func (Comment) node() {}

type AttrKind int

const (
	// AttrBool marks a valueless attribute, e.g. <input disabled>.
	AttrBool AttrKind = iota
	AttrString
)

type Attr struct {
	Key  string
	Kind AttrKind
	// Value is the decoded literal string (for AttrString).
	Value string
}

type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
	// Void marks tags that never take children and never carry a close tag
	// in the source (br, img, input, ...).
	Void bool
}

func (Element) node() {}
