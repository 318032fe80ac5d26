// Package xmltree loads an XML document into a minimal element tree. Only
// element names, their character data and their child elements are kept,
// which is all the gluster --xml replies carry.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ErrEmptyDocument is returned when the input holds no root element
var ErrEmptyDocument = errors.New("xml document has no root element")

// Node is an XML element.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// New builds a node; handy for constructing trees in tests.
func New(name, text string, children ...*Node) *Node {
	return &Node{Name: name, Text: text, Children: children}
}

// Parse decodes data and returns its root element. Attributes, comments and
// processing instructions are dropped. Text is trimmed of surrounding
// whitespace.
func Parse(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("xml document has more than one root element")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Text = strings.TrimSpace(text[len(text)-1].String())
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

// Child returns the first child element called name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all child elements called name, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// ChildText returns the text of the first child called name and whether
// such a child exists.
func (n *Node) ChildText(name string) (string, bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	return c.Text, true
}

// Find follows a slash separated path of element names starting below n,
// taking the first match at every step.
func (n *Node) Find(path string) *Node {
	cur := n
	for _, name := range strings.Split(path, "/") {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// FindAll is like Find but collects every element matching the last path
// component, under every element matching the preceding ones.
func (n *Node) FindAll(path string) []*Node {
	if n == nil {
		return nil
	}
	names := strings.Split(path, "/")
	cur := []*Node{n}
	for _, name := range names {
		var next []*Node
		for _, c := range cur {
			next = append(next, c.ChildrenNamed(name)...)
		}
		cur = next
	}
	return cur
}
