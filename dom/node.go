// Package dom provides a minimal in-memory element/text/document node
// tree and a style.Host adapter over it.
//
// This is deliberately not an HTML parser: it exists so tests and
// cmd/cssdump have something to build selector-matching fixtures out of
// by hand, and so the style package's Host contract has one concrete,
// non-mock implementation to be exercised against.
package dom

import (
	"fmt"

	"github.com/lukehoban/cssengine/style"
)

// NodeType represents the type of a DOM node.
type NodeType int

const (
	// ElementNode represents a tagged element (e.g., <div>, <p>)
	ElementNode NodeType = iota
	// TextNode represents text content within an element
	TextNode
	// DocumentNode represents the root document node
	DocumentNode
)

// Node represents a node in the document tree.
type Node struct {
	Type       NodeType
	Data       string            // Tag name for elements, text content for text nodes
	Attributes map[string]string // Attributes for element nodes
	Children   []*Node           // Child nodes
	Parent     *Node             // Parent node (nil for root)
}

// NewElement creates a new element node with the given tag name.
func NewElement(tagName string) *Node {
	return &Node{
		Type:       ElementNode,
		Data:       tagName,
		Attributes: make(map[string]string),
		Children:   []*Node{},
	}
}

// NewText creates a new text node with the given content.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Data: text}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return &Node{Type: DocumentNode, Data: "#document"}
}

// AppendChild adds a child node to this node.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// GetAttribute returns the value of an attribute, or empty string if not found.
func (n *Node) GetAttribute(name string) string {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[name]
}

// SetAttribute sets an attribute on this node.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
}

// ID returns the element's ID attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// Classes returns the element's class names as a slice.
func (n *Node) Classes() []string {
	class := n.GetAttribute("class")
	if class == "" {
		return nil
	}
	// Simple space-separated class parsing
	var classes []string
	start := 0
	for i := 0; i <= len(class); i++ {
		if i == len(class) || class[i] == ' ' {
			if i > start {
				classes = append(classes, class[start:i])
			}
			start = i + 1
		}
	}
	return classes
}

// prevElementSibling returns n's immediately preceding ElementNode
// sibling, skipping over text nodes, as CSS's adjacent-sibling
// combinator requires.
func prevElementSibling(n *Node) (*Node, bool) {
	if n.Parent == nil {
		return nil, false
	}
	siblings := n.Parent.Children
	idx := -1
	for i, s := range siblings {
		if s == n {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return nil, false
	}
	for i := idx - 1; i >= 0; i-- {
		if siblings[i].Type == ElementNode {
			return siblings[i], true
		}
	}
	return nil, false
}

// Host adapts *Node to style.Host. It is stateless; a single value can
// be shared across concurrent Select calls.
type Host struct{}

func asNode(n style.Node) (*Node, error) {
	node, ok := n.(*Node)
	if !ok {
		return nil, fmt.Errorf("dom: not a *dom.Node: %T", n)
	}
	return node, nil
}

func (Host) NodeName(n style.Node) (string, error) {
	node, err := asNode(n)
	if err != nil {
		return "", err
	}
	return node.Data, nil
}

func (h Host) NamedAncestorNode(n style.Node, name string) (style.Node, bool, error) {
	node, err := asNode(n)
	if err != nil {
		return nil, false, err
	}
	for cur := node.Parent; cur != nil; cur = cur.Parent {
		if cur.Type == ElementNode && cur.Data == name {
			return cur, true, nil
		}
	}
	return nil, false, nil
}

func (h Host) NamedParentNode(n style.Node, name string) (style.Node, bool, error) {
	node, err := asNode(n)
	if err != nil {
		return nil, false, err
	}
	p := node.Parent
	if p == nil || p.Type != ElementNode || p.Data != name {
		return nil, false, nil
	}
	return p, true, nil
}

func (h Host) NamedSiblingNode(n style.Node, name string) (style.Node, bool, error) {
	node, err := asNode(n)
	if err != nil {
		return nil, false, err
	}
	sib, ok := prevElementSibling(node)
	if !ok || sib.Data != name {
		return nil, false, nil
	}
	return sib, true, nil
}

func (h Host) ParentNode(n style.Node) (style.Node, bool, error) {
	node, err := asNode(n)
	if err != nil {
		return nil, false, err
	}
	p := node.Parent
	if p == nil || p.Type != ElementNode {
		return nil, false, nil
	}
	return p, true, nil
}

func (h Host) SiblingNode(n style.Node) (style.Node, bool, error) {
	node, err := asNode(n)
	if err != nil {
		return nil, false, err
	}
	sib, ok := prevElementSibling(node)
	if !ok {
		return nil, false, nil
	}
	return sib, true, nil
}

func (h Host) NodeHasClass(n style.Node, class string) (bool, error) {
	node, err := asNode(n)
	if err != nil {
		return false, err
	}
	for _, c := range node.Classes() {
		if c == class {
			return true, nil
		}
	}
	return false, nil
}

func (h Host) NodeHasID(n style.Node, id string) (bool, error) {
	node, err := asNode(n)
	if err != nil {
		return false, err
	}
	return node.ID() == id, nil
}

func (h Host) NodeHasAttribute(n style.Node, name string) (bool, error) {
	node, err := asNode(n)
	if err != nil {
		return false, err
	}
	if node.Attributes == nil {
		return false, nil
	}
	_, ok := node.Attributes[name]
	return ok, nil
}

func (h Host) NodeHasAttributeEqual(n style.Node, name, value string) (bool, error) {
	node, err := asNode(n)
	if err != nil {
		return false, err
	}
	v, ok := node.Attributes[name]
	return ok && v == value, nil
}

// NodeHasAttributeDashmatch implements CSS 2.1's "|=" operator: the
// attribute value is either exactly value or begins with value followed
// by a hyphen (e.g. lang="en-US" dash-matches "en").
func (h Host) NodeHasAttributeDashmatch(n style.Node, name, value string) (bool, error) {
	node, err := asNode(n)
	if err != nil {
		return false, err
	}
	v, ok := node.Attributes[name]
	if !ok {
		return false, nil
	}
	if v == value {
		return true, nil
	}
	return len(v) > len(value) && v[:len(value)] == value && v[len(value)] == '-', nil
}

// NodeHasAttributeIncludes implements CSS 2.1's "~=" operator: value
// must appear as one space-separated word of the attribute's value (only
// the ' ' byte separates words).
func (h Host) NodeHasAttributeIncludes(n style.Node, name, value string) (bool, error) {
	node, err := asNode(n)
	if err != nil {
		return false, err
	}
	v, ok := node.Attributes[name]
	if !ok || value == "" {
		return false, nil
	}
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == ' ' {
			if v[start:i] == value {
				return true, nil
			}
			start = i + 1
		}
	}
	return false, nil
}
