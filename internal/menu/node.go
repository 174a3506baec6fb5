package menu

import (
	"fmt"
	"sort"
	"strings"
)

// Node tags used by the toolbar tree.
const (
	TagBar       = "bar"
	TagFragment  = "fragment"
	TagItem      = "item"
	TagSeparator = "separator"
	TagDropdown  = "dropdown"
	TagSubmenu   = "submenu"
	TagToggle    = "toggle"
	TagPanel     = "panel"
)

// Class names toggled by element updates.
const (
	ClassBar       = "menubar"
	ClassFloating  = "floating"
	ClassItem      = "menu-item"
	ClassDisabled  = "disabled"
	ClassActive    = "active"
	ClassSeparator = "menu-separator"
	ClassDropdown  = "menu-dropdown"
	ClassSubmenu   = "menu-submenu"
	ClassOpen      = "open"
)

// Node is a retained display node. Each node belongs to exactly one element
// and is created once at render time; updates only flip its classes,
// attributes and hidden flag.
type Node struct {
	Tag      string
	Text     string
	Hidden   bool
	Children []*Node

	classes    map[string]struct{}
	attrs      map[string]string
	onActivate func()
}

// NewNode creates a node with the given tag and classes.
func NewNode(tag string, classes ...string) *Node {
	n := &Node{Tag: tag}
	for _, c := range classes {
		n.SetClass(c, true)
	}
	return n
}

// Append adds children in order.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetClass adds or removes a class.
func (n *Node) SetClass(name string, on bool) {
	if name == "" {
		return
	}
	if on {
		if n.classes == nil {
			n.classes = make(map[string]struct{})
		}
		n.classes[name] = struct{}{}
		return
	}
	delete(n.classes, name)
}

// HasClass reports whether the class is set.
func (n *Node) HasClass(name string) bool {
	_, ok := n.classes[name]
	return ok
}

// Classes returns the sorted class list.
func (n *Node) Classes() []string {
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SetAttr sets an attribute; an empty value removes it.
func (n *Node) SetAttr(key, value string) {
	if value == "" {
		delete(n.attrs, key)
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns an attribute value.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// OnActivate installs the activation handler (click or keyboard).
func (n *Node) OnActivate(fn func()) {
	n.onActivate = fn
}

// Activatable reports whether the node has an activation handler.
func (n *Node) Activatable() bool {
	return n.onActivate != nil
}

// Activate runs the activation handler. Hidden nodes are inert.
func (n *Node) Activate() bool {
	if n == nil || n.Hidden || n.onActivate == nil {
		return false
	}
	n.onActivate()
	return true
}

// Walk visits the tree depth first. Returning false from fn skips the
// node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Focusables lists visible activatable nodes in document order, skipping
// hidden subtrees.
func (n *Node) Focusables() []*Node {
	var out []*Node
	n.Walk(func(node *Node, _ int) bool {
		if node.Hidden {
			return false
		}
		if node.Activatable() {
			out = append(out, node)
		}
		return true
	})
	return out
}

// FindID returns the first node whose id attribute matches.
func (n *Node) FindID(id string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if v, ok := node.Attr("id"); ok && v == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// String renders the node as markup. The output depends only on the node
// state, so two dumps can be compared for equality.
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(n.Tag)
	if classes := n.Classes(); len(classes) > 0 {
		fmt.Fprintf(b, " class=%q", strings.Join(classes, " "))
	}
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%q", k, n.attrs[k])
	}
	if n.Hidden {
		b.WriteString(" hidden")
	}
	b.WriteString(">")
	b.WriteString(n.Text)
	for _, child := range n.Children {
		child.dump(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}
