package menu

import (
	"errors"
	"fmt"
	"reflect"
)

// Layout is the declarative toolbar: an ordered list of groups of elements.
type Layout [][]Element

var (
	ErrNilElement     = errors.New("nil menu element")
	ErrSharedElement  = errors.New("menu element appears more than once")
	ErrMissingCommand = errors.New("menu item has no command")
	ErrEmptyDropdown  = errors.New("dropdown has no children")
	ErrDuplicateID    = errors.New("duplicate menu element id")
)

// Validate checks the layout before anything is rendered: every element is
// non-nil, no element has two parents or contains itself, items are bound to
// a command, dropdowns have children and ids are unique.
func Validate(layout Layout) error {
	v := validator{seen: make(map[uintptr]bool), ids: make(map[string]string)}
	for gi, group := range layout {
		for ei, el := range group {
			if err := v.element(el, fmt.Sprintf("group %d element %d", gi, ei)); err != nil {
				return err
			}
		}
	}
	return nil
}

type validator struct {
	seen map[uintptr]bool
	ids  map[string]string
}

func (v *validator) element(el Element, path string) error {
	if el == nil {
		return fmt.Errorf("%s: %w", path, ErrNilElement)
	}
	if rv := reflect.ValueOf(el); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return fmt.Errorf("%s: %w", path, ErrNilElement)
		}
		if v.seen[rv.Pointer()] {
			return fmt.Errorf("%s: %w", path, ErrSharedElement)
		}
		v.seen[rv.Pointer()] = true
	}
	switch e := el.(type) {
	case *MenuItem:
		if e.Run == nil {
			return fmt.Errorf("%s (%s): %w", path, e.name(), ErrMissingCommand)
		}
		return v.id(e.ID, path)
	case *Dropdown:
		if err := v.id(e.ID, path); err != nil {
			return err
		}
		return v.children(e.Children, path+" > "+e.Label)
	case *DropdownSubmenu:
		if err := v.id(e.ID, path); err != nil {
			return err
		}
		return v.children(e.Children, path+" > "+e.Label)
	}
	return nil
}

func (v *validator) children(children []Element, path string) error {
	if len(children) == 0 {
		return fmt.Errorf("%s: %w", path, ErrEmptyDropdown)
	}
	for i, child := range children {
		if err := v.element(child, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) id(id, path string) error {
	if id == "" {
		return nil
	}
	if prev, ok := v.ids[id]; ok {
		return fmt.Errorf("%s: %w %q (first used at %s)", path, ErrDuplicateID, id, prev)
	}
	v.ids[id] = path
	return nil
}

// Registry indexes rendered toolbar nodes by element id.
type Registry struct {
	nodes   map[string]*Node
	order   []string
	parents map[*Node]*Node
}

func buildRegistry(root *Node) *Registry {
	r := &Registry{nodes: make(map[string]*Node), parents: make(map[*Node]*Node)}
	var walk func(n *Node)
	walk = func(n *Node) {
		if id, ok := n.Attr("id"); ok {
			r.nodes[id] = n
			r.order = append(r.order, id)
		}
		for _, child := range n.Children {
			r.parents[child] = n
			walk(child)
		}
	}
	walk(root)
	return r
}

// shown reports whether n and all of its ancestors are visible.
func (r *Registry) shown(n *Node) bool {
	for ; n != nil; n = r.parents[n] {
		if n.Hidden {
			return false
		}
	}
	return true
}

// Find locates a node by element id.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// IDs returns element ids in toolbar order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Activate activates the element with the given id. Items run even inside
// a closed dropdown. For dropdowns the toggle is activated, and only while
// the dropdown is shown, so a submenu never opens under a closed parent.
func (r *Registry) Activate(id string) bool {
	node, ok := r.nodes[id]
	if !ok {
		return false
	}
	if node.Tag == TagDropdown || node.Tag == TagSubmenu {
		for _, child := range node.Children {
			if child.Tag == TagToggle {
				if !r.shown(node) {
					return false
				}
				return child.Activate()
			}
		}
	}
	return node.Activate()
}

// Entry is a flat view of one toolbar item, used by listings such as the
// command palette.
type Entry struct {
	ID       string
	Label    string
	Path     []string
	Disabled bool
	Active   bool
}

// Entries lists the mounted items of the bar in toolbar order. Items inside
// closed dropdowns are included; items hidden by Select are not.
func (b *Bar) Entries() []Entry {
	var out []Entry
	var walk func(n *Node, path []string)
	walk = func(n *Node, path []string) {
		if n.Hidden && n.Tag != TagPanel {
			return
		}
		switch n.Tag {
		case TagItem:
			id, _ := n.Attr("id")
			label, ok := n.Attr("title")
			if !ok {
				label = n.Text
			}
			out = append(out, Entry{
				ID:       id,
				Label:    label,
				Path:     append([]string(nil), path...),
				Disabled: n.HasClass(ClassDisabled),
				Active:   n.HasClass(ClassActive),
			})
			return
		case TagDropdown, TagSubmenu:
			if label, ok := n.Attr("label"); ok {
				path = append(path[:len(path):len(path)], label)
			}
		}
		for _, child := range n.Children {
			walk(child, path)
		}
	}
	walk(b.node, nil)
	return out
}
