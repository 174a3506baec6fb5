package menu

import (
	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
)

const (
	dropdownArrow = "▾"
	submenuArrow  = "▸"
)

// Dropdown is a labelled toggle that reveals its children in a popover panel.
type Dropdown struct {
	ID       string
	Label    string
	Title    string
	Class    string
	Children []Element
}

// DropdownSubmenu is a dropdown that expands inline inside its parent's panel.
type DropdownSubmenu struct {
	ID       string
	Label    string
	Children []Element
}

// Render builds the dropdown node tree.
func (d *Dropdown) Render(env Env) Rendered {
	return renderDropdown(env, dropdownSpec{
		id:       d.ID,
		label:    d.Label,
		title:    d.Title,
		class:    d.Class,
		children: d.Children,
	})
}

// Render builds the submenu node tree.
func (d *DropdownSubmenu) Render(env Env) Rendered {
	return renderDropdown(env, dropdownSpec{
		id:       d.ID,
		label:    d.Label,
		children: d.Children,
		inline:   true,
	})
}

type dropdownSpec struct {
	id, label, title, class string
	children                []Element
	inline                  bool
}

// dropdownState is the per-instance state owned by one rendered dropdown.
type dropdownState struct {
	spec   dropdownSpec
	open   bool
	node   *Node
	toggle *Node
	panel  *Node
	// nested tracks the dropdowns rendered inside this one's panel.
	nested *openSet
}

func renderDropdown(env Env, spec dropdownSpec) Rendered {
	d := &dropdownState{spec: spec, nested: &openSet{exclusive: true}}
	tag, class, arrow := TagDropdown, ClassDropdown, dropdownArrow
	if spec.inline {
		tag, class, arrow = TagSubmenu, ClassSubmenu, submenuArrow
	}
	d.node = NewNode(tag, class, spec.class)
	d.node.SetAttr("id", spec.id)
	d.node.SetAttr("label", spec.label)
	d.toggle = NewNode(TagToggle)
	d.toggle.Text = spec.label + " " + arrow
	d.toggle.SetAttr("title", spec.title)
	d.panel = NewNode(TagPanel)
	d.panel.Hidden = true

	childEnv := Env{
		View:     env.View,
		Reporter: env.Reporter,
		siblings: d.nested,
		afterRun: func() {
			d.close()
			env.ran()
		},
	}
	content := RenderGrouped(childEnv, [][]Element{spec.children})
	d.panel.Append(content.Node)
	d.node.Append(d.toggle, d.panel)

	if env.siblings != nil {
		env.siblings.add(d)
	}
	d.toggle.OnActivate(func() {
		if d.open {
			d.close()
			return
		}
		if env.siblings != nil {
			env.siblings.opening(d)
		}
		d.setOpen(true)
	})

	update := func(s doc.State) bool {
		ok := content.Update(s)
		d.node.Hidden = !ok
		if !ok {
			d.close()
		}
		return ok
	}
	return Rendered{Node: d.node, Update: update}
}

func (d *dropdownState) setOpen(open bool) {
	if d.open == open {
		return
	}
	d.open = open
	d.node.SetClass(ClassOpen, open)
	d.panel.Hidden = !open
	if open {
		events.Dropdown.Open(d.spec.label, d.spec.inline)
	} else {
		events.Dropdown.Close(d.spec.label, d.spec.inline)
	}
}

// close closes the dropdown and everything opened inside it.
func (d *dropdownState) close() {
	d.nested.closeAll()
	d.setOpen(false)
}

// openSet coordinates dropdowns that share a container. When exclusive,
// opening one member closes the others.
type openSet struct {
	exclusive bool
	members   []*dropdownState
}

func (o *openSet) add(d *dropdownState) {
	o.members = append(o.members, d)
}

func (o *openSet) opening(d *dropdownState) {
	if !o.exclusive {
		return
	}
	for _, m := range o.members {
		if m != d {
			m.close()
		}
	}
}

func (o *openSet) closeAll() {
	for _, m := range o.members {
		m.close()
	}
}

func (o *openSet) openCount() int {
	n := 0
	for _, m := range o.members {
		if m.open {
			n++
		}
	}
	return n
}
