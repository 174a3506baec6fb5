package menu

import "github.com/atomicstack/editor-menubar/internal/doc"

// Element is anything that can sit in the toolbar tree.
type Element interface {
	Render(env Env) Rendered
}

// Rendered is the result of rendering an element once: its node and the
// function that refreshes it for a new state. Update returns false when the
// element is currently inapplicable and has hidden itself.
type Rendered struct {
	Node   *Node
	Update func(doc.State) bool
}

// Env carries what elements need while rendering: the host view, the
// failure sink and the coordination hooks of the enclosing container.
type Env struct {
	View     doc.View
	Reporter Reporter

	afterRun func()
	siblings *openSet
}

func (e Env) ran() {
	if e.afterRun != nil {
		e.afterRun()
	}
}

// MenuItem is a leaf entry: a label or icon bound to a command.
type MenuItem struct {
	Binding
	ID    string
	Label string
	Icon  string
	Title string
	Class string
}

func (it *MenuItem) name() string {
	switch {
	case it.Title != "":
		return it.Title
	case it.Label != "":
		return it.Label
	default:
		return it.ID
	}
}

// Render builds the item node and its update function.
func (it *MenuItem) Render(env Env) Rendered {
	node := NewNode(TagItem, ClassItem, it.Class)
	node.Text = it.Label
	if it.Icon != "" {
		node.Text = it.Icon
	}
	node.SetAttr("title", it.Title)
	node.SetAttr("id", it.ID)
	name := it.name()

	node.OnActivate(func() {
		if it.Invoke(env.View, name, env.Reporter) {
			env.ran()
		}
	})

	update := func(s doc.State) bool {
		if it.Select != nil {
			selected := it.selected(s, name, env.Reporter)
			node.Hidden = !selected
			if !selected {
				return false
			}
		}
		enabled := it.enabled(s, name, env.Reporter)
		node.SetClass(ClassDisabled, !enabled)
		if enabled {
			node.SetAttr("aria-disabled", "")
		} else {
			node.SetAttr("aria-disabled", "true")
		}
		node.SetClass(ClassActive, it.active(s, name, env.Reporter))
		return true
	}
	return Rendered{Node: node, Update: update}
}
