package menu

import "github.com/atomicstack/editor-menubar/internal/doc"

type renderedGroup struct {
	separator *Node
	elements  []Rendered
	mounted   bool
}

// RenderGrouped renders groups of elements into one fragment node, with a
// separator between consecutive groups. Groups without elements are omitted.
// The returned update refreshes every element, hides separators that would
// sit next to an empty group, and reports whether anything is still mounted.
func RenderGrouped(env Env, groups [][]Element) Rendered {
	frag := NewNode(TagFragment)
	rendered := make([]*renderedGroup, 0, len(groups))
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		rg := &renderedGroup{mounted: true}
		if len(rendered) > 0 {
			rg.separator = NewNode(TagSeparator, ClassSeparator)
			frag.Append(rg.separator)
		}
		for _, el := range group {
			r := el.Render(env)
			frag.Append(r.Node)
			rg.elements = append(rg.elements, r)
		}
		rendered = append(rendered, rg)
	}

	update := func(s doc.State) bool {
		something := false
		for _, rg := range rendered {
			rg.mounted = false
			for _, r := range rg.elements {
				ok := r.Update(s)
				r.Node.Hidden = !ok
				if ok {
					rg.mounted = true
				}
			}
			if rg.separator != nil {
				rg.separator.Hidden = !(something && rg.mounted)
			}
			if rg.mounted {
				something = true
			}
		}
		return something
	}
	return Rendered{Node: frag, Update: update}
}
