package menu

import (
	"strings"

	"github.com/atomicstack/editor-menubar/internal/doc"
)

// Icons used by the default toolbar.
var Icons = struct {
	Strong, Em, Undo, Redo string
}{
	Strong: "B",
	Em:     "I",
	Undo:   "↶",
	Redo:   "↷",
}

// ItemOptions describes a command item. Label defaults to Title.
type ItemOptions struct {
	ID     string
	Title  string
	Label  string
	Icon   string
	Class  string
	Enable Predicate
	Select Predicate
	Active Predicate
	// EnableByCommand derives Enable from a dry run of the command instead
	// of deriving Select from it.
	EnableByCommand bool
}

// CmdItem wraps cmd in a menu item. Unless the options already gate the
// item, a dry run of the command decides it: by default as Select, hiding
// the item when the command does not apply, or as Enable when
// EnableByCommand is set.
func CmdItem(cmd doc.Command, opts ItemOptions) *MenuItem {
	item := &MenuItem{
		Binding: Binding{
			Run:    cmd,
			Enable: opts.Enable,
			Select: opts.Select,
			Active: opts.Active,
		},
		ID:    opts.ID,
		Label: opts.Label,
		Icon:  opts.Icon,
		Title: opts.Title,
		Class: opts.Class,
	}
	if item.Label == "" {
		item.Label = opts.Title
	}
	if (opts.Enable == nil || opts.EnableByCommand) && opts.Select == nil {
		dryRun := func(s doc.State) bool { return cmd(s, nil, nil) }
		if opts.EnableByCommand {
			item.Enable = dryRun
		} else {
			item.Select = dryRun
		}
	}
	return item
}

// MarkItem builds an item that toggles mark and shows as active while the
// selection carries it.
func MarkItem(mark doc.MarkSet, opts ItemOptions) *MenuItem {
	if opts.Active == nil {
		opts.Active = func(s doc.State) bool { return doc.MarkActive(s, mark) }
	}
	opts.EnableByCommand = true
	if opts.ID == "" {
		opts.ID = "mark:" + mark.String()
	}
	return CmdItem(doc.ToggleMark(mark), opts)
}

// BlockTypeItem builds an item that retypes the selected blocks. It is
// active when the block at the selection already has the type and attrs,
// and disabled when the command would change nothing.
func BlockTypeItem(t doc.NodeType, attrs doc.Attrs, opts ItemOptions) *MenuItem {
	cmd := doc.SetBlockType(t, attrs)
	if opts.ID == "" {
		opts.ID = blockTypeID(t, attrs)
	}
	return &MenuItem{
		Binding: Binding{
			Run:    cmd,
			Enable: func(s doc.State) bool { return cmd(s, nil, nil) },
			Select: opts.Select,
			Active: func(s doc.State) bool { return doc.BlockTypeActive(s, t, attrs) },
		},
		ID:    opts.ID,
		Label: firstNonEmpty(opts.Label, opts.Title),
		Title: opts.Title,
		Icon:  opts.Icon,
		Class: opts.Class,
	}
}

// UndoItem undoes the last change.
func UndoItem() *MenuItem {
	return CmdItem(doc.Undo, ItemOptions{ID: "undo", Title: "Undo last change", Icon: Icons.Undo, EnableByCommand: true})
}

// RedoItem redoes the last undone change.
func RedoItem() *MenuItem {
	return CmdItem(doc.Redo, ItemOptions{ID: "redo", Title: "Redo last undone change", Icon: Icons.Redo, EnableByCommand: true})
}

func blockTypeID(t doc.NodeType, attrs doc.Attrs) string {
	var b strings.Builder
	b.WriteString("block:")
	b.WriteString(string(t))
	for _, key := range []string{"level", "type"} {
		if v, ok := attrs[key]; ok {
			b.WriteString(":")
			b.WriteString(v)
		}
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
