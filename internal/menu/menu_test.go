package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/editor-menubar/internal/data/dispatcher"
	"github.com/atomicstack/editor-menubar/internal/doc"
)

type errorLog struct {
	errs []error
}

func (l *errorLog) Report(err error) { l.errs = append(l.errs, err) }

func newHost(text string) *dispatcher.Dispatcher {
	return dispatcher.New(doc.NewState(doc.FromText(text)))
}

// touch dispatches a selection-only transaction so subscribers see a new state.
func touch(d *dispatcher.Dispatcher) {
	d.Dispatch(d.State().Tr().SetSelection(d.State().Selection()))
}

func newBar(t *testing.T, host Host, layout Layout, opts ...func(*Options)) (*Bar, *errorLog) {
	t.Helper()
	log := &errorLog{}
	o := Options{Content: layout, Reporter: log}
	for _, fn := range opts {
		fn(&o)
	}
	bar, err := NewBar(host, o)
	require.NoError(t, err)
	t.Cleanup(bar.Destroy)
	return bar, log
}

func node(t *testing.T, bar *Bar, id string) *Node {
	t.Helper()
	n, ok := bar.Registry().Find(id)
	require.True(t, ok, "no node with id %q", id)
	return n
}

func toggleOf(t *testing.T, n *Node) *Node {
	t.Helper()
	for _, child := range n.Children {
		if child.Tag == TagToggle {
			return child
		}
	}
	t.Fatalf("node %s has no toggle", n.Tag)
	return nil
}

func panelOf(t *testing.T, n *Node) *Node {
	t.Helper()
	for _, child := range n.Children {
		if child.Tag == TagPanel {
			return child
		}
	}
	t.Fatalf("node %s has no panel", n.Tag)
	return nil
}

func separators(root *Node) []*Node {
	var out []*Node
	root.Walk(func(n *Node, _ int) bool {
		if n.Tag == TagSeparator {
			out = append(out, n)
		}
		return true
	})
	return out
}

func countingItem(id string, runs *int) *MenuItem {
	return &MenuItem{
		ID:    id,
		Label: id,
		Binding: Binding{
			Run: func(s doc.State, dispatch doc.DispatchFunc, _ doc.View) bool {
				*runs++
				if dispatch != nil {
					dispatch(s.Tr().InsertText(id))
				}
				return true
			},
		},
	}
}

func TestDisabledItemDoesNotRun(t *testing.T) {
	host := newHost("text")
	runs := 0
	item := countingItem("save", &runs)
	item.Enable = func(doc.State) bool { return false }
	bar, _ := newBar(t, host, Layout{{item}})

	n := node(t, bar, "save")
	assert.True(t, n.HasClass(ClassDisabled))
	v, _ := n.Attr("aria-disabled")
	assert.Equal(t, "true", v)

	before := host.Applied()
	n.Activate()
	assert.Zero(t, runs)
	assert.Equal(t, before, host.Applied(), "no transaction dispatched")
}

func TestUnselectedItemIsHiddenInertAndReturns(t *testing.T) {
	host := newHost("text")
	runs := 0
	visible := false
	item := countingItem("toggle", &runs)
	item.Select = func(doc.State) bool { return visible }
	other := countingItem("other", new(int))
	bar, _ := newBar(t, host, Layout{{item, other}})

	n := node(t, bar, "toggle")
	assert.True(t, n.Hidden)
	assert.False(t, n.Activate())
	assert.Zero(t, runs)
	assert.Contains(t, bar.Node().Children[0].Children, n, "hidden item stays in the tree")

	visible = true
	touch(host)
	assert.False(t, n.Hidden)
	assert.True(t, n.Activate())
	assert.Equal(t, 1, runs)
}

func TestStaleActivationRechecksState(t *testing.T) {
	host := newHost("text")
	runs := 0
	allowed := true
	item := countingItem("late", &runs)
	item.Enable = func(doc.State) bool { return allowed }
	r := item.Render(Env{View: host, Reporter: &errorLog{}})
	require.True(t, r.Update(host.State()))
	assert.False(t, r.Node.HasClass(ClassDisabled))

	allowed = false
	r.Node.Activate()
	assert.Zero(t, runs, "enable is evaluated at activation time")
}

func TestUpdateIsIdempotent(t *testing.T) {
	host := newHost("hello world")
	host.Dispatch(host.State().Tr().SetSelection(doc.Range(doc.Pos{}, doc.Pos{Offset: 5})))
	bar, _ := newBar(t, host, DefaultLayout())

	bar.Update(host.State())
	first := bar.Node().String()
	bar.Update(host.State())
	assert.Equal(t, first, bar.Node().String())
}

func TestGroupCollapseAndReappear(t *testing.T) {
	host := newHost("")
	shown := false
	hidden := func(id string) *MenuItem {
		item := countingItem(id, new(int))
		item.Select = func(doc.State) bool { return shown }
		return item
	}
	bar, _ := newBar(t, host, Layout{
		{countingItem("a", new(int))},
		{hidden("b"), hidden("c")},
		{countingItem("d", new(int))},
	})

	seps := separators(bar.Node())
	require.Len(t, seps, 2)
	assert.True(t, seps[0].Hidden, "separator before an empty group is suppressed")
	assert.False(t, seps[1].Hidden, "one separator remains between the non-empty groups")

	shown = true
	touch(host)
	assert.False(t, seps[0].Hidden)
	assert.False(t, seps[1].Hidden)
	assert.False(t, node(t, bar, "b").Hidden)
}

func TestEmptyGroupsAreOmitted(t *testing.T) {
	host := newHost("")
	bar, _ := newBar(t, host, Layout{{}, {countingItem("a", new(int))}, {}})
	assert.Empty(t, separators(bar.Node()))
}

func TestDropdownCollapsesWhenNoChildApplies(t *testing.T) {
	host := newHost("")
	item := countingItem("only", new(int))
	item.Select = func(doc.State) bool { return false }
	dd := &Dropdown{ID: "dd", Label: "More", Children: []Element{item}}

	r := dd.Render(Env{View: host, siblings: &openSet{exclusive: true}})
	assert.False(t, r.Update(host.State()))
	assert.True(t, r.Node.Hidden)
}

func TestHeadingItemInFormatsCollapsesDropdown(t *testing.T) {
	host := newHost("## Title")
	h2 := func() *MenuItem {
		return BlockTypeItem(doc.NodeHeading, doc.Attrs{"level": "2"}, ItemOptions{
			Label:  "Header Large",
			Select: func(doc.State) bool { return false },
		})
	}

	formats := &Dropdown{ID: "formats", Label: "Formats", Children: []Element{h2()}}
	r := formats.Render(Env{View: host, siblings: &openSet{exclusive: true}})
	assert.False(t, r.Update(host.State()), "the dropdown reports nothing to show")
	assert.True(t, r.Node.Hidden)

	inBar := &Dropdown{ID: "formats", Label: "Formats", Children: []Element{h2()}}
	bar, _ := newBar(t, host, Layout{{inBar}, {countingItem("x", new(int))}})
	assert.True(t, node(t, bar, "formats").Hidden)
	assert.True(t, bar.Visible(), "the rest of the bar stays mounted")
}

func TestActivateByIDKeepsSubmenuUnderOpenParent(t *testing.T) {
	host := newHost("")
	callouts := &DropdownSubmenu{ID: "callouts", Label: "Callouts", Children: []Element{countingItem("info", new(int))}}
	formats := &Dropdown{ID: "formats", Label: "Formats", Children: []Element{callouts}}
	bar, _ := newBar(t, host, Layout{{formats}})
	reg := bar.Registry()

	assert.False(t, reg.Activate("callouts"), "parent panel is closed")
	assert.False(t, node(t, bar, "callouts").HasClass(ClassOpen))

	require.True(t, reg.Activate("formats"))
	require.True(t, reg.Activate("callouts"))
	assert.True(t, node(t, bar, "callouts").HasClass(ClassOpen))

	runs := 0
	item := countingItem("direct", &runs)
	closed := &Dropdown{ID: "closed", Label: "Closed", Children: []Element{item}}
	other, _ := newBar(t, newHost(""), Layout{{closed}})
	assert.True(t, other.Registry().Activate("direct"), "items run by id inside a closed dropdown")
	assert.Equal(t, 1, runs)
}

func TestSubmenusUnderOneParentAreExclusive(t *testing.T) {
	host := newHost("")
	sub := func(id string) *DropdownSubmenu {
		return &DropdownSubmenu{ID: id, Label: id, Children: []Element{countingItem(id+"-item", new(int))}}
	}
	dd := &Dropdown{ID: "dd", Label: "Menu", Children: []Element{sub("one"), sub("two")}}
	bar, _ := newBar(t, host, Layout{{dd}}, func(o *Options) { o.Policy = PolicyIndependent })

	require.True(t, toggleOf(t, node(t, bar, "dd")).Activate())
	one, two := node(t, bar, "one"), node(t, bar, "two")
	toggleOf(t, one).Activate()
	assert.True(t, one.HasClass(ClassOpen))
	toggleOf(t, two).Activate()
	assert.True(t, two.HasClass(ClassOpen))
	assert.False(t, one.HasClass(ClassOpen), "opening a sibling submenu closes the other")

	toggleOf(t, node(t, bar, "dd")).Activate()
	assert.False(t, two.HasClass(ClassOpen), "closing the parent closes its submenus")
	assert.True(t, panelOf(t, two).Hidden)
}

func TestDropdownClosesAfterCommandRuns(t *testing.T) {
	host := newHost("")
	runs := 0
	dd := &Dropdown{ID: "dd", Label: "Insert", Children: []Element{
		&DropdownSubmenu{ID: "sub", Label: "More", Children: []Element{countingItem("deep", &runs)}},
	}}
	bar, _ := newBar(t, host, Layout{{dd}})

	toggleOf(t, node(t, bar, "dd")).Activate()
	toggleOf(t, node(t, bar, "sub")).Activate()
	require.True(t, bar.AnyOpen())

	node(t, bar, "deep").Activate()
	assert.Equal(t, 1, runs)
	assert.False(t, bar.AnyOpen())
	assert.False(t, node(t, bar, "sub").HasClass(ClassOpen))
}

func TestTopLevelPolicy(t *testing.T) {
	layout := func() Layout {
		return Layout{{
			&Dropdown{ID: "a", Label: "A", Children: []Element{countingItem("a1", new(int))}},
			&Dropdown{ID: "b", Label: "B", Children: []Element{countingItem("b1", new(int))}},
		}}
	}
	for _, tc := range []struct {
		policy   Policy
		bothStay bool
	}{
		{PolicyExclusive, false},
		{PolicyIndependent, true},
	} {
		t.Run(tc.policy.String(), func(t *testing.T) {
			bar, _ := newBar(t, newHost(""), layout(), func(o *Options) { o.Policy = tc.policy })
			toggleOf(t, node(t, bar, "a")).Activate()
			toggleOf(t, node(t, bar, "b")).Activate()
			assert.Equal(t, tc.bothStay, node(t, bar, "a").HasClass(ClassOpen))
			assert.True(t, node(t, bar, "b").HasClass(ClassOpen))

			bar.CloseAll()
			assert.False(t, bar.AnyOpen())
		})
	}
}

func TestBoldItalicScenario(t *testing.T) {
	host := newHost("hello")
	sel := doc.Range(doc.Pos{}, doc.Pos{Offset: 5})
	host.Dispatch(host.State().Tr().AddMark(sel.From(), sel.To(), doc.MarkEm).SetSelection(sel))
	bold := MarkItem(doc.MarkStrong, ItemOptions{Title: "Bold", Icon: Icons.Strong})
	italic := MarkItem(doc.MarkEm, ItemOptions{Title: "Italic", Icon: Icons.Em})
	bar, _ := newBar(t, host, Layout{{bold, italic}})

	b, i := node(t, bar, "mark:strong"), node(t, bar, "mark:em")
	assert.True(t, i.HasClass(ClassActive))
	assert.False(t, b.HasClass(ClassActive))
	assert.False(t, i.HasClass(ClassDisabled))
	assert.False(t, b.HasClass(ClassDisabled))

	b.Activate()
	assert.True(t, b.HasClass(ClassActive), "bar refreshed after the command dispatched")
}

func TestPredicateFailureFailsSafe(t *testing.T) {
	host := newHost("")
	item := countingItem("boom", new(int))
	item.Enable = func(doc.State) bool { panic("broken predicate") }
	item.Active = func(doc.State) bool { panic("broken predicate") }
	bar, log := newBar(t, host, Layout{{item}})

	n := node(t, bar, "boom")
	assert.True(t, n.HasClass(ClassDisabled))
	assert.False(t, n.HasClass(ClassActive))
	require.Len(t, log.errs, 2)
	var perr *PredicateError
	require.ErrorAs(t, log.errs[0], &perr)
	assert.Equal(t, "enable", perr.Predicate)
}

func TestRunFailureIsContained(t *testing.T) {
	host := newHost("")
	item := &MenuItem{ID: "bad", Label: "Bad", Binding: Binding{
		Run: func(doc.State, doc.DispatchFunc, doc.View) bool { panic("inapplicable") },
	}}
	bar, log := newBar(t, host, Layout{{item}})

	assert.NotPanics(t, func() { node(t, bar, "bad").Activate() })
	require.Len(t, log.errs, 1)
	var rerr *RunError
	assert.ErrorAs(t, log.errs[0], &rerr)
	assert.True(t, bar.Visible())
}

func TestCmdItemDerivesSelectFromCommand(t *testing.T) {
	host := newHost("")
	undo := CmdItem(doc.Undo, ItemOptions{ID: "undo", Title: "Undo"})
	require.NotNil(t, undo.Select)
	assert.Nil(t, undo.Enable)
	assert.Equal(t, "Undo", undo.Label)

	bar, _ := newBar(t, host, Layout{{undo, countingItem("type", new(int))}})
	assert.True(t, node(t, bar, "undo").Hidden, "nothing to undo yet")

	node(t, bar, "type").Activate()
	assert.False(t, node(t, bar, "undo").Hidden)

	redo := RedoItem()
	assert.Nil(t, redo.Select)
	assert.NotNil(t, redo.Enable)
}

func TestBarUpdatesOnEveryTransition(t *testing.T) {
	host := newHost("")
	bar, _ := newBar(t, host, Layout{{countingItem("a", new(int))}})
	before := bar.Updates()
	touch(host)
	touch(host)
	assert.Equal(t, before+2, bar.Updates())

	bar.Destroy()
	assert.Zero(t, host.Listeners())
	touch(host)
	assert.Equal(t, before+2, bar.Updates())
}

func TestFloatingOption(t *testing.T) {
	bar, _ := newBar(t, newHost(""), Layout{{countingItem("a", new(int))}}, func(o *Options) { o.Floating = true })
	assert.True(t, bar.Floating())
	assert.True(t, bar.Node().HasClass(ClassFloating))
}

func TestValidateRejectsMalformedLayouts(t *testing.T) {
	shared := countingItem("shared", new(int))
	cyclic := &Dropdown{Label: "loop"}
	cyclic.Children = []Element{cyclic}

	for name, tc := range map[string]struct {
		layout Layout
		want   error
	}{
		"nil":       {Layout{{nil}}, ErrNilElement},
		"nil ptr":   {Layout{{(*MenuItem)(nil)}}, ErrNilElement},
		"shared":    {Layout{{shared}, {&Dropdown{Label: "d", Children: []Element{shared}}}}, ErrSharedElement},
		"cycle":     {Layout{{cyclic}}, ErrSharedElement},
		"no run":    {Layout{{&MenuItem{Label: "x"}}}, ErrMissingCommand},
		"empty":     {Layout{{&DropdownSubmenu{Label: "s"}}}, ErrEmptyDropdown},
		"duplicate": {Layout{{countingItem("x", new(int)), countingItem("x", new(int))}}, ErrDuplicateID},
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tc.layout), tc.want)
			_, err := NewBar(newHost(""), Options{Content: tc.layout})
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.NoError(t, Validate(DefaultLayout()))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("Independent")
	require.NoError(t, err)
	assert.Equal(t, PolicyIndependent, p)
	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyExclusive, p)
	_, err = ParsePolicy("sometimes")
	assert.Error(t, err)
}

func TestEntriesListMountedItemsWithPaths(t *testing.T) {
	host := newHost("plain text")
	bar, _ := newBar(t, host, DefaultLayout())

	entries := bar.Entries()
	byID := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	_, hasUndo := byID["undo"]
	assert.True(t, hasUndo, "undo is enabled-gated, so it is listed even when disabled")
	assert.True(t, byID["undo"].Disabled)

	info, ok := byID["block:callout:info"]
	require.True(t, ok)
	assert.Equal(t, []string{"Formats", "Callouts"}, info.Path)
	assert.Equal(t, "Info Callout", info.Label)

	para := byID["block:paragraph"]
	assert.True(t, para.Active)
	assert.True(t, para.Disabled, "already a paragraph")

	bold := byID["mark:strong"]
	assert.Equal(t, "Bold", bold.Label)
	assert.Empty(t, bold.Path)

	require.True(t, bar.Registry().Activate("block:callout:info"))
	assert.Equal(t, doc.NodeCallout, host.State().Doc().Block(0).Type)
}
