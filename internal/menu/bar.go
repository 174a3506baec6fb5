package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/editor-menubar/internal/doc"
	"github.com/atomicstack/editor-menubar/internal/logging/events"
)

// Policy decides how top-level dropdowns in the bar interact.
type Policy int

const (
	// PolicyExclusive closes open sibling dropdowns when one opens.
	PolicyExclusive Policy = iota
	// PolicyIndependent lets sibling dropdowns stay open together.
	PolicyIndependent
)

func (p Policy) String() string {
	switch p {
	case PolicyExclusive:
		return "exclusive"
	case PolicyIndependent:
		return "independent"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exclusive":
		return PolicyExclusive, nil
	case "independent":
		return PolicyIndependent, nil
	default:
		return 0, fmt.Errorf("unknown dropdown policy %q (want exclusive or independent)", s)
	}
}

// Host is the editor surface the bar attaches to.
type Host interface {
	doc.View
	Subscribe(fn func(doc.State)) (unsubscribe func())
}

// Options configures a menu bar.
type Options struct {
	Content  Layout
	Floating bool
	Policy   Policy
	Reporter Reporter
}

// Bar is the top-level toolbar. It renders the layout once and refreshes it
// synchronously on every state transition of its host.
type Bar struct {
	node        *Node
	update      func(doc.State) bool
	top         *openSet
	registry    *Registry
	floating    bool
	visible     bool
	updates     int
	unsubscribe func()
}

// NewBar validates and renders the layout and subscribes to host.
func NewBar(host Host, opts Options) (*Bar, error) {
	if host == nil {
		return nil, fmt.Errorf("menu bar: nil host")
	}
	if err := Validate(opts.Content); err != nil {
		return nil, fmt.Errorf("menu bar layout: %w", err)
	}
	rep := opts.Reporter
	if rep == nil {
		rep = LogReporter{}
	}
	b := &Bar{
		top:      &openSet{exclusive: opts.Policy == PolicyExclusive},
		floating: opts.Floating,
	}
	env := Env{
		View:     host,
		Reporter: rep,
		siblings: b.top,
		afterRun: b.CloseAll,
	}
	content := RenderGrouped(env, opts.Content)
	b.node = NewNode(TagBar, ClassBar)
	b.node.SetClass(ClassFloating, opts.Floating)
	b.node.Append(content.Node)
	b.update = content.Update
	b.registry = buildRegistry(b.node)

	elements := 0
	for _, group := range opts.Content {
		elements += len(group)
	}
	events.Menu.Build(len(opts.Content), elements, opts.Floating)

	b.refresh(host.State())
	b.unsubscribe = host.Subscribe(b.refresh)
	return b, nil
}

func (b *Bar) refresh(s doc.State) {
	b.visible = b.update(s)
	b.node.Hidden = !b.visible
	b.updates++
	events.Menu.Update(s.Seq(), b.visible)
}

// Update runs the combined update for s and reports whether anything in the
// bar is mountable.
func (b *Bar) Update(s doc.State) bool {
	b.refresh(s)
	return b.visible
}

// Node returns the root toolbar node.
func (b *Bar) Node() *Node {
	return b.node
}

// Registry returns the id index of the rendered toolbar.
func (b *Bar) Registry() *Registry {
	return b.registry
}

// Floating reports whether the bar follows the selection.
func (b *Bar) Floating() bool {
	return b.floating
}

// Visible reports the result of the last update pass.
func (b *Bar) Visible() bool {
	return b.visible
}

// Updates returns how many update passes have run.
func (b *Bar) Updates() int {
	return b.updates
}

// AnyOpen reports whether a top-level dropdown is open.
func (b *Bar) AnyOpen() bool {
	return b.top.openCount() > 0
}

// CloseAll closes every open dropdown, as an outside click or escape would.
func (b *Bar) CloseAll() {
	b.top.closeAll()
}

// Destroy detaches the bar from its host.
func (b *Bar) Destroy() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
		events.Menu.Destroy()
	}
}
