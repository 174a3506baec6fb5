// Package ui contains the Bubble Tea program for the terminal editor and its
// toolbar. Model.Update routes each message through a typed handler registry;
// key presses are then dispatched on the active mode.
//
// Modes:
//   - ModeEditor sends keys to the document through the dispatcher. Every
//     editor key press closes open toolbar dropdowns, the terminal stand-in
//     for a click outside the bar. Formatting shortcuts activate toolbar
//     items by id, so they pass through the same enable and select gates as
//     a click.
//   - ModeToolbar moves a focus ring across the visible toolbar stops
//     (toolbar.go). Items inside an open dropdown follow its toggle.
//   - ModePalette lists the mounted toolbar items in a fuzzy-filtered list
//     (internal/ui/state.Palette) and runs the chosen one.
//
// Activations by id go through internal/ui/command.Bus, which traces them and
// reports a ResultMsg for the status line. The toolbar itself refreshes
// synchronously on every dispatched transaction, so View only paints the
// current node tree via internal/render.
package ui
