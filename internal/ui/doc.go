// Package ui contains the Bubble Tea program that powers the launcher.
// The Model type focuses on message orchestration while dedicated helpers
// own input, pointer tracking, rendering and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function.
//   - Key presses edit the search query (input.go), move the tile cursor or
//     the sidebar cursor (navigation.go), or trigger registered actions.
//   - Pointer motion drives the category hover state machine in
//     internal/ui/state.Selection (mouse.go). Its hover and restore timers
//     are tea.Tick commands carrying tokens, so an expiry that arrives after
//     the timer was cancelled is ignored.
//
// State ownership:
//   - internal/ui/state holds the sidebar, the selection machine, the search
//     query and the tile grid together with its incremental Populator.
//   - The grid is filled a batch at a time: every populateBatchMsg appends
//     one batch and returns the command for the next, so input is handled
//     between batches. Starting a new population bumps the generation and
//     batches of the old one are dropped.
//   - Actions run through internal/ui/command so they execute off the
//     update loop and report back with launch.ActionResult.
//
// Backend interactions:
//   - A backend.Watcher reports changes to the menu source, the settings
//     file and the profile picture. Menu and settings changes reload both
//     through the Loader and rebuild the model; a profile change only
//     refreshes the header icon.
package ui
