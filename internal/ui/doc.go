// Package ui contains the Bubble Tea program that hosts grid menus in a
// terminal. Terminal implements host.Host; Model renders the active viewer's
// surface and turns keys and mouse presses into raw clicks.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (keys, mouse, window size, backend results, closes).
//   - Clicks go through dispatcher.Pipeline: the translator cancels the raw
//     event and resolves the session, the dispatcher runs the entry handler
//     on the command bus.
//   - Handlers may ask the Terminal to close or replace a surface. The
//     Terminal only queues the close; finishUpdate emits it as a
//     surfaceClosedMsg so the close is dispatched after the handler returns.
//
// Backend interactions:
//   - Grant handlers submit jobs to a backend.Worker. Its results arrive as
//     backendEventMsg values and are folded back by catalog.Apply, which
//     notifies the viewer and refreshes the slot if the session is still open.
package ui
