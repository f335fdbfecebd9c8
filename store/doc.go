// Package store contains the state machines that own all application state.
//
// Allowed here:
// - state types, message contracts, machine Update functions
// - derived-value recomputation (totals, button visibility)
// - effect scheduling (catalog fetch, order submission) via tea.Cmd
//
// Not allowed here:
// - rendering of any kind
// - HTTP details (the network client lives in internal/api)
//
// Composition is a strict tree: RootMachine -> ProductListMachine ->
// (CartMachine -> cart items, destination) and per-row counters. Parents
// route child messages by wrapper type and id; children signal upward only
// through messages, never by touching sibling state.
package store
