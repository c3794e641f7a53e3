// Package ui implements an interactive terminal result browser using
// bubbletea's Elm architecture.
//
// The [Model] wraps a bubbles list of parsed entities and follows
// continuation cursors on demand: pressing "m" fetches the next page through
// the injected [PageLoader] and appends its items. The model never talks to
// the network itself, so it can be driven by fixtures in tests.
package ui
