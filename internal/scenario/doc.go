// Package scenario describes one engine run as data and executes it.
//
// A Scenario names an engine and carries that engine's inputs. Scenarios
// come from YAML files (algotrace run -f), from CLI flags, or as JSON
// messages on the stream server's websocket. Run dispatches to the engine
// package and wraps the outcome in an Envelope with a fresh run ID.
//
// A scenario file may hold several YAML documents separated by "---"; Load
// returns them in file order. Unknown keys are rejected so that a typo does
// not silently fall back to a default.
package scenario
