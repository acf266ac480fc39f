// Package stream serves engine traces over websockets.
//
// Routes:
//
//	GET /engines        JSON list of engines, graph presets, item presets and strategies
//	GET /ws/{engine}    websocket: the client sends one JSON scenario, the server
//	                    answers with one "step" message per step and a final
//	                    "result" or "error" message
//	GET /metrics        Prometheus metrics
//
// Steps are paced by Config.Delay. Closing the websocket cancels the run
// between steps.
package stream
