// Package server exposes a graph and its search engines over HTTP.
//
// Routes
//
//	GET  /healthz                   liveness probe
//	GET  /metrics                   Prometheus exposition (per-server registry)
//	GET  /v1/nodes                  every node with its neighbors
//	GET  /v1/nodes/nearest?row&col  closest node to a point (R-tree lookup)
//	GET  /v1/roads                  every connection once
//	GET  /v1/canvas?width&height    nodes projected onto a drawing surface
//	GET  /v1/canvas/hit?...&x&y     node under a canvas pixel, if any
//	POST /v1/search                 run a search to completion
//	GET  /v1/search/stream?...      websocket, one message per step
//
// Stream parameters: algorithm, start, end, interval (Go duration, capped by
// server.max_interval), max_distance, and avoid (repeatable).
//
// Errors are JSON objects {"error": "..."}; an unknown node is 404, a bad
// algorithm, option or parameter is 400, an exhausted step budget is 422.
//
// Every search gets a session id (uuid) that appears in the response and in
// the log lines for that search. The server snapshots the graph at New, so
// later edits to the caller's graph are not served.
package server
