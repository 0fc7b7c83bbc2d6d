// Package route is the entry point that ties the search engines together.
//
// What
//
//   - Algorithm names one of the three engines (BFS, DFS, Dijkstra) and
//     parses the spellings accepted on the command line and over HTTP.
//   - New validates the graph and both endpoints, then builds the engine.
//   - Find runs an engine to completion and returns a Result.
//   - Drive steps any search.Search until it is done, optionally paced by a
//     token-bucket limiter, bounded by a step budget, and observed through a
//     per-step Snapshot callback.
//
// Pacing
//
//	WithInterval(d) lets at most one Next call through every d. The first
//	step is taken immediately. Cancelling the context stops driving between
//	steps; the engine is left in whatever state the last step produced and
//	may be driven again.
//
// Errors
//
//   - search.ErrNilGraph, search.ErrNodeNotFound, search.ErrOptionViolation
//     from New and Find.
//   - ErrUnknownAlgorithm from ParseAlgorithm and New.
//   - ErrStepBudget from Drive when WithMaxSteps is exhausted first.
//   - ctx.Err(), or the limiter's deadline error, from Drive when the
//     context ends first.
package route
