// Package check implements the request-processing pipeline of the check
// endpoint.
//
// A request flows through five stages, each exposed on its own so that
// they can be tested in isolation:
//
//   - Validate rejects text above MaxTextBytes before the engine runs.
//   - Analyzer invokes the engine with a request-scoped lint group bound to
//     the shared dictionary and turns engine panics into ErrInternal.
//   - Localize computes the code point context window around a span.
//   - Classify maps an engine rule kind to a Category.
//   - Assemble builds the wire Response in engine order.
//
// Service composes them and adds the optional per-check timeout.
package check
