// Package types defines the value objects exchanged between the recognizer,
// the interpreters, the dispatcher and the presentation layer: Domain,
// Variant, Interpretation and DispatchResult.
//
// Everything here is scoped to a single conversion call and never shared
// between calls.
package types
