// Package vec implements a persistent vector: an immutable indexed
// sequence with structural sharing between versions.
//
// The representation is a Relaxed Radix Balanced tree with branching
// factor 32. Random access, update, and appends on either end run in
// effectively constant time; concatenation and splitting run in
// logarithmic time. Every operation leaves the receiver observably
// unchanged and returns a new vector sharing almost all of its nodes
// with the source.
//
// A vector caches the path to the most recently accessed leaf (the
// focus), so element reads near each other are nearly free. Because
// that cache lives inside the vector value, a single *Vector must not
// be used from more than one goroutine at a time, even for reads.
// Distinct vectors derived from a common source are fully independent.
package vec
