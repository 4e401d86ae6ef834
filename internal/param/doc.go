// Package param defines the parameter access protocol shared by every part of
// the engine: typed get/set handles (Access), objects exposing ordered
// parameters and named child collections (Collection), and the synchronous
// change notifications they emit (Emitter).
//
// Parameters are registered declaratively. A collection implementation lists
// its own (key, binding, metadata) tuples, usually through Set, instead of
// being discovered by reflection.
//
// Nothing in this package locks. Callers are expected to drive a collection
// graph from a single goroutine.
package param
