// Package paramtree flattens a graph of parameter collections into a single
// address space.
//
// A Tree is a one-shot snapshot. Build walks the collection graph depth-first
// (own parameters first, then children, both in declaration order) and gives
// every parameter one globally unique key made of the path segments joined by
// "/". True same-path collisions are disambiguated with `-1`, `-2`, ... in
// first-visited order, so two builds of an unmodified graph always produce the
// same keys.
//
// Trees are never patched. When the underlying graph changes, build a new one.
//
// Nodes live in an arena owned by the Tree and refer to their parent by index.
// Nodes hold collections but do not own them.
package paramtree
