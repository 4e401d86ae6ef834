// Package paramref provides Reference, a serializable pointer to one parameter
// of a paramtree.Tree by its global key, with optional display overrides.
//
// A Reference never holds the access it points to. Every lookup goes through
// the tree it is resolved against, so a reference whose parameter has gone
// simply stops resolving.
package paramref
