// Package refadapter re-exposes parameters selected by reference groups as a
// new, synthetic parameter collection.
//
// # Shape
//
// An Adapter has one child Surface per group, keyed by the slug of the group
// name ("Group A" → "group-a", then "group-a-1" for a later group with the
// same slug). Each Surface holds one Forward per reference that resolves in
// the tree the adapter was built from:
//
//	Adapter
//	 ├── group-a
//	 │    └── x      → node1/x
//	 └── group-b
//	      ├── x      → node2/x
//	      └── x-1    → node3/x
//
// References that do not resolve are skipped. A parameter referenced by
// several groups is exposed only by the first.
//
// # Forwarding
//
// A Forward reads and writes the original parameter directly. Its name and
// description come from the reference overrides and are read on every call,
// so renaming a reference needs no rebuild. Value changes on the original are
// re-emitted on the Surface under the forward key, through a weak
// subscription: an adapter that is simply dropped stops receiving events once
// it is collected. Close detaches everything immediately.
//
// # Lifecycle
//
// An adapter is immutable. When the groups or the tree change, build a new
// one; Fingerprint tells which tree an adapter was built from.
package refadapter
