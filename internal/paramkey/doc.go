/*
Package paramkey provides the structured representation of parameter keys
used by the parameter tree and the reference adapter.

A global key is a slash-separated sequence of segments, e.g.
`node1/advanced/threshold`. Each segment is the local key of a parameter or
the child key under which a nested collection was registered.

This package centralizes joining, splitting and parsing of keys, as well as
the deterministic disambiguation applied when two entries would otherwise
share a key.
*/
package paramkey
