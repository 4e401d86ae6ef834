// Package graph provides the pipeline graph whose node parameters are
// flattened into a parameter tree.
//
// # Why Graph Package Exists
//
// Parameter trees, reference groups and adapters all need one object that
// owns "the current pipeline": an ordered list of nodes, each exposing a
// parameter collection. The Graph is that object. It is deliberately minimal;
// edges, execution state and scheduling live outside this module.
//
// # Structure
//
// A Graph is itself a param.Collection with no own parameters. Each node is a
// child slot keyed by the node ID, so a parameter "x" of node "node1" gets the
// global key "node1/x":
//
//	Graph
//	 ├── node1 (Gaussian blur)
//	 │    ├── x
//	 │    └── y
//	 └── node2
//	      └── threshold
//
// # Events
//
// Adding or removing a node emits StructureChanged on the graph. Events raised
// by a node's collection are republished unchanged on the graph emitter, so a
// consumer can observe a whole pipeline through one subscription.
package graph
