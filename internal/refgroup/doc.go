// Package refgroup manages named groups of parameter references.
//
// # Groups
//
// A Group is a named, ordered and duplicate-free list of paramref.Reference
// values. Duplicates are detected by path, so two references to the same
// parameter with different display overrides cannot coexist. The group's name
// and description are ordinary parameters ("name", "description") so any
// generic parameter editor can change them.
//
// # Collections
//
// A Collection is an ordered list of groups bound weakly to the graph its
// references point into. It subscribes to every group it holds and
// republishes group events, so consumers observe one emitter instead of
// tracking groups individually.
//
// ReportValidity resolves every reference against a fresh parameter tree and
// reports the ones that no longer resolve. It never mutates the groups or the
// graph.
//
// # Wire Format
//
// Collections serialize to JSON and YAML as an ordered list:
//
//	[
//	  {
//	    "name": "Group A",
//	    "description": "",
//	    "content": [{"path": "node1/x", "custom-name": "Threshold"}]
//	  }
//	]
package refgroup
