// Package nodegroup provides NodeGroup, a pipeline node that wraps an inner
// graph and re-exposes a selection of its parameters.
//
// The selection is a refgroup.Collection bound to the inner graph. The node's
// parameter collection has two own parameters and one child, "exported",
// which resolves to a refadapter.Adapter over the inner graph. Placed in an
// outer graph under the ID "group1", an exported parameter gets a key such as
// "group1/exported/group-a/x".
//
// The adapter is cached. Changes to the exported groups or to the inner
// graph's structure only mark it stale; the next resolve builds a fresh
// adapter and closes the previous one. A resolve also rebuilds when the inner
// tree's fingerprint no longer matches the cached adapter, which catches
// collections that change shape without emitting events.
package nodegroup
