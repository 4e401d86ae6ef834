// Package testutil holds helpers shared by package tests: log capture,
// contexts carrying a test logger, temporary pipeline files and collections
// that misbehave on purpose.
package testutil
