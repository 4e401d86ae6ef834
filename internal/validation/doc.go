// Package validation collects user-facing validation findings.
//
// A Report is the result of a read-only check over configuration that is
// allowed to be wrong, such as exported parameter references that no longer
// resolve. Each finding is an Entry with enough context for a user to locate
// and fix it. Err turns a non-empty report into a single aggregated error.
package validation
