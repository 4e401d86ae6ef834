// Package app wires a loaded pipeline to the operations the command line
// offers: listing global parameter keys, checking exported references and
// showing the exported parameter surface. It knows nothing about flags or
// exit codes.
package app
