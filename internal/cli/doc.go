// Package cli is responsible for parsing command-line arguments, validating
// user input and mapping failures to process exit codes. Commands are built
// with cobra; flags can also be supplied through PARAMGRID_* environment
// variables.
package cli
