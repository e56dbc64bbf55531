// Package cli parses the command line of mazesolve, validates user input and
// carries process-level exit codes back to main.
package cli
