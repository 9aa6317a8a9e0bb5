// Package application wires the environment snapshot, resolver, container
// detector and report renderers together, keeping the main packages focused on
// CLI parsing and exit codes.
package application
