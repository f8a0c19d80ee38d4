// Package cli defines the retro-board command line: the root command opens
// the desktop client, "status" prints a board summary.
package cli
