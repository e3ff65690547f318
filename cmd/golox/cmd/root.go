// Package cmd wires golox's subcommands: run, fmt, and version.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "A tree-walking interpreter for Lox",
	Long: `golox is a Go implementation of the Lox scripting language from
Crafting Interpreters: scanning, parsing, static resolution, and
tree-walking evaluation, with closures and single-inheritance classes.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted by every subcommand; no subcommand prints extra output for it")
}

// exitError carries a fixed process exit code alongside a message, the
// way a CLI built on sysexits.h conventions reports usage vs. data vs.
// internal failures distinctly.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCodeFor extracts the process exit code for an error returned from
// Execute. Anything not explicitly classified with withExitCode is a
// cobra argument-parsing failure (unknown flag, wrong arg count), which
// sysexits.h calls EX_USAGE.
func ExitCodeFor(err error) int {
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return 64
}
