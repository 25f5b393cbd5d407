// Package main is the entry point for the cipher CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/capiscio/cipher/pkg/validate"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}

	cli := &cli{args: args, stderr: stderr}
	rootCmd := newRootCmd(cli)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		err = cli.helpErr
	}
	if cli.logger != nil {
		_ = cli.logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(stderr, validate.Diagnostic(err))
		return 1
	}
	return 0
}
