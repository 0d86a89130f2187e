/*
File    : monkey/cmd/monkey/main.go
Author  : Priya Nair
Contact : priya.nair@proton.me

Package main is the command-line entry point for the Monkey interpreter. It
wires two subcommands — repl and run — on top of a cobra root command that
also serves --version.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pnair42/monkey/environment"
	"github.com/pnair42/monkey/evaluator"
	"github.com/pnair42/monkey/object"
	"github.com/pnair42/monkey/parser"
	"github.com/pnair42/monkey/repl"
	"github.com/spf13/cobra"
)

const (
	version = "v0.1.0"
	author  = "Priya Nair"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	prompt  = "monkey >>> "
	banner  = `
  __  __             _
 |  \/  | ___  _ __ | | _____ _   _
 | |\/| |/ _ \| '_ \| |/ / _ \ | | |
 | |  | | (_) | | | |   <  __/ |_| |
 |_|  |_|\___/|_| |_|_|\_\___|\__, |
                               |___/
`
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	root := &cobra.Command{
		Use:     "monkey",
		Short:   "Monkey is a tree-walking interpreter for the Monkey language",
		Version: version,
	}
	root.SetVersionTemplate(fmt.Sprintf("Monkey %s | License: %s | Author: %s\n", version, license, author))

	root.AddCommand(replCmd())
	root.AddCommand(runCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := repl.New(banner, version, author, line, prompt)
			session.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate a Monkey source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

// runFile reads the file, surfaces parse errors and exits non-zero, otherwise
// evaluates and prints the result, skipping a bare Null so successful
// side-effect-only programs produce no noisy trailing line.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	program := parser.New(string(source)).Parse()
	if len(program.Errors) > 0 {
		for _, msg := range program.Errors {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := environment.New()
	result := evaluator.Eval(program, env)

	if result == nil {
		return nil
	}
	if result.Type() == object.ErrorObj {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
	if result.Type() != object.NullObj {
		cyanColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
	return nil
}
