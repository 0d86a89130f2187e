/*
File    : monkey/repl/repl.go
Author  : Priya Nair
Contact : priya.nair@proton.me

Package repl implements the Read-Eval-Print Loop for Monkey. It reads one
line at a time, parses it, evaluates it against an environment that is
shared across the whole session, and prints either the result or any
parse/runtime errors.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/pnair42/monkey/environment"
	"github.com/pnair42/monkey/evaluator"
	"github.com/pnair42/monkey/object"
	"github.com/pnair42/monkey/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the prompt
// readline displays before each line.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, and prompt string.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Monkey!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against reader/writer until the user exits or
// EOF is reached. One environment is created for the whole session, so
// `let` bindings and function definitions from earlier lines remain
// visible to later ones.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	// readline manages the terminal directly; reader is accepted but is
	// not threaded through it, so input always comes from the terminal.
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, env *environment.Environment) {
	program := parser.New(line).Parse()

	if len(program.Errors) > 0 {
		for _, msg := range program.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ErrorObj {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
