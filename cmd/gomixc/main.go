/*
File    : gomixc/cmd/gomixc/main.go

Package main is the entry point for gomixc, the command-line front end
over the lexer/parser/codegen/driver pipeline. It hand-rolls its
`os.Args` dispatch the way the teacher's `main/main.go` does instead of
reaching for a flag-parsing library, mirroring go-mix's own
file-mode/server-mode/REPL-mode switch.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/gomixc/compiler/driver"
	"github.com/gomixc/compiler/repl"
)

var cyanColor = color.New(color.FgCyan)
var yellowColor = color.New(color.FgYellow)
var redColor = color.New(color.FgRed)

const version = "v0.1.0"

const banner = `  ___  ___  _ __ ___ (_)_  _____
 / __|/ _ \| '_ ' _ \| \ \/ / __|
| (__| (_) | | | | | | |>  < (__
 \___|\___/|_| |_| |_|_/_/\_\___|
`

func main() {
	if len(os.Args) < 2 {
		runRepl()
		return
	}

	switch os.Args[1] {
	case "compile":
		requireSourceArg("compile")
		if err := driver.Compile(os.Args[2]); err != nil {
			os.Exit(1)
		}
	case "build":
		requireSourceArg("build")
		dest := ""
		if len(os.Args) > 3 {
			dest = os.Args[3]
		}
		if err := driver.Build(os.Args[2], dest); err != nil {
			os.Exit(1)
		}
	case "emit-llvm":
		requireSourceArg("emit-llvm")
		if err := driver.EmitLLVM(os.Args[2]); err != nil {
			os.Exit(1)
		}
	case "repl":
		runRepl()
	case "version", "--version", "-v":
		showVersion()
	case "help", "--help", "-h":
		showHelp()
	default:
		// Bare `gomixc <source-file> [<dest>]` per spec.md §6's CLI
		// surface, with build as the implied verb.
		dest := ""
		if len(os.Args) > 2 {
			dest = os.Args[2]
		}
		if err := driver.Build(os.Args[1], dest); err != nil {
			os.Exit(1)
		}
	}
}

func requireSourceArg(cmd string) {
	if len(os.Args) < 3 {
		redColor.Fprintf(os.Stderr, "[USAGE ERROR] %s requires a source file\n", cmd)
		os.Exit(1)
	}
}

func runRepl() {
	r := repl.New(banner, version, "------------------------------------------------------------", "gomixc >>> ")
	r.Start(os.Stdout)
}

func showVersion() {
	cyanColor.Println("gomixc - a toy LLVM-IR ahead-of-time compiler")
	cyanColor.Printf("Version: %s\n", version)
}

func showHelp() {
	cyanColor.Println("gomixc - a toy LLVM-IR ahead-of-time compiler")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gomixc <source-file> [<dest>]   Build an executable (default destination: basename)")
	yellowColor.Println("  gomixc compile <source-file>    Lower to LLVM IR and write build/build.ll")
	yellowColor.Println("  gomixc build <source-file> [<dest>]   Same as bare invocation")
	yellowColor.Println("  gomixc emit-llvm <source-file>  Print the generated LLVM IR to stdout")
	yellowColor.Println("  gomixc repl                     Start the interactive compile+run REPL")
	yellowColor.Println("  gomixc version                  Print version information")
	yellowColor.Println("  gomixc help                     Display this help message")
	fmt.Println()
}
