/*
File    : gomixc/repl/repl.go

Package repl implements an interactive read-compile-run loop: each
line the user enters is lexed, parsed, lowered to a complete standalone
LLVM IR module, assembled and linked by clang into a throwaway
executable, run, and its stdout streamed back — the batch compiler's
analogue of the teacher's line-at-a-time tree-walking evaluator REPL,
rebuilt around a compile-and-execute cycle instead of direct
evaluation.
*/
package repl

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gomixc/compiler/driver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string

	// counter gives every compiled line its own build artifact names so
	// one session's history never clobbers another line's files.
	counter int
}

// New creates a Repl instance.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// printBanner writes the startup banner: a ruled box around name,
// version, and a short usage reminder, matching the teacher's
// PrintBannerInfo layout.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Each line is compiled and run as its own program.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against readline-backed line editing.
// writer receives the banner, diagnostics, and each line's program
// output.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery compiles and runs one line, wrapped in panic
// recovery the way the teacher's executeWithRecovery is — the REPL
// stays alive after a bad line instead of exiting.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	r.counter++
	source := wrapAsStatement(line)

	ir, err := driver.GenerateIR(source)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	irPath, exePath, err := r.writeArtifacts(ir)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	defer os.Remove(irPath)
	defer os.Remove(exePath)

	if err := driver.InvokeClang(irPath, exePath); err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	cmd := exec.Command(exePath)
	out, err := cmd.Output()
	if len(out) > 0 {
		yellowColor.Fprintf(writer, "%s", out)
	}
	if err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", err)
	}
}

// wrapAsStatement appends a trailing ';' when the user's line omits
// one, the one REPL-specific convenience this front end allows: every
// other grammar rule in spec.md §4.2 is unchanged.
func wrapAsStatement(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasSuffix(trimmed, ";") {
		return trimmed
	}
	return trimmed + ";"
}

// writeArtifacts writes this line's IR module and reserves a distinct
// executable path in the build directory, scoped by r.counter.
func (r *Repl) writeArtifacts(ir string) (irPath, exePath string, err error) {
	dir := "build"
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return "", "", mkErr
	}
	irPath = filepath.Join(dir, fmt.Sprintf("repl_%d.ll", r.counter))
	if writeErr := os.WriteFile(irPath, []byte(ir), 0o644); writeErr != nil {
		return "", "", writeErr
	}
	exePath = filepath.Join(dir, fmt.Sprintf("repl_%d", r.counter))
	return irPath, exePath, nil
}
