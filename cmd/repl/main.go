package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"goturtle/pkg/compiler"
	"goturtle/pkg/interp"
	"goturtle/pkg/turtle"
)

const (
	historyFile = ".goturtle_history"
	promptMain  = "turtle> "
	promptCont  = "   ...> "
)

var helpText = `
REPL commands:
  :quit          Exit the REPL
  :vars          Show variables and their values
  :pose          Show the turtle's pose
  :ir            Toggle printing the optimized IR of each input
  :save FILE     Render everything drawn so far to a PNG
  :reset         Forget all variables and drawing
`

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

// repl holds one interactive session. Drawing calls are recorded so the
// picture can be rendered on demand.
type repl struct {
	rec     *turtle.Recorder
	session *interp.Session
	showIR  bool
	out     io.Writer
}

func newREPL(out io.Writer) *repl {
	r := &repl{out: out}
	r.reset()
	return r
}

func (r *repl) reset() {
	r.rec = turtle.NewRecorder()
	r.session = interp.NewSession(r.rec)
}

// eval runs one complete input and prints whatever it emitted.
func (r *repl) eval(src string) error {
	before := len(r.rec.Commands())
	ir, err := r.session.Exec(src)
	if r.showIR && ir != nil {
		fmt.Fprint(r.out, blue(compiler.FormatIR(ir)))
	}
	for _, c := range r.rec.Commands()[before:] {
		if c.Op == turtle.OpText {
			fmt.Fprintln(r.out, c.Text)
		}
	}
	if err != nil {
		return compiler.WrapErrorWithSource(err, src)
	}
	return nil
}

// command handles a ":" line. It reports false when the REPL should exit.
func (r *repl) command(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":quit":
		return false
	case ":vars":
		env := r.session.Interpreter().Env()
		for _, name := range r.session.Symbols().Names() {
			val := "<unset>"
			if v, ok := env[name]; ok {
				val = v.String()
			}
			typ, _ := r.session.Symbols().Lookup(name)
			fmt.Fprintf(r.out, "  %-16s %-7s %s\n", name, typ, val)
		}
	case ":pose":
		fmt.Fprintln(r.out, r.rec.Pose())
	case ":ir":
		r.showIR = !r.showIR
		fmt.Fprintf(r.out, "show IR: %t\n", r.showIR)
	case ":save":
		if len(fields) < 2 {
			fmt.Fprintln(r.out, "usage: :save FILE")
			break
		}
		canvas := turtle.NewCanvas(512, 512)
		r.rec.Replay(canvas)
		if err := canvas.SavePNG(fields[1], turtle.SnapshotOptions{Cursor: true}); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			break
		}
		fmt.Fprintf(r.out, "saved %s\n", fields[1])
	case ":reset":
		r.reset()
	case ":help":
		fmt.Fprint(r.out, helpText)
	default:
		fmt.Fprintln(r.out, "unknown command. Type :help for a list.")
	}
	return true
}

func main() {
	fmt.Println("goturtle REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := newREPL(os.Stdout)
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if !r.command(trimmed) {
				return
			}
			continue
		}
		if err := r.eval(code); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		}
	}
}

// readByParseProbe keeps prompting for continuation lines while the input
// so far only fails to parse because it ends too early (an open block, a
// missing semicolon).
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C (liner.ErrPromptAborted) drops the pending input.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if needsMore(src) {
			continue
		}
		return src, true
	}
}

func needsMore(src string) bool {
	tokens, err := compiler.Lex(src)
	if err != nil {
		return false
	}
	_, err = compiler.Parse(tokens)
	return compiler.IsIncomplete(err)
}
