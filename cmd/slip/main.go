package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/slip-lang/slip"
	"github.com/slip-lang/slip/raytrace"
)

const (
	appName     = "slip"
	historyFile = ".slip_history"
	promptMain  = "> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("slip %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", slip.Version)

// Colors stay off when stdout is not a terminal or the user opted out.
var colorEnabled = term.IsTerminal(int(os.Stdout.Fd())) &&
	os.Getenv("NO_COLOR") == "" && os.Getenv("SLIP_NO_COLOR") == ""

func red(s string) string {
	if !colorEnabled {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func blue(s string) string {
	if !colorEnabled {
		return s
	}
	return "\x1b[94m" + s + "\x1b[0m"
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "demo":
		os.Exit(cmdDemo(os.Args[2:]))
	case "version":
		fmt.Println(slip.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`slip %s

Usage:
  %s run <file.lisp> [more files...]   Evaluate the files as one program.
  %s repl                              Start the interactive REPL.
  %s demo [-o <out.png>]               Render the built-in demo scene.
  %s version                           Print the version.

`, slip.Version, appName, appName, appName, appName)
}

// sceneEnv returns a fresh root environment holding the prelude and the
// raytracing natives.
func sceneEnv() *slip.Environment {
	layer := slip.Prelude()
	raytrace.Register(layer)
	return slip.FromLayer(layer)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

// cmdRun concatenates the files into one character stream and evaluates the
// expressions in order. A failing expression is reported and the run goes
// on; a parse error ends the run, since the rest of the stream cannot be
// trusted after one.
func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.lisp> [more files...]\n", appName)
		return 2
	}

	var src strings.Builder
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
			return 1
		}
		src.Write(data)
	}

	env := sceneEnv()
	es := slip.Parse(src.String())
	for i := 1; ; i++ {
		v, err := es.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Printf("ParserError in Expression %d: %v\n", i, err)
			break
		}
		if _, err := slip.Eval(env, v); err != nil {
			fmt.Printf("Error evaluating Expression %d: %v\n", i, err)
		}
	}

	fmt.Println("Interpreter Done!")
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	histPath := os.Getenv("SLIP_HISTORY")
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

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
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
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

	env := sceneEnv()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println("Exiting REPL...")
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		if strings.TrimSpace(code) == ":quit" {
			return 0
		}

		exprs, err := slip.ParseString(code)
		if err != nil {
			fmt.Println(red(fmt.Sprintf("Parser Error: %v", err)))
			continue
		}
		for _, e := range exprs {
			v, err := slip.Eval(env, e)
			if err != nil {
				fmt.Println(red(fmt.Sprintf("Eval Error: %v", err)))
				continue
			}
			fmt.Println(blue(v.String()))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe reads one logical input. Lines that end in the middle
// of an expression pull in a continuation line; any other parse outcome,
// including errors, hands the input to the caller as is.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := slip.ParseString(src); err != nil {
			var incomplete *slip.UnexpectedEndError
			if errors.As(err, &incomplete) {
				continue
			}
		}
		return src, true
	}
}

// -----------------------------------------------------------------------------
// demo
// -----------------------------------------------------------------------------

// cmdDemo evaluates the built-in scene program, echoing every expression
// and its value the way the batch runner reports errors.
func cmdDemo(args []string) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	out := fs.String("o", "rt-lisp-demo.png", "output image path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	env := sceneEnv()
	es := slip.Parse(strings.Join(demoProgram(*out), "\n"))
	for {
		v, err := es.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Printf("ParserError: %v\n", err)
			break
		}
		fmt.Printf("Evaluating: %s\n", v)
		r, err := slip.Eval(env, v)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("=> %s\n", r)
	}

	fmt.Println("Interpreter Done!")
	return 0
}

func demoProgram(out string) []string {
	return []string{
		"(vadd (vector 1 2 3) (vector 4 5 6))",
		"(set 'blue (material (color 0 0 1) (color 0 0 1) (color 0 0 0.6) 50 0.25))",
		"(set 'green (material (color 0 1 0) (color 0 1 0) (color 0 0.6 0) 50 0.25))",
		"(set 'white (material (color 1 1 1) (color 1 1 1) (color 0.6 0.6 0.6) 100 0.5))",
		"(set 'black (material (color 0 0 0) (color 0 0 0) (color 0.6 0.6 0.6) 100 0.5))",
		"(set 's1 (sphere (point 0 1 0) 1 blue))",
		"(set 's2 (sphere (point 2 0.5 2) 0.5 green))",
		"(set 'p1 (checkerboard (point 0 0 0) (vector 0 1 0) black white 0.5 (vector 0.5 0 1)))",
		"(set 'l1 (light (point 3 10 5) (color 1 1 1)))",
		"(set 'l2 (light (point 2 10 5) (color 1 1 1)))",
		"(set 'scn (scene (color 0.1 0.1 0.1) '(s1 s2 p1) '(l1 l2)))",
		"(set 'cam (camera (point 0 3 6) (point 0 0 0) (vector 0 1 0) 40 1920 1080))",
		"(render cam scn 5 4 \"" + out + "\")",
	}
}
