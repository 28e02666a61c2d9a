// Command eval evaluates arithmetic expressions.
//
// With arguments, each argument is compiled and evaluated as one input
// line. Without arguments, eval reads lines interactively until EOF or
// the quit command. Each accepted line prints the fully parenthesized
// understanding of its statements, then one evaluation per statement.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jdfadams/eval"
)

const (
	prompt      = "> "
	historyFile = ".eval_history"
)

func main() {
	log.SetFlags(0)
	var (
		with []eval.ParseOption
		prec int
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
		if err != nil {
			return fmt.Errorf("setting %s: %v", d[0], err)
		}
		with = append(with, eval.WithVar(strings.TrimSpace(d[0]), v))
		return nil
	}
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.IntVar(&prec, "p", 0, "evaluate at the given precision in bits instead of float64")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	if flag.NArg() > 0 {
		code := 0
		for _, arg := range flag.Args() {
			if !line(arg, with, prec) {
				code = 1
			}
		}
		os.Exit(code)
	}
	repl(with, prec)
}

// line compiles and runs one input line, printing the understanding and
// one evaluation per statement. It reports whether the line was
// accepted.
func line(src string, opts []eval.ParseOption, prec int) bool {
	p, err := eval.Parse(src, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, eval.Report(err, src))
		return false
	}
	fmt.Println("Understanding:")
	fmt.Print(p.String())
	if prec > 0 {
		rs, err := p.EvalPrec(uint(prec))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		for _, r := range rs {
			fmt.Printf("Evaluation: %g\n", r)
		}
		return true
	}
	for _, r := range p.Eval() {
		fmt.Printf("Evaluation: %g\n", r)
	}
	return true
}

func repl(opts []eval.ParseOption, prec int) {
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

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		src, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			log.Fatal(err)
		}
		if strings.TrimSpace(src) == "quit" {
			return
		}
		if !line(src, opts, prec) {
			fmt.Println("error")
		}
		if strings.TrimSpace(src) != "" {
			ln.AppendHistory(src)
		}
	}
}
