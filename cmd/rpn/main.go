package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Exprs  []string `arg:"" optional:"" name:"expr" help:"Expressions to evaluate."`
	In     string   `short:"i" placeholder:"FILE" help:"Read one expression per line from FILE (- for stdin). Stdin is read when no expressions are given."`
	Config string   `short:"c" placeholder:"FILE" help:"YAML configuration file."`
	Fmt    string   `help:"Result formatting verb (default %g)."`
	Prec   uint     `short:"p" help:"Precision of built-in functions in bits (default 64)."`
	Funcs  bool     `short:"f" help:"Call built-in functions exp, ln, log, sqrt, pow, pi, e."`
	RPN    bool     `name:"rpn" short:"r" help:"Print the RPN form."`
	Infix  bool     `short:"x" help:"Print the parenthesized infix form."`
	Tree   bool     `short:"t" help:"Print syntax trees."`
	Dump   bool     `short:"d" help:"Dump RPN tokens."`
}

func main() {
	log.SetFlags(0)
	var c cli
	kong.Parse(&c,
		kong.Name("rpn"),
		kong.Description("Evaluate expressions through Reverse Polish Notation."),
		kong.UsageOnError(),
	)
	cfg, err := loadConfig(c.Config)
	if err != nil {
		log.Fatal(err)
	}
	cfg = cfg.merge(&c)

	exprs := append(cfg.Exprs, c.Exprs...)
	lines, err := readInput(c.In, len(exprs) == 0)
	if err != nil {
		log.Fatal(err)
	}
	exprs = append(exprs, lines...)
	if err := run(os.Stdout, cfg, exprs); err != nil {
		log.Fatal(err)
	}
}

// infile opens the expression input, or returns nil if there is none. Closing
// the result never closes stdin.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// readInput reads the lines of the expression input and closes it.
func readInput(inname string, std bool) ([]string, error) {
	in, err := infile(inname, std)
	if err != nil || in == nil {
		return nil, err
	}
	defer in.Close()
	return readLines(in)
}

// readLines collects the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if len(s.Bytes()) == 0 {
			continue
		}
		lines = append(lines, s.Text())
	}
	return lines, s.Err()
}
