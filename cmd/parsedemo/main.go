/*
 * rparse
 *
 * A data-driven parsing engine: a runtime-configurable lexer plus a
 * tree-walking grammar interpreter.
 */

// Command parsedemo drives the sample grammar (package samplegrammar)
// from the command line, for manual exploration of the lexer and parser.
// It is not part of the core engine; rparse's library packages never
// import it.
package main

import (
	"fmt"
	"os"

	"devt.de/krotik/common/stringutil"
	"github.com/spf13/cobra"

	"github.com/parsekit/rparse/config"
	"github.com/parsekit/rparse/parser"
	"github.com/parsekit/rparse/samplegrammar"
	"github.com/parsekit/rparse/util"
)

var (
	entry string
	debug bool
)

func main() {
	root := &cobra.Command{
		Use:     "parsedemo",
		Short:   "Explore the rparse sample grammar",
		Version: config.ProductVersion,
	}

	root.PersistentFlags().StringVar(&entry, "entry", samplegrammar.EntryNode, "grammar node to parse from")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log Print/Debug trace output to stderr")

	root.AddCommand(tokensCmd(), parseCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Lex a source file and print the resulting token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(args[0])
			if err != nil {
				return err
			}

			lx := samplegrammar.NewLexer()
			toks, err := lx.Lex(text)
			if err != nil {
				return fmt.Errorf("lex: %w", err)
			}

			tabData := []string{"Token", "Text"}
			for _, tok := range toks {
				tabData = append(tabData, tok.String(), lx.Stringify(text, tok))
			}
			fmt.Print(stringutil.PrintGraphicStringTable(tabData, 2, 1,
				stringutil.SingleDoubleLineTable))
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Lex and parse a source file, printing the resulting AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(args[0])
			if err != nil {
				return err
			}

			lx := samplegrammar.NewLexer()
			toks, err := lx.Lex(text)
			if err != nil {
				return fmt.Errorf("lex: %w", err)
			}

			logger := traceLogger()
			res, err := parser.ParseWithLogger(samplegrammar.NewGrammar(), toks, text, entry, logger)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			out, err := parser.PrettyPrint(res.Entry)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// traceLogger returns a memory-backed logger sized from config that
// drains each entry to stderr as soon as it is logged; the AST itself is
// printed to stdout after parsing finishes.
func traceLogger() util.Logger {
	level := util.LogLevelError
	if debug {
		level = util.LogLevelDebug
	}
	mem := util.NewMemoryLogger(config.Int(config.TraceBufferSize))
	return traceAndFlush{mem, level}
}

type traceAndFlush struct {
	mem   *util.MemoryLogger
	level util.LogLevel
}

func (t traceAndFlush) LogError(v ...interface{}) {
	t.mem.LogError(v...)
	t.flush()
}

func (t traceAndFlush) LogInfo(v ...interface{}) {
	if t.level >= util.LogLevelInfo {
		t.mem.LogInfo(v...)
		t.flush()
	}
}

func (t traceAndFlush) LogDebug(v ...interface{}) {
	if t.level >= util.LogLevelDebug {
		t.mem.LogDebug(v...)
		t.flush()
	}
}

func (t traceAndFlush) flush() {
	for _, e := range t.mem.Entries() {
		fmt.Fprintln(os.Stderr, e)
	}
	t.mem.Reset()
}
