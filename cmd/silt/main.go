package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"silt/pkg/errors"
	"silt/pkg/lexer"
	"silt/pkg/parser"
	"silt/pkg/source"
)

func main() {
	// Define flags
	exprFlag := flag.String("e", "", "Parse the given type expression and exit")
	astDumpFlag := flag.Bool("ast", false, "Show the structural dump instead of canonical output")
	placeholdersFlag := flag.Bool("placeholders", false, "Permit placeholder nodes when printing")

	flag.Parse()

	// -e "" is still an explicit expression; presence, not value, decides.
	exprSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			exprSet = true
		}
	})

	opts := parser.PrintOptions{ExpectPlaceholders: *placeholdersFlag}

	if exprSet {
		src := source.NewEvalSource(*exprFlag)
		if !run(src, *astDumpFlag, opts) {
			os.Exit(70) // Exit code 70: internal software error
		}
		return
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Usage: silt [file] or silt -e \"type expression\"\n")
		os.Exit(64) // Exit code 64: command line usage error
	} else if flag.NArg() == 1 {
		sourceBytes, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read file '%s': %s\n", flag.Arg(0), err.Error())
			os.Exit(70)
		}
		src := source.FromFile(flag.Arg(0), string(sourceBytes))
		if !run(src, *astDumpFlag, opts) {
			os.Exit(70)
		}
	} else {
		repl(*astDumpFlag, opts)
	}
}

// run parses one type expression from the source and writes either its
// canonical form or its structural dump to stdout.
func run(src *source.SourceFile, dumpAST bool, opts parser.PrintOptions) bool {
	r := parser.NewTokenReader(src, lexer.Tokenize(src))
	expr, err := parser.NewParser(r).ParseTypeExpression()
	if err != nil {
		displayError(src, err)
		return false
	}

	if dumpAST {
		fmt.Println(parser.DumpString(expr))
		return true
	}

	out, err := parser.Print(expr, opts)
	if err != nil {
		displayError(src, err)
		return false
	}
	fmt.Println(out)
	return true
}

// repl reads one type expression per line and echoes its canonical form.
func repl(dumpAST bool, opts parser.PrintOptions) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Silt (Ctrl+C to exit)")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println("\nGoodbye!")
				break // Exit loop on EOF (Ctrl+D)
			}
			fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		src := source.NewEvalSource(strings.TrimRight(line, "\r\n"))
		_ = run(src, dumpAST, opts) // Errors are displayed; the REPL keeps going
	}
}

func displayError(src *source.SourceFile, err error) {
	if se, ok := err.(errors.SiltError); ok {
		errors.DisplayErrors(src, []errors.SiltError{se})
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
