// sdw CLI - parses Shadow source files and reports diagnostics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shadow-lang/sdw/compiler"
	"github.com/shadow-lang/sdw/dist"
	"github.com/shadow-lang/sdw/manifest"
	"github.com/shadow-lang/sdw/server"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output (include source excerpts in diagnostics)")
	emitAST := flag.String("emit-ast", "", "Write the parsed AST as CBOR to the given path")
	serveMode := flag.Bool("serve", false, "Start the LSP diagnostics server on stdio")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sdw [options] [file.sdw]\n\n")
		fmt.Fprintf(os.Stderr, "Parses a Shadow source file and reports diagnostics.\n")
		fmt.Fprintf(os.Stderr, "Without a file argument, the entry point from sdw.toml is used.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sdw main.sdw                 # Check main.sdw\n")
		fmt.Fprintf(os.Stderr, "  sdw -v main.sdw              # Check with source excerpts\n")
		fmt.Fprintf(os.Stderr, "  sdw -emit-ast main.ast main.sdw\n")
		fmt.Fprintf(os.Stderr, "  sdw --serve                  # LSP server for editors\n")
	}
	flag.Parse()

	if *serveMode {
		if err := server.NewLSP().Run(); err != nil {
			fmt.Fprintf(os.Stderr, "LSP server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := flag.Arg(0)
	astOut := *emitAST
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		m, err := manifest.FindAndLoad(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading sdw.toml: %v\n", err)
			os.Exit(1)
		}
		if m == nil || m.Source.Entry == "" {
			flag.Usage()
			os.Exit(2)
		}
		path = m.EntryPath()
		if astOut == "" {
			astOut = m.Build.ASTOutput
		}
		if m.Build.Verbose {
			*verbose = true
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}
	source := string(data)

	lexemes, lerr := compiler.Lex(source)
	if lerr != nil {
		report(lerr, source, *verbose)
		os.Exit(1)
	}

	root, perr := compiler.Parse(lexemes)
	if perr != nil {
		report(perr, source, *verbose)
		os.Exit(1)
	}

	if astOut != "" {
		encoded, err := dist.MarshalRoot(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding AST: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(astOut, encoded, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", astOut, err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Printf("wrote AST (%d bytes) to %s\n", len(encoded), astOut)
		}
	}

	if *verbose {
		fmt.Printf("parsed %d top-level statements from %s\n", len(root.Statements), path)
	}
}

// report prints a diagnostic to stderr; verbose mode adds the
// caret-underlined source excerpt.
func report(err *compiler.Error, source string, verbose bool) {
	if verbose {
		fmt.Fprintln(os.Stderr, compiler.Render(err, source))
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}
