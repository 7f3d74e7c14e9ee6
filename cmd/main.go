package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Verdex/code-gen/internal/compiler_errors"
	"github.com/Verdex/code-gen/internal/emitter"
	"github.com/Verdex/code-gen/internal/loader"
	"github.com/peterh/liner"
	"github.com/sanity-io/litter"
)

const promptMain = "lua> "

func main() {
	outputPath := flag.String("o", "", "write generated Lua to this file instead of stdout")
	dump := flag.Bool("dump", false, "dump the loaded tree to stderr")
	interactive := flag.Bool("i", false, "read one statement per line and print its Lua")
	flag.Parse()

	eh := compiler_errors.NewErrorHandler(os.Stderr)

	if *interactive {
		os.Exit(repl(eh, *dump))
	}

	fileName := flag.Arg(0)
	fileData, err := readInput(fileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	chunk := loader.NewLoader(fileName, eh).Load(fileData)
	if eh.HasErrors() {
		eh.FailNow()
	}

	if *dump {
		fmt.Fprintln(os.Stderr, litter.Sdump(chunk))
	}

	lua := emitter.NewEmitter(chunk).Emit()

	if *outputPath == "" {
		fmt.Print(lua)
		return
	}

	if err := os.WriteFile(*outputPath, []byte(lua), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readInput(fileName string) ([]byte, error) {
	if fileName == "" || fileName == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(fileName)
}

func repl(eh compiler_errors.ErrorHandler, dump bool) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	l := loader.NewLoader("<repl>", eh)

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			fmt.Println()
			return 0
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return 0
		}
		ln.AppendHistory(line)

		stmt := l.LoadStmt([]byte(line))
		if eh.HasErrors() {
			eh.Flush()
			continue
		}

		if dump {
			litter.Dump(stmt)
		}
		fmt.Println(emitter.EmitStmt(stmt, 0))
	}
}
