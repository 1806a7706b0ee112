package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"

	"github.com/agenthands/jsonlex/pkg/lexer"
)

const usage = "Usage: jsonlex [-trace] [glog flags] [lex|format|dump] <file.json|-> | jsonlex demo"

var errUsage = errors.New(usage)

// dumpConfig prints token fields rather than their display form.
var dumpConfig = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

func main() {
	trace := flag.Bool("trace", false, "Log lexer transitions (glog -v=3) and tokens (-v=2)")
	flag.Parse()
	defer glog.Flush()

	if err := run(flag.Args(), *trace, os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			glog.Errorf("jsonlex: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(args []string, trace bool, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	mode := args[0]
	var src []byte
	switch mode {
	case "demo":
		mode = "lex"
		src = []byte(demoInput)
		fmt.Fprintf(stdout, "input = %s\n", demoInput)
	case "lex", "format", "dump":
		if len(args) < 2 {
			return errUsage
		}
		var err error
		if src, err = readInput(args[1], stdin); err != nil {
			return fmt.Errorf("reading %s: %w", args[1], err)
		}
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	l := lexer.New(lexer.WithTrace(trace), lexer.WithCapacity(len(src)/4))
	tokens, err := l.Lex(src)
	if err != nil {
		return err
	}
	glog.Infof("jsonlex: %d bytes, %d tokens", len(src), len(tokens))

	switch mode {
	case "lex":
		for _, line := range lexer.Display(tokens) {
			fmt.Fprintln(stdout, line)
		}
	case "format":
		fmt.Fprintln(stdout, lexer.Format(tokens))
	case "dump":
		fmt.Fprint(stdout, dumpConfig.Sdump(tokens))
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
