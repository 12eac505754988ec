package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/benjson/benjson"
)

func main() {
	var (
		inputFile   = flag.String("input", "", "Bencode input file (default stdin)")
		outputFile  = flag.String("output", "", "JSON output file (default stdout)")
		interactive = flag.Bool("i", false, "Interactive inspector TUI")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		benjson.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inputFile, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputFile, outputFile string) error {
	var in io.Reader = os.Stdin
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "reading bencode from stdin (pipe data or use -input FILE; ctrl-d to finish)")
	}

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	// The core writes byte-at-a-time; buffer both sides here.
	bw := bufio.NewWriter(out)
	if err := benjson.Transcode(bufio.NewReader(in), bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
