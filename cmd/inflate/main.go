package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/flatebit/inflate"
)

func main() {
	inputFile := flag.String("i", "", "input file (raw DEFLATE stream)")
	outputFile := flag.String("o", "", "output file")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}

	fileIn, err := os.Open(*inputFile)
	if err != nil {
		slog.Error("open input", "file", *inputFile, "err", err)
		os.Exit(1)
	}
	defer fileIn.Close()

	r, err := inflate.NewReader(fileIn)
	if err != nil {
		slog.Error("inflate", "file", *inputFile, "err", err)
		os.Exit(1)
	}
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		slog.Error("inflate", "file", *inputFile, "err", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, decoded, 0o644); err != nil {
		slog.Error("write output", "file", *outputFile, "err", err)
		os.Exit(1)
	}

	slog.Info("inflated", "in", *inputFile, "out", *outputFile, "bytes", len(decoded))
}
