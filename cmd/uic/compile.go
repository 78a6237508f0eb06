package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	ui "github.com/grindlemire/go-ui"
)

// runCompile implements the compile subcommand.
// It compiles .ui files to .uib files in parallel. Output goes next to each
// source unless -o names a directory.
func runCompile(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	files, err := collectFiles(opts.paths, ".ui")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .ui files found")
	}

	if opts.output != "" {
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", opts.output, err)
		}
	}

	if opts.verbose {
		fmt.Printf("Found %d .ui file(s)\n", len(files))
	}

	var failed atomic.Int32
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for _, inputPath := range files {
		outputPath := compileOutput(inputPath, opts.output)
		eg.Go(func() error {
			if err := ui.Compile(inputPath, outputPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				failed.Add(1)
				return nil
			}
			if opts.verbose {
				fmt.Printf("Compiled %s -> %s\n", inputPath, outputPath)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}
	if opts.verbose {
		fmt.Printf("Successfully compiled %d file(s)\n", len(files))
	}
	return nil
}

// compileOutput returns where the binary form of inputPath is written.
func compileOutput(inputPath, outDir string) string {
	out := ui.BinaryPath(inputPath)
	if outDir == "" {
		return out
	}
	return filepath.Join(outDir, filepath.Base(out))
}
