package main

import (
	"fmt"
	"os"

	ui "github.com/grindlemire/go-ui"
)

// runCheck implements the check subcommand.
// It parses .ui files without writing any output.
func runCheck(args []string) error {
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

	if opts.verbose {
		fmt.Printf("Checking %d .ui file(s)\n", len(files))
	}

	var errorCount int
	for _, inputPath := range files {
		if opts.verbose {
			fmt.Printf("Checking %s\n", inputPath)
		}
		t, err := ui.LoadSource(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
			continue
		}
		if opts.verbose {
			fmt.Printf("  %d node(s)\n", t.Len())
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if opts.verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}
