package main

import (
	"fmt"
	"os"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/internal/uigen"
)

// runFmt implements the fmt subcommand.
// By default formatted source is printed; -w rewrites files and --check only
// reports files that are not formatted. Files with comments are never
// rewritten since formatting drops them.
func runFmt(args []string) error {
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

	var errorCount, unformatted int
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			errorCount++
			continue
		}

		formatted, err := formatSource(path, string(source))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
			continue
		}

		switch {
		case opts.check:
			if formatted != string(source) {
				fmt.Println(path)
				unformatted++
			}
		case opts.write:
			if formatted == string(source) {
				continue
			}
			if uigen.HasComments(string(source)) {
				fmt.Fprintf(os.Stderr, "%s: skipped, formatting would drop comments\n", path)
				continue
			}
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				errorCount++
				continue
			}
			if opts.verbose {
				fmt.Printf("Formatted %s\n", path)
			}
		default:
			fmt.Print(formatted)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if unformatted > 0 {
		return fmt.Errorf("%d file(s) need formatting", unformatted)
	}
	return nil
}

// formatSource parses source and prints it in canonical form.
func formatSource(filename, source string) (string, error) {
	t, err := ui.Parse(filename, source)
	if err != nil {
		return "", err
	}
	return ui.Format(t), nil
}
