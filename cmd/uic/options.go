package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// options holds the flags shared by the subcommands. Each subcommand reads
// the ones it understands.
type options struct {
	verbose bool
	output  string
	theme   string
	ctx     string
	pkg     string
	width   float32
	height  float32
	write   bool // fmt: rewrite files in place
	check   bool // fmt: report unformatted files
	paths   []string
}

// parseOptions parses flags in the hand-rolled style of the other commands:
// boolean flags stand alone and valued flags consume the next argument.
func parseOptions(args []string) (*options, error) {
	opts := &options{width: 800, height: 600, pkg: "ui"}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("flag %s needs a value", arg)
			}
			i++
			return args[i], nil
		}
		dimension := func() (float32, error) {
			v, err := value()
			if err != nil {
				return 0, err
			}
			n, err := strconv.ParseFloat(v, 32)
			if err != nil || n <= 0 {
				return 0, fmt.Errorf("flag %s: %q is not a positive number", arg, v)
			}
			return float32(n), nil
		}

		var err error
		switch arg {
		case "-v", "--verbose":
			opts.verbose = true
		case "-w", "--write":
			opts.write = true
		case "-check", "--check":
			opts.check = true
		case "-o", "--output":
			opts.output, err = value()
		case "-theme", "--theme":
			opts.theme, err = value()
		case "-ctx", "--ctx":
			opts.ctx, err = value()
		case "-pkg", "--pkg":
			opts.pkg, err = value()
		case "-width", "--width":
			opts.width, err = dimension()
		case "-height", "--height":
			opts.height, err = dimension()
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return nil, fmt.Errorf("unknown flag: %s", arg)
			}
			opts.paths = append(opts.paths, arg)
		}
		if err != nil {
			return nil, err
		}
	}

	return opts, nil
}

// single returns the one input path a drawing command works on.
func (o *options) single() (string, error) {
	if len(o.paths) != 1 {
		return "", fmt.Errorf("expected exactly one input file, got %d", len(o.paths))
	}
	return o.paths[0], nil
}

// collectFiles finds files with the given extension from the given paths.
// Supports:
//   - Direct file paths: "hud.ui"
//   - Directory paths: "./layouts"
//   - Recursive pattern: "./..."
func collectFiles(paths []string, ext string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ext) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ext) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
	}

	return files, nil
}
