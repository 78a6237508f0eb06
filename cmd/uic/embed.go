package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"

	ui "github.com/grindlemire/go-ui"
)

// runEmbed implements the embed subcommand.
// It compiles .ui files and writes a Go file holding each .uib image as a
// byte slice, ready for ui.DecodeBinary.
func runEmbed(args []string) error {
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

	out := opts.output
	if out == "" {
		out = "ui_gen.go"
	}

	src, err := generateEmbed(opts.pkg, out, files)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	if opts.verbose {
		fmt.Printf("Embedded %d file(s) into %s\n", len(files), out)
	}
	return nil
}

// generateEmbed builds the Go source for the embed file.
func generateEmbed(pkg, filename string, files []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by uic embed. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	seen := make(map[string]string)
	for _, path := range files {
		t, err := ui.LoadSource(path)
		if err != nil {
			return nil, err
		}
		data, err := ui.EncodeBinary(t)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", path, err)
		}

		name := embedName(path)
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("%s and %s both map to %s", prev, path, name)
		}
		seen[name] = path

		fmt.Fprintf(&buf, "\n// %s is the compiled form of %s.\n", name, filepath.ToSlash(path))
		fmt.Fprintf(&buf, "var %s = []byte{", name)
		for i, b := range data {
			if i%16 == 0 {
				buf.WriteString("\n")
			}
			fmt.Fprintf(&buf, "0x%02x, ", b)
		}
		buf.WriteString("\n}\n")
	}

	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

// embedName derives an exported identifier from a file name:
//
//	hud.ui         -> HudUIB
//	main-menu.ui   -> MainMenuUIB
//	2_pause.ui     -> X2PauseUIB
func embedName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var sb strings.Builder
	upper := true
	for _, r := range base {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if sb.Len() == 0 && unicode.IsDigit(r) {
			sb.WriteByte('X')
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		sb.WriteString("Tree")
	}
	sb.WriteString("UIB")
	return sb.String()
}
