// Package main provides the CLI tool for .ui files.
//
// Usage:
//
//	uic compile [path...]    Compile .ui files to .uib
//	uic check [path...]      Check .ui files without writing output
//	uic fmt [path...]        Format .ui files
//	uic dump <file>          Print a tree with its computed layout
//	uic render <file>        Draw a tree to a PNG image
//	uic preview <file>       Draw a tree to an HTML page
//	uic embed [path...]      Generate a Go file embedding compiled trees
//	uic help                 Show help
//
// Examples:
//
//	uic compile ./...        Recursively find and compile all .ui files
//	uic render -o hud.png hud.ui
//	uic preview -ctx state.yaml -o hud.html hud.ui
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-ui/internal/debug"
)

const version = "0.1.0"

const usage = `uic - compiler and preview tool for .ui layouts

Usage:
  uic <command> [options] [path...]

Commands:
  compile     Compile .ui files to binary .uib files
  check       Check .ui files without writing output
  fmt         Format .ui files
  dump        Print a tree with its computed layout
  render      Draw a tree to a PNG image
  preview     Draw a tree to an HTML page
  embed       Generate a Go file embedding compiled trees
  version     Print version information
  help        Show this help message

Options:
  -v              Verbose output
  -o <path>       Output file (render, preview, embed) or directory (compile)
  -theme <file>   YAML theme for dump, render and preview
  -ctx <file>     YAML context values for dump, render and preview
  -width <n>      Viewport width (default 800)
  -height <n>     Viewport height (default 600)
  -pkg <name>     Package name for embed (default "ui")

Examples:
  uic compile ./...                       Recursively compile all .ui files
  uic compile -o build ./layouts          Write .uib files into build/
  uic check hud.ui                        Check syntax only
  uic fmt -w ./...                        Format all .ui files in place
  uic fmt --check ./...                   Check formatting without modifying
  uic dump -width 1280 -height 720 hud.uib
  uic render -ctx state.yaml -o hud.png hud.ui
  uic preview -theme dark.yaml -o hud.html hud.ui
  uic embed -pkg assets -o assets/ui_gen.go ./layouts

Set UI_DEBUG=/path/to/log to write a debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "compile":
		err = runCompile(args)
	case "check":
		err = runCheck(args)
	case "fmt":
		err = runFmt(args)
	case "dump":
		err = runDump(args)
	case "render":
		err = runRender(args)
	case "preview":
		err = runPreview(args)
	case "embed":
		err = runEmbed(args)
	case "version":
		fmt.Printf("uic version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
