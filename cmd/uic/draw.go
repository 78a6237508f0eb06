package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/internal/htmlpreview"
	"github.com/grindlemire/go-ui/internal/raster"
)

// scene is a loaded tree laid out for drawing.
type scene struct {
	tree   *ui.Tree
	theme  *ui.Theme
	ctx    *ui.Context
	layout *ui.LayoutEngine
}

// loadScene loads path, the -theme and -ctx files, and computes layout.
func loadScene(opts *options, path string) (*scene, error) {
	t, err := ui.Load(path)
	if err != nil {
		return nil, err
	}
	theme, err := loadTheme(opts.theme)
	if err != nil {
		return nil, err
	}
	ctx, err := loadContext(opts.ctx)
	if err != nil {
		return nil, err
	}

	layoutOpts := []ui.LayoutOption{ui.WithTheme(theme)}
	if ctx != nil {
		layoutOpts = append(layoutOpts, ui.WithContext(ctx))
	}
	l := ui.NewLayoutEngine(layoutOpts...)
	l.ComputeLayout(t, opts.width, opts.height)

	return &scene{tree: t, theme: theme, ctx: ctx, layout: l}, nil
}

// draw renders the scene onto s.
func (sc *scene) draw(s ui.Surface) {
	ui.NewRenderer(sc.theme).Render(sc.tree, sc.layout, sc.ctx, s)
}

// outputPath returns -o, or path with its extension replaced by ext.
func outputPath(opts *options, path, ext string) string {
	if opts.output != "" {
		return opts.output
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// runRender implements the render subcommand.
// It draws a tree to a PNG image.
func runRender(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	path, err := opts.single()
	if err != nil {
		return err
	}

	sc, err := loadScene(opts, path)
	if err != nil {
		return err
	}
	canvas := raster.New(int(opts.width), int(opts.height))
	sc.draw(canvas)

	out := outputPath(opts, path, ".png")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if opts.verbose {
		fmt.Printf("Rendered %s -> %s\n", path, out)
	}
	return nil
}

// runPreview implements the preview subcommand.
// It draws a tree to a standalone HTML page.
func runPreview(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	path, err := opts.single()
	if err != nil {
		return err
	}

	sc, err := loadScene(opts, path)
	if err != nil {
		return err
	}
	doc := htmlpreview.New(filepath.Base(path), opts.width, opts.height)
	sc.draw(doc)

	out := outputPath(opts, path, ".html")
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	if opts.verbose {
		fmt.Printf("Previewed %s -> %s (%d draw calls)\n", path, out, doc.Len())
	}
	return nil
}
