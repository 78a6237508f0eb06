package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ui "github.com/grindlemire/go-ui"
)

// loadTheme reads the -theme file, or returns the default theme.
func loadTheme(path string) (*ui.Theme, error) {
	if path == "" {
		return ui.DefaultTheme(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return ui.LoadTheme(path)
}

// loadContext reads the -ctx file. Nested mappings become dotted paths:
//
//	city:
//	  name: Springfield
//	  population: 1200
//
// sets city.name and city.population. It returns nil when path is empty.
func loadContext(path string) (*ui.Context, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context %s: %w", path, err)
	}
	return parseContext(data)
}

func parseContext(data []byte) (*ui.Context, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse context: %w", err)
	}
	ctx := ui.NewContext()
	if err := flatten(ctx, "", values); err != nil {
		return nil, err
	}
	return ctx, nil
}

func flatten(ctx *ui.Context, prefix string, values map[string]any) error {
	for key, v := range values {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := v.(type) {
		case map[string]any:
			if err := flatten(ctx, path, v); err != nil {
				return err
			}
		case int:
			ctx.SetInt(path, int64(v))
		case int64:
			ctx.SetInt(path, v)
		case uint64:
			ctx.SetFloat(path, float64(v))
		case float64:
			ctx.SetFloat(path, v)
		case bool:
			ctx.SetBool(path, v)
		case string:
			ctx.SetString(path, v)
		case nil:
			// A bare key leaves the path unset.
		default:
			return fmt.Errorf("context %s: unsupported value of type %T", path, v)
		}
	}
	return nil
}
