package ui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme holds the named values and per-component defaults used when an
// attribute is missing or cannot be resolved.
type Theme struct {
	Colors     map[string]Color
	Spacing    map[string]float32
	TextScales map[string]float32

	Text             Color
	PanelBackground  Color
	ButtonBackground Color
	ButtonText       Color
	ProgressTrack    Color
	ProgressFill     Color

	TextScale     float32
	ButtonPadding float32
	IconSize      float32
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: map[string]Color{
			"white": RGBA8(0xff, 0xff, 0xff, 0xff),
			"black": RGBA8(0x00, 0x00, 0x00, 0xff),
		},
		Spacing:    map[string]float32{},
		TextScales: map[string]float32{},

		Text:             RGBA8(0xff, 0xff, 0xff, 0xff),
		PanelBackground:  RGBA8(0x1e, 0x1e, 0x24, 0xe0),
		ButtonBackground: RGBA8(0x2c, 0x3e, 0x50, 0xff),
		ButtonText:       RGBA8(0xff, 0xff, 0xff, 0xff),
		ProgressTrack:    RGBA8(0x33, 0x33, 0x33, 0xff),
		ProgressFill:     RGBA8(0x2e, 0xcc, 0x71, 0xff),

		TextScale:     1,
		ButtonPadding: 4,
		IconSize:      16,
	}
}

// Color looks up a named color. A "#RRGGBB[AA]" string is also accepted.
func (t *Theme) Color(name string) (Color, bool) {
	if t != nil {
		if c, ok := t.Colors[name]; ok {
			return c, true
		}
	}
	if strings.HasPrefix(name, "#") {
		if c, err := ParseColor(name); err == nil {
			return c, true
		}
	}
	return Color{}, false
}

// Space looks up a named spacing value.
func (t *Theme) Space(name string) (float32, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t.Spacing[name]
	return v, ok
}

// Scale looks up a named text scale.
func (t *Theme) Scale(name string) (float32, bool) {
	if t == nil {
		return 0, false
	}
	v, ok := t.TextScales[name]
	return v, ok
}

// themeFile is the YAML shape of a theme. Colors are hex strings.
type themeFile struct {
	Colors     map[string]string  `yaml:"colors"`
	Spacing    map[string]float32 `yaml:"spacing"`
	TextScales map[string]float32 `yaml:"text_scales"`
	Defaults   struct {
		Text             string   `yaml:"text"`
		PanelBackground  string   `yaml:"panel_background"`
		ButtonBackground string   `yaml:"button_background"`
		ButtonText       string   `yaml:"button_text"`
		ProgressTrack    string   `yaml:"progress_track"`
		ProgressFill     string   `yaml:"progress_fill"`
		TextScale        *float32 `yaml:"text_scale"`
		ButtonPadding    *float32 `yaml:"button_padding"`
		IconSize         *float32 `yaml:"icon_size"`
	} `yaml:"defaults"`
}

// LoadTheme reads a YAML theme file layered over DefaultTheme.
// A missing file yields the defaults.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultTheme(), nil
		}
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes YAML theme data layered over DefaultTheme.
func ParseTheme(data []byte) (*Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	t := DefaultTheme()
	for name, hex := range f.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("theme color %s: %w", name, err)
		}
		t.Colors[name] = c
	}
	for name, v := range f.Spacing {
		t.Spacing[name] = v
	}
	for name, v := range f.TextScales {
		t.TextScales[name] = v
	}

	defaults := []struct {
		key string
		src string
		dst *Color
	}{
		{"text", f.Defaults.Text, &t.Text},
		{"panel_background", f.Defaults.PanelBackground, &t.PanelBackground},
		{"button_background", f.Defaults.ButtonBackground, &t.ButtonBackground},
		{"button_text", f.Defaults.ButtonText, &t.ButtonText},
		{"progress_track", f.Defaults.ProgressTrack, &t.ProgressTrack},
		{"progress_fill", f.Defaults.ProgressFill, &t.ProgressFill},
	}
	for _, d := range defaults {
		if d.src == "" {
			continue
		}
		c, ok := t.Color(d.src)
		if !ok {
			return nil, fmt.Errorf("theme default %s: unknown color %q", d.key, d.src)
		}
		*d.dst = c
	}

	if f.Defaults.TextScale != nil {
		t.TextScale = *f.Defaults.TextScale
	}
	if f.Defaults.ButtonPadding != nil {
		t.ButtonPadding = *f.Defaults.ButtonPadding
	}
	if f.Defaults.IconSize != nil {
		t.IconSize = *f.Defaults.IconSize
	}
	return t, nil
}
