package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	hv "github.com/riverfjs/hashtagview-go"
)

// fileConfig is the YAML config file layout.
type fileConfig struct {
	Highlight    string      `yaml:"highlight"`
	Text         string      `yaml:"text"`
	Background   string      `yaml:"background"`
	Padding      *hv.Padding `yaml:"padding"`
	CornerRadius *float64    `yaml:"corner_radius"`
	StrokeWidth  *float64    `yaml:"stroke_width"`
	FontSize     float64     `yaml:"font_size"`
	Markdown     bool        `yaml:"markdown"`
}

// renderConfig is a resolved fileConfig.
type renderConfig struct {
	View        hv.Config
	Text        color.RGBA
	Background  color.RGBA
	StrokeWidth float64
	FontSize    float64
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		View:        *hv.DefaultConfig(),
		Text:        color.RGBA{A: 0xff},
		Background:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		StrokeWidth: 1,
		FontSize:    14,
	}
}

// loadConfig reads path on top of the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (renderConfig, error) {
	cfg := defaultRenderConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc.apply(cfg)
}

func (fc fileConfig) apply(cfg renderConfig) (renderConfig, error) {
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"highlight", fc.Highlight, &cfg.View.HighlightColor},
		{"text", fc.Text, &cfg.Text},
		{"background", fc.Background, &cfg.Background},
	} {
		if c.hex == "" {
			continue
		}
		rgba, err := parseHex(c.hex)
		if err != nil {
			return cfg, fmt.Errorf("%s colour: %w", c.name, err)
		}
		*c.dst = rgba
	}

	if fc.Padding != nil {
		cfg.View.Padding = *fc.Padding
	}
	if fc.CornerRadius != nil {
		if *fc.CornerRadius < 0 {
			return cfg, fmt.Errorf("corner_radius must not be negative: %v", *fc.CornerRadius)
		}
		cfg.View.CornerRadius = *fc.CornerRadius
	}
	if fc.StrokeWidth != nil {
		cfg.StrokeWidth = *fc.StrokeWidth
	}
	if fc.FontSize > 0 {
		cfg.FontSize = fc.FontSize
	}
	cfg.View.Markdown = fc.Markdown
	return cfg, nil
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
