package hashtagview

import (
	"image/color"

	"github.com/riverfjs/hashtagview-go/internal/layout"
)

// Options holds the settings of a layout pass.
type Options struct {
	Config Config
	Engine Engine
}

// Option is a function that configures Options.
type Option func(*Options)

// WithConfig replaces the whole configuration.
func WithConfig(config *Config) Option {
	return func(opts *Options) {
		if config != nil {
			opts.Config = *config
		}
	}
}

// WithEngine sets the text layout engine.
func WithEngine(engine Engine) Option {
	return func(opts *Options) {
		if engine != nil {
			opts.Engine = engine
		}
	}
}

// WithMarkdown sets whether code spans and code blocks are skipped.
func WithMarkdown(enable bool) Option {
	return func(opts *Options) {
		opts.Config.Markdown = enable
	}
}

// WithHighlightColor sets the highlight background colour.
func WithHighlightColor(c color.RGBA) Option {
	return func(opts *Options) {
		opts.Config.HighlightColor = c
	}
}

// WithPadding sets the padding around highlighted runs.
func WithPadding(p Padding) Option {
	return func(opts *Options) {
		opts.Config.Padding = p
	}
}

// defaultOptions returns the default options.
func defaultOptions() *Options {
	return &Options{
		Config: *DefaultConfig(),
		Engine: layout.NewFaceEngine(nil),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithCornerRadius sets the corner radius of highlight rectangles.
func WithCornerRadius(radius float64) Option {
	return func(opts *Options) {
		opts.Config.CornerRadius = radius
	}
}

// WithDebug logs tokens that a layout pass could not place.
func WithDebug(enable bool) Option {
	return func(opts *Options) {
		opts.Config.Debug = enable
	}
}
