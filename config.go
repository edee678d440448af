package hashtagview

import (
	"image/color"
	"sync"

	"github.com/riverfjs/hashtagview-go/internal/geom"
	"github.com/riverfjs/hashtagview-go/internal/layout"
	"github.com/riverfjs/hashtagview-go/internal/registry"
	"github.com/riverfjs/hashtagview-go/internal/render"
	"github.com/riverfjs/hashtagview-go/internal/types"
)

// 导出类型别名
type (
	Token         = types.Token
	Range         = types.Range
	Point         = types.Point
	Size          = types.Size
	Rect          = types.Rect
	Line          = types.Line
	Run           = types.Run
	MessageEntity = types.MessageEntity
	Padding       = geom.Padding
	Engine        = layout.Engine
	Surface       = render.Surface
	Registry      = registry.Registry
	Entry         = registry.Entry
)

// DefaultHighlightColor is the background drawn behind hashtags.
var DefaultHighlightColor = color.RGBA{R: 0xd6, G: 0xe9, B: 0xff, A: 0xff}

// Config 渲染配置
type Config struct {
	HighlightColor color.RGBA
	Padding        Padding
	CornerRadius   float64
	// Markdown skips hashtags inside code spans and code blocks.
	Markdown bool
	// Debug logs every token dropped during a layout pass.
	Debug bool
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
// Callers must not modify it; options work on a copy.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = &Config{
			HighlightColor: DefaultHighlightColor,
			Padding:        geom.DefaultPadding,
			CornerRadius:   geom.DefaultCornerRadius,
		}
	})
	return defaultConfig
}
