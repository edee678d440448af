// Package hashtagview 在纯文本中高亮 hashtag，并根据点击位置解析被点中的 hashtag
//
// 这个包把字符区间（hashtag 在文本中的位置）和像素几何（排版后的矩形）连接起来。
//
// 核心功能：
//   - 按 Unicode 字素簇扫描 #tag（'#' 前必须是文本开头或空白）
//   - 将每个 hashtag 映射为排版结果中的 run 与矩形
//   - 在每个高亮 run 背后绘制圆角矩形
//   - 根据点击坐标找出对应的 hashtag
//
// 主要 API：
//   - LayoutPass(): 纯函数，一次完整的匹配 + 排版 + 注册表构建，返回不可变 Snapshot
//   - View: 宿主持有的状态，文本或尺寸变化时重新排版并原子替换 Snapshot
//
// 示例：
//
//	view := hashtagview.NewView(hashtagview.WithMarkdown(true))
//	view.OnTap(func(tok hashtagview.Token) {
//	    openHashtag(tok.Text)
//	})
//	view.SetBounds(hashtagview.Size{Width: 320, Height: 200})
//	view.SetText("release notes for #rocket.chat")
//
//	view.Draw(surface)
//	view.HandleTap(hashtagview.Point{X: 140, Y: 8})
package hashtagview

import (
	"github.com/riverfjs/hashtagview-go/internal/layout"
	"github.com/riverfjs/hashtagview-go/internal/matcher"
	"github.com/riverfjs/hashtagview-go/internal/parser"
	"github.com/riverfjs/hashtagview-go/internal/registry"
	"github.com/riverfjs/hashtagview-go/internal/render"
)

// Snapshot is everything one layout pass produced. It is never modified, so
// a paint and a tap reading the same Snapshot always agree.
type Snapshot struct {
	Text   string
	Bounds Size
	// Tokens are all matches of the pass, in document order.
	Tokens []Token
	// Dropped are tokens that could not be placed in the layout.
	Dropped  []Token
	Lines    []Line
	Registry *Registry

	engine Engine
	config Config
}

// LayoutPass 执行一次完整的排版
//
// 步骤：
//  1. 匹配 hashtag（Markdown 模式下跳过代码区域）
//  2. 将 hashtag 转为排版属性，无法定位的 hashtag 本次丢弃
//  3. 调用排版引擎生成行与 run
//  4. 构建注册表（矩形 → hashtag）
func LayoutPass(text string, box Size, opts ...Option) *Snapshot {
	return layoutPass(text, box, applyOptions(opts...))
}

func layoutPass(text string, box Size, o *Options) *Snapshot {
	var tokens []Token
	if o.Config.Markdown {
		tokens = matcher.FindExcluding(text, parser.CodeRanges(text))
	} else {
		tokens = matcher.Find(text)
	}
	return placeTokens(text, box, tokens, o)
}

// placeTokens runs the layout half of a pass for an already matched set of
// tokens.
func placeTokens(text string, box Size, tokens []Token, o *Options) *Snapshot {
	adapter := layout.NewAdapter(o.Engine, o.Config.HighlightColor)
	attrs, dropped := adapter.Attribute(text, tokens)
	for _, tok := range dropped {
		debugf(o.Config, "dropped token %q at %d+%d: range does not resolve", tok.Text, tok.Range.Start, tok.Range.Length)
	}

	lines := adapter.Layout(text, attrs, box)
	reg := registry.Build(lines, o.Engine, tokens, box.Height, o.Config.Padding)
	if reg.Skipped > 0 {
		debugf(o.Config, "skipped %d highlighted runs without a layout position", reg.Skipped)
	}

	return &Snapshot{
		Text:     text,
		Bounds:   box,
		Tokens:   tokens,
		Dropped:  dropped,
		Lines:    lines,
		Registry: reg,
		engine:   o.Engine,
		config:   o.Config,
	}
}

// Resolve returns the hashtag under p, in view coordinates.
func (s *Snapshot) Resolve(p Point) (Token, bool) {
	return s.Registry.Resolve(p)
}

// Draw paints the highlight backgrounds onto surface and returns how many
// were drawn.
func (s *Snapshot) Draw(surface Surface) int {
	r := render.NewRenderer(s.engine)
	r.Padding = s.config.Padding
	r.CornerRadius = s.config.CornerRadius
	return r.Draw(surface, s.Lines, s.Bounds.Height)
}

// Entities returns the hashtag entities of the resolved tokens.
func (s *Snapshot) Entities() []MessageEntity {
	return Entities(s.Text, s.Resolved())
}

// Resolved returns the tokens that were not dropped.
func (s *Snapshot) Resolved() []Token {
	if len(s.Dropped) == 0 {
		return s.Tokens
	}
	dropped := make(map[int]bool, len(s.Dropped))
	for _, tok := range s.Dropped {
		dropped[tok.Index] = true
	}
	var out []Token
	for _, tok := range s.Tokens {
		if !dropped[tok.Index] {
			out = append(out, tok)
		}
	}
	return out
}
