package parser

import (
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/hashtagview-go/internal/types"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists)
	),
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) ast.Node {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	reader := text.NewReader(source)
	return md.Parser().Parse(reader)
}

// runeOffsetTable returns a slice where result[i] is the rune offset at byte i.
func runeOffsetTable(s string) []int {
	offsets := make([]int, len(s)+1)
	cum := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		for j := 0; j < size; j++ {
			offsets[i+j] = cum
		}
		cum++
		i += size
	}
	offsets[len(s)] = cum
	return offsets
}

// CodeRanges 返回 markdown 中行内代码与代码块内容所占的 rune 区间
//
// Hashtags inside these ranges are literal text, not tags. Ranges are in
// document order and may be adjacent (one per code block line).
func CodeRanges(markdown string) []types.Range {
	if markdown == "" {
		return nil
	}
	offsets := runeOffsetTable(markdown)
	toRange := func(seg text.Segment) (types.Range, bool) {
		if seg.Start < 0 || seg.Stop > len(markdown) || seg.Stop <= seg.Start {
			return types.Range{}, false
		}
		start := offsets[seg.Start]
		return types.Range{Start: start, Length: offsets[seg.Stop] - start}, true
	}

	var ranges []types.Range
	node := ParseAST(markdown)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.CodeSpan:
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					if r, ok := toRange(t.Segment); ok {
						ranges = append(ranges, r)
					}
				}
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				if r, ok := toRange(lines.At(i)); ok {
					ranges = append(ranges, r)
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return ranges
}
