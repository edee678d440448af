// Package matcher finds hashtag tokens in plain text.
//
// A token is '#' followed by one or more word characters, where a word
// character is a Unicode letter, an ASCII digit or '_'. The '#' must sit at
// the start of the text or right after whitespace, so "a#b" never matches.
//
// Matching walks grapheme clusters rather than bytes: a letter carrying
// combining marks stays inside the token, and a '#' that is only part of a
// larger cluster (the keycap sequence "#️⃣") never starts one. Offsets are
// reported in runes.
package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/riverfjs/hashtagview-go/internal/types"
)

type clusterKind int

const (
	kindOther clusterKind = iota
	kindSpace
	kindWord
	kindHash
)

type cluster struct {
	text      string
	runeStart int
	runeLen   int
	kind      clusterKind
}

func classify(c string) clusterKind {
	if c == "#" {
		return kindHash
	}
	r, _ := utf8.DecodeRuneInString(c)
	switch {
	case r == utf8.RuneError:
		return kindOther
	case unicode.IsSpace(r):
		return kindSpace
	case unicode.IsLetter(r), r >= '0' && r <= '9', r == '_':
		return kindWord
	default:
		return kindOther
	}
}

func segment(text string) []cluster {
	var clusters []cluster
	offset := 0
	state := -1
	for len(text) > 0 {
		c, rest, _, newState := uniseg.StepString(text, state)
		n := utf8.RuneCountInString(c)
		clusters = append(clusters, cluster{
			text:      c,
			runeStart: offset,
			runeLen:   n,
			kind:      classify(c),
		})
		offset += n
		text = rest
		state = newState
	}
	return clusters
}

// Find returns every token in text in document order. The result is
// non-overlapping and a pure function of text.
func Find(text string) []types.Token {
	if text == "" {
		return nil
	}
	clusters := segment(text)

	var tokens []types.Token
	for i := 0; i < len(clusters); {
		c := clusters[i]
		boundary := i == 0 || clusters[i-1].kind == kindSpace
		if c.kind != kindHash || !boundary || i+1 >= len(clusters) || clusters[i+1].kind != kindWord {
			i++
			continue
		}

		var sb strings.Builder
		sb.WriteString(c.text)
		length := c.runeLen
		j := i + 1
		for j < len(clusters) && clusters[j].kind == kindWord {
			sb.WriteString(clusters[j].text)
			length += clusters[j].runeLen
			j++
		}
		tokens = append(tokens, types.Token{
			Index: len(tokens),
			Range: types.Range{Start: c.runeStart, Length: length},
			Text:  sb.String(),
		})
		i = j
	}
	return tokens
}

// FindExcluding is Find with every token intersecting one of skip removed.
// Surviving tokens are renumbered.
func FindExcluding(text string, skip []types.Range) []types.Token {
	found := Find(text)
	if len(skip) == 0 {
		return found
	}

	var tokens []types.Token
	for _, tok := range found {
		excluded := false
		for _, r := range skip {
			if tok.Range.Intersects(r) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		tok.Index = len(tokens)
		tokens = append(tokens, tok)
	}
	return tokens
}
