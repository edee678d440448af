package hashtagview

// EntityTypeHashtag is the Telegram entity type for hashtags.
const EntityTypeHashtag = "hashtag"

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Chat APIs such as Telegram measure entity offsets and lengths in UTF-16
// code units, not Go string bytes or runes. Characters outside the BMP
// (codepoint > 0xFFFF) take 2 UTF-16 code units (a surrogate pair); all
// others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// buildUTF16OffsetTable builds a cumulative UTF-16 offset table for each rune index.
// Returns a slice where result[i] is the UTF-16 offset at rune index i.
func buildUTF16OffsetTable(text string) []int {
	offsets := make([]int, 0, len(text)+1)
	cum := 0
	for _, r := range text {
		offsets = append(offsets, cum)
		if r > 0xFFFF {
			cum += 2
		} else {
			cum++
		}
	}
	return append(offsets, cum)
}

// Entities converts tokens found in text into hashtag entities addressed in
// UTF-16 code units. Tokens whose range falls outside text are skipped.
func Entities(text string, tokens []Token) []MessageEntity {
	if len(tokens) == 0 {
		return nil
	}
	offsets := buildUTF16OffsetTable(text)

	entities := make([]MessageEntity, 0, len(tokens))
	for _, tok := range tokens {
		start, end := tok.Range.Start, tok.Range.End()
		if start < 0 || end >= len(offsets) || end <= start {
			continue
		}
		entities = append(entities, MessageEntity{
			Type:   EntityTypeHashtag,
			Offset: offsets[start],
			Length: offsets[end] - offsets[start],
		})
	}
	return entities
}
