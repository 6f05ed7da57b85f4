package editing

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// segment is a word-break segment of the buffer, in rune offsets.
type segment struct {
	start, end int
	word       bool
}

// wordSegments splits rs at Unicode word boundaries (UAX #29). Segments
// made only of spaces or punctuation are marked as non-words.
func wordSegments(rs []rune) []segment {
	var segs []segment
	rest := string(rs)
	state := -1
	offset := 0
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(word)
		segs = append(segs, segment{start: offset, end: offset + n, word: isWordLike(word)})
		offset += n
	}
	return segs
}

func isWordLike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			return true
		}
	}
	return false
}

// previousWordStart returns the start of the word at or before caret,
// skipping any spaces or punctuation directly before it.
func previousWordStart(rs []rune, caret int) int {
	segs := wordSegments(rs)
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].word && segs[i].start < caret {
			return segs[i].start
		}
	}
	return 0
}

// nextWordEnd returns the end of the word at or after caret, skipping any
// spaces or punctuation directly after it.
func nextWordEnd(rs []rune, caret int) int {
	for _, seg := range wordSegments(rs) {
		if seg.word && seg.end > caret {
			return seg.end
		}
	}
	return len(rs)
}
