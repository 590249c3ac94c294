package pipeline

import (
	"regexp"

	"lectio/word"
)

// sentence terminators across the supported scripts. The Greek ano
// teleia (·) and question mark (;) count as boundaries.
var reBoundary = regexp.MustCompile(`[.;·!?]+`)

// words or numbers; apostrophe variants are kept inside tokens so
// elided forms (δ᾽, Tresqu'en) stay whole.
var reToken = regexp.MustCompile(`[\pL\pM\pN'’᾽]+`)

// Tokenizer splits raw text into sentences and words. Offsets are rune
// based, counted from the start of the document.
type Tokenizer struct{}

func (t *Tokenizer) Name() string { return "tokenize" }

func (t *Tokenizer) Run(doc *word.Doc) error {
	runes := []rune(doc.Raw)

	// Boundaries as rune ranges over the whole text.
	bounds := reBoundary.FindAllStringIndex(doc.Raw, -1)
	byteToRune := runeOffsets(doc.Raw)

	ends := make([]int, 0, len(bounds)+1)
	for _, b := range bounds {
		ends = append(ends, byteToRune[b[0]])
	}
	ends = append(ends, len(runes))

	matches := reToken.FindAllStringIndex(doc.Raw, -1)

	sent := word.Sentence{Id: 0}
	endIdx := 0
	for _, m := range matches {
		start := byteToRune[m[0]]

		for endIdx < len(ends)-1 && start >= ends[endIdx] {
			if len(sent.Words) > 0 {
				doc.Sentences = append(doc.Sentences, sent)
				sent = word.Sentence{Id: len(doc.Sentences)}
			}
			endIdx++
		}

		sent.Words = append(sent.Words, word.Word{
			Index:    len(sent.Words),
			Text:     doc.Raw[m[0]:m[1]],
			Idx:      start,
			Governor: -1,
		})
	}

	if len(sent.Words) > 0 {
		doc.Sentences = append(doc.Sentences, sent)
	}

	return nil
}

// runeOffsets maps byte offsets to rune offsets for a string.
func runeOffsets(s string) map[int]int {
	m := make(map[int]int, len(s))
	r := 0
	for i := range s {
		m[i] = r
		r++
	}
	m[len(s)] = r

	return m
}
