package stat

import (
	"lectio/word"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences         int
	NumWords             int
	WordsPerSentenceMean int

	// WordsPerSentenceDis is the distribution of sentence lengths.
	WordsPerSentenceDis map[int]int

	// UPosDis counts words per universal part-of-speech tag.
	UPosDis map[string]int
}

func NewHandler() *Handler {
	stats := Stats{
		WordsPerSentenceDis: map[int]int{},
		UPosDis:             map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Get() Stats {
	return h.stats
}

// Aggregate adds the sentences of a document to the running totals.
func (h *Handler) Aggregate(doc word.Doc) {
	h.stats.NumSentences += len(doc.Sentences)

	for _, s := range doc.Sentences {
		h.stats.NumWords += len(s.Words)
		h.stats.WordsPerSentenceDis[len(s.Words)]++

		for _, w := range s.Words {
			if w.UPos != "" {
				h.stats.UPosDis[w.UPos]++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.WordsPerSentenceMean = h.stats.NumWords / h.stats.NumSentences
	}
}
