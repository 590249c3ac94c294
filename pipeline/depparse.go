package pipeline

import (
	"lectio/word"
)

// DepParser assigns a governor and relation label to every word with a
// shallow rule pass: the first finite verb (or auxiliary) becomes the
// root, nominals attach to the root, and function words attach to the
// nearest nominal. The result is always a single-rooted, acyclic
// structure.
type DepParser struct{}

func (d *DepParser) Name() string { return "depparse" }

func (d *DepParser) Run(doc *word.Doc) error {
	for si := range doc.Sentences {
		parse(doc.Sentences[si].Words)
	}

	return nil
}

func parse(words []word.Word) {
	if len(words) == 0 {
		return
	}

	root := rootIndex(words)
	words[root].Dep = "root"
	words[root].Governor = -1

	subjectSeen := false
	for i := range words {
		if i == root {
			continue
		}
		w := &words[i]

		switch w.UPos {
		case "ADP":
			w.Dep = "case"
			w.Governor = nearestNominal(words, i, root)
		case "DET":
			w.Dep = "det"
			w.Governor = nearestNominal(words, i, root)
		case "ADJ":
			w.Dep = "amod"
			w.Governor = nearestNominal(words, i, root)
		case "NUM":
			w.Dep = "nummod"
			w.Governor = nearestNominal(words, i, root)
		case "ADV", "PART":
			w.Dep = "advmod"
			w.Governor = root
		case "INTJ":
			w.Dep = "discourse"
			w.Governor = root
		case "CCONJ":
			w.Dep = "cc"
			w.Governor = root
		case "SCONJ":
			w.Dep = "mark"
			w.Governor = root
		case "AUX":
			w.Dep = "aux"
			w.Governor = root
		case "VERB":
			w.Dep = "conj"
			w.Governor = root
		case "NOUN", "PROPN", "PRON":
			if !subjectSeen && i < root {
				w.Dep = "nsubj"
				subjectSeen = true
			} else if i > 0 && words[i-1].UPos == "ADP" {
				w.Dep = "obl"
			} else if i > root {
				w.Dep = "obj"
			} else {
				w.Dep = "nmod"
			}
			w.Governor = root
		default:
			w.Dep = "dep"
			w.Governor = root
		}
	}
}

// rootIndex picks the first finite verb, falling back to the first
// auxiliary and finally the first word.
func rootIndex(words []word.Word) int {
	for i, w := range words {
		if w.UPos == "VERB" {
			return i
		}
	}
	for i, w := range words {
		if w.UPos == "AUX" {
			return i
		}
	}

	return 0
}

// nearestNominal returns the closest NOUN/PROPN/PRON looking forward
// first, then backward. Nominals always attach to the root, so edges
// produced here cannot close a cycle.
func nearestNominal(words []word.Word, i, root int) int {
	for j := i + 1; j < len(words); j++ {
		if isNominal(words[j].UPos) && j != i {
			return j
		}
	}
	for j := i - 1; j >= 0; j-- {
		if isNominal(words[j].UPos) {
			return j
		}
	}

	return root
}

func isNominal(upos string) bool {
	return upos == "NOUN" || upos == "PROPN" || upos == "PRON"
}
