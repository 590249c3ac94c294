package word

// Word is a single annotated token of a sentence. Pipelines populate
// different subsets of the fields; a zero value means the stage that
// fills it did not run for the language.
type Word struct {
	// Index is the position of the word in the sentence, starting at 0.
	Index int `json:"index"`

	// Text is the unmodified surface form.
	Text string `json:"text"`

	// Idx is the rune offset of the first character of the word in the
	// original text.
	Idx int `json:"idx"`

	// UPos is the universal part-of-speech tag (NOUN, VERB, ...).
	UPos string `json:"upos,omitempty"`

	// Tag is a fine-grained, treebank-specific tag.
	Tag string `json:"tag,omitempty"`

	Lemma string `json:"lemma,omitempty"`
	Stem  string `json:"stem,omitempty"`

	// Features holds the morphological feature set, e.g.
	// Case=Nom, Number=Sing.
	Features map[string]string `json:"feats,omitempty"`

	// Dep is the dependency relation label to the governor. Empty when
	// the pipeline has no parsing stage.
	Dep string `json:"dep,omitempty"`

	// Governor is the sentence index of the governing word. -1 marks the
	// root of the sentence. Only meaningful when Dep is set.
	Governor int `json:"governor"`

	// NamedEntity marks words found in the name list of the lexicon.
	NamedEntity bool `json:"ner,omitempty"`
}

// FeatureString renders the feature map in the conventional
// Key=Val|Key=Val form, keys sorted.
func (w Word) FeatureString() string {
	return JoinFeatures(w.Features)
}

type Sentence struct {
	Id    int    `json:"id"`
	Words []Word `json:"words"`
}

// HasFeatures reports whether every word of the sentence carries a
// non-empty morphological feature set. An empty sentence has no
// annotated words and therefore no features.
func (s Sentence) HasFeatures() bool {
	if len(s.Words) == 0 {
		return false
	}

	for _, w := range s.Words {
		if len(w.Features) == 0 {
			return false
		}
	}

	return true
}

// Text reconstructs the surface text of the sentence using the rune
// offsets of the words.
func (s Sentence) Text() string {
	var out []rune
	for _, w := range s.Words {
		for len(out) < w.Idx {
			out = append(out, ' ')
		}
		out = append(out, []rune(w.Text)...)
	}

	return string(out)
}

// Doc is the result of running a pipeline over a text.
type Doc struct {
	// Language is the ISO 639-3 code the pipeline was scoped to.
	Language string `json:"language"`

	Title  string   `json:"title,omitempty"`
	Labels []string `json:"labels,omitempty"`

	// Raw is the original input text.
	Raw string `json:"raw,omitempty"`

	Sentences []Sentence `json:"sentences"`
}

// NumWords returns the total count of words over all sentences.
func (d Doc) NumWords() int {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Words)
	}

	return n
}
