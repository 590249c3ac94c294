package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lectio/tree"
	"lectio/word"
)

const Defaultformat = "table"

var (
	Black     = "\033[1;30m"
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Purple    = "\033[1;34m"
	Magenta   = "\033[1;35m"
	Teal      = "\033[1;36m"
	Gray      = "\033[0;37m"
	White     = "\033[1;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"table", "text", "lemma"}
}

// Renderer writes annotated words to a terminal.
type Renderer struct {
	Out io.Writer

	HasColor bool

	// Format determines how a sentence is shown
	//
	// table: one column-aligned line per word
	// text: the reconstructed surface text
	// lemma: only the lemmas, space joined
	Format string
}

func NewRenderer() *Renderer {
	return &Renderer{Out: os.Stdout, Format: Defaultformat}
}

// Word prints one annotated word as a single record line, the way the
// demo shows the first word of the first sentence.
func (r *Renderer) Word(w word.Word) {
	text := w.Text
	if r.HasColor {
		text = Green256 + text + Off
	}

	fmt.Fprintf(r.Out, "Word(index=%d, text=%s, upos=%s, tag=%s, lemma=%s, stem=%s, feats=%s, dep=%s, governor=%d, ner=%t)\n",
		w.Index, text, w.UPos, w.Tag, w.Lemma, w.Stem, w.FeatureString(), w.Dep, w.Governor, w.NamedEntity)
}

// Sentence prints a sentence in the current format, prefixed.
func (r *Renderer) Sentence(s word.Sentence, prefix string) {
	switch r.Format {
	case "text":
		fmt.Fprintf(r.Out, "%s%s\n", prefix, strings.TrimSpace(s.Text()))
	case "lemma":
		lemmas := make([]string, 0, len(s.Words))
		for _, w := range s.Words {
			lemmas = append(lemmas, w.Lemma)
		}
		fmt.Fprintf(r.Out, "%s%s\n", prefix, strings.Join(lemmas, " "))
	default:
		if prefix != "" {
			fmt.Fprintln(r.Out, prefix)
		}
		for _, w := range s.Words {
			fmt.Fprintf(r.Out, "%20q %15q %6s %6d %8s %s\n",
				w.Text, w.Lemma, w.UPos, w.Governor, w.Dep, w.FeatureString())
		}
	}
}

// Doc prints all sentences of a document.
func (r *Renderer) Doc(doc word.Doc) {
	for _, s := range doc.Sentences {
		prefix := fmt.Sprintf("✍  %s-%d ", doc.Language, s.Id)
		r.Sentence(s, prefix)
	}
}

// Tree prints a dependency tree.
func (r *Renderer) Tree(t *tree.Tree) {
	t.Print(r.Out)
}

// NextFormat cycles the Format option through SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}
