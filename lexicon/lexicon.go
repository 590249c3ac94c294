package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// builtin holds the lexicons shipped with the binary, one per language
// and default treebank. Fetched artifacts in the models directory take
// precedence over these.
//
//go:embed data/*.json
var builtin embed.FS

// Entry is a closed-class or irregular word of the lexicon.
type Entry struct {
	UPos  string `json:"upos"`
	Tag   string `json:"tag,omitempty"`
	Lemma string `json:"lemma,omitempty"`
	Feats string `json:"feats,omitempty"`
}

// SuffixRule assigns annotations to open-class words by word ending.
type SuffixRule struct {
	Suffix string `json:"suffix"`
	UPos   string `json:"upos"`
	Tag    string `json:"tag,omitempty"`
	Feats  string `json:"feats,omitempty"`
}

// Rewrite turns an inflected ending into the ending of the lemma.
type Rewrite struct {
	Match   string `json:"match"`
	Replace string `json:"replace"`
}

// Lexicon is the model artifact of one language/treebank pair.
type Lexicon struct {
	Language string `json:"language"`
	Treebank string `json:"treebank"`

	// Closed maps word forms to their fixed annotation.
	Closed map[string]Entry `json:"closed,omitempty"`

	// Names lists word forms flagged as named entities.
	Names []string `json:"names,omitempty"`

	SuffixTags []SuffixRule `json:"suffix_tags,omitempty"`

	// LemmaMap holds irregular form to lemma pairs.
	LemmaMap map[string]string `json:"lemma_map,omitempty"`

	// LemmaSuffixes rewrite regular inflected endings.
	LemmaSuffixes []Rewrite `json:"lemma_suffixes,omitempty"`

	// StemSuffixes are inflectional endings stripped by the stemmer.
	StemSuffixes []string `json:"stem_suffixes,omitempty"`
}

// Path returns the location of a fetched lexicon inside the models
// directory.
func Path(dir, code, treebank string) string {
	return filepath.Join(dir, code, treebank+".json")
}

// Present reports whether a fetched lexicon exists in the models
// directory.
func Present(dir, code, treebank string) bool {
	if dir == "" {
		return false
	}

	info, err := os.Stat(Path(dir, code, treebank))
	return err == nil && !info.IsDir()
}

// Load reads the lexicon for a language/treebank pair. A fetched file in
// dir wins over the builtin one. When neither exists the caller is told
// to fetch.
func Load(dir, code, treebank string) (*Lexicon, error) {
	if Present(dir, code, treebank) {
		data, err := os.ReadFile(Path(dir, code, treebank))
		if err != nil {
			return nil, err
		}
		return parse(data, code, treebank)
	}

	data, err := builtin.ReadFile(fmt.Sprintf("data/%s-%s.json", code, treebank))
	if err != nil {
		return nil, fmt.Errorf("no lexicon for %s/%s, run fetch first: %w", code, treebank, err)
	}

	return parse(data, code, treebank)
}

func parse(data []byte, code, treebank string) (*Lexicon, error) {
	var lex Lexicon
	if err := json.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("invalid lexicon %s/%s: %w", code, treebank, err)
	}

	if lex.Language != code || lex.Treebank != treebank {
		return nil, fmt.Errorf("lexicon mismatch: got %s/%s, want %s/%s",
			lex.Language, lex.Treebank, code, treebank)
	}

	return &lex, nil
}

// Entry looks up the closed-class annotation of a form, falling back to
// its lowercased variant.
func (l *Lexicon) Entry(form string) (Entry, bool) {
	if e, ok := l.Closed[form]; ok {
		return e, true
	}

	e, ok := l.Closed[strings.ToLower(form)]
	return e, ok
}

// IsName reports whether the form is in the named-entity list.
func (l *Lexicon) IsName(form string) bool {
	for _, n := range l.Names {
		if n == form {
			return true
		}
	}

	return false
}

// Suffix returns the longest suffix rule matching the form, if any.
func (l *Lexicon) Suffix(form string) (SuffixRule, bool) {
	low := strings.ToLower(form)

	var best SuffixRule
	found := false
	for _, r := range l.SuffixTags {
		if !strings.HasSuffix(low, r.Suffix) {
			continue
		}

		// The ending alone is not a word of the rule's class.
		if len(low) <= len(r.Suffix) {
			continue
		}

		if !found || len(r.Suffix) > len(best.Suffix) {
			best = r
			found = true
		}
	}

	return best, found
}

// LemmaOf resolves the lemma of a form: closed entry, then irregular
// map, then suffix rewrites, then the form itself.
func (l *Lexicon) LemmaOf(form string) string {
	if e, ok := l.Entry(form); ok && e.Lemma != "" {
		return e.Lemma
	}

	low := strings.ToLower(form)
	if lemma, ok := l.LemmaMap[low]; ok {
		return lemma
	}

	var best Rewrite
	found := false
	for _, rw := range l.LemmaSuffixes {
		if !strings.HasSuffix(low, rw.Match) || len(low) <= len(rw.Match) {
			continue
		}
		if !found || len(rw.Match) > len(best.Match) {
			best = rw
			found = true
		}
	}
	if found {
		return strings.TrimSuffix(low, best.Match) + best.Replace
	}

	return low
}

// StemOf strips the longest known inflectional ending from the form.
func (l *Lexicon) StemOf(form string) string {
	low := strings.ToLower(form)

	best := ""
	for _, suf := range l.StemSuffixes {
		if strings.HasSuffix(low, suf) && len(low) > len(suf) && len(suf) > len(best) {
			best = suf
		}
	}

	return strings.TrimSuffix(low, best)
}
