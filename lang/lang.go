package lang

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLanguage is returned for ISO codes outside the registry.
	ErrUnknownLanguage = errors.New("language not supported")

	// ErrUnknownTreebank is returned when a treebank is requested that
	// no lexicon exists for in the given language.
	ErrUnknownTreebank = errors.New("treebank not supported for language")
)

// Language describes one supported classical language.
type Language struct {
	// Code is the ISO 639-3 identifier, e.g. "lat".
	Code string

	Name string

	// Default is the treebank used when none is requested.
	Default string

	Treebanks []string

	// Processes is the ordered list of annotation stages the pipeline
	// for this language runs.
	Processes []string

	// IdentityLemma marks languages without full lemmatization support,
	// where the lemma stage copies the surface form.
	IdentityLemma bool
}

// registry holds the supported languages. The slice order is fixed and
// part of the CLI contract: the demo command iterates it as-is.
var registry = []Language{
	{
		Code:      "chu",
		Name:      "Old Church Slavonic",
		Default:   "proiel",
		Treebanks: []string{"proiel"},
		Processes: []string{"tokenize", "tag", "lemma", "morph", "depparse"},
	},
	{
		Code:          "fro",
		Name:          "Old French",
		Default:       "srcmf",
		Treebanks:     []string{"srcmf"},
		Processes:     []string{"tokenize", "tag", "lemma", "morph"},
		IdentityLemma: true,
	},
	{
		Code:      "got",
		Name:      "Gothic",
		Default:   "proiel",
		Treebanks: []string{"proiel"},
		Processes: []string{"tokenize", "tag", "lemma", "morph", "depparse"},
	},
	{
		Code:      "grc",
		Name:      "Ancient Greek",
		Default:   "proiel",
		Treebanks: []string{"proiel", "perseus"},
		Processes: []string{"tokenize", "tag", "lemma", "morph", "depparse"},
	},
	{
		Code:      "lat",
		Name:      "Latin",
		Default:   "ittb",
		Treebanks: []string{"ittb", "perseus", "proiel"},
		Processes: []string{"tokenize", "tag", "lemma", "morph", "depparse"},
	},
}

// Registry returns the supported languages in registration order.
func Registry() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// ByCode looks up a language by its ISO 639-3 code.
func ByCode(code string) (Language, error) {
	for _, l := range registry {
		if l.Code == code {
			return l, nil
		}
	}

	return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
}

// ValidTreebank reports whether tb is an available treebank for the
// language.
func (l Language) ValidTreebank(tb string) bool {
	for _, t := range l.Treebanks {
		if t == tb {
			return true
		}
	}

	return false
}

// HasProcess reports whether the pipeline for the language contains the
// named stage.
func (l Language) HasProcess(name string) bool {
	for _, p := range l.Processes {
		if p == name {
			return true
		}
	}

	return false
}
