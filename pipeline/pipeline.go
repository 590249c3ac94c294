package pipeline

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"lectio/lang"
	"lectio/lexicon"
	"lectio/word"
)

// Process is one annotation stage of a pipeline. Stages run in order
// and enrich the document in place.
type Process interface {
	Name() string
	Run(doc *word.Doc) error
}

// Pipeline is the ordered sequence of annotation stages for one
// language/treebank pair.
type Pipeline struct {
	Language lang.Language
	Treebank string

	procs []Process
	log   *zap.Logger
}

type Option func(*options)

type options struct {
	treebank  string
	modelsDir string
	log       *zap.Logger
}

// WithTreebank selects a non-default treebank for the language.
func WithTreebank(tb string) Option {
	return func(o *options) { o.treebank = tb }
}

// WithModelsDir points the lexicon loader at a directory of fetched
// artifacts.
func WithModelsDir(dir string) Option {
	return func(o *options) { o.modelsDir = dir }
}

// WithLogger installs a diagnostic logger. Default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// New builds the pipeline for a language code. The language must be in
// the registry and the treebank, when given, must be valid for it.
func New(code string, opts ...Option) (*Pipeline, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	l, err := lang.ByCode(code)
	if err != nil {
		return nil, err
	}

	tb := o.treebank
	if tb == "" {
		tb = l.Default
	} else if !l.ValidTreebank(tb) {
		return nil, fmt.Errorf("%w: %q for %q", lang.ErrUnknownTreebank, tb, code)
	}

	lex, err := lexicon.Load(o.modelsDir, code, tb)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{Language: l, Treebank: tb, log: o.log}
	for _, name := range l.Processes {
		proc, err := newProcess(name, l, lex)
		if err != nil {
			return nil, err
		}
		p.procs = append(p.procs, proc)
	}

	o.log.Debug("pipeline ready",
		zap.String("language", code),
		zap.String("treebank", tb),
		zap.Strings("processes", p.Processes()))

	return p, nil
}

func newProcess(name string, l lang.Language, lex *lexicon.Lexicon) (Process, error) {
	switch name {
	case "tokenize":
		return &Tokenizer{}, nil
	case "tag":
		return &Tagger{Lex: lex}, nil
	case "lemma":
		return &Lemmatizer{Lex: lex, Identity: l.IdentityLemma}, nil
	case "morph":
		return &MorphTagger{Lex: lex}, nil
	case "depparse":
		return &DepParser{}, nil
	}

	return nil, fmt.Errorf("unknown process %q for %q", name, l.Code)
}

// Processes returns the stage names in run order.
func (p *Pipeline) Processes() []string {
	names := make([]string, len(p.procs))
	for i, proc := range p.procs {
		names[i] = proc.Name()
	}

	return names
}

// Analyze runs all stages over the text and returns the annotated
// document.
func (p *Pipeline) Analyze(text string) (word.Doc, error) {
	doc := word.Doc{Language: p.Language.Code, Raw: text}

	for _, proc := range p.procs {
		if err := proc.Run(&doc); err != nil {
			return word.Doc{}, fmt.Errorf("%s: %s: %w", p.Language.Code, proc.Name(), err)
		}
	}

	p.log.Debug("analyzed",
		zap.String("language", p.Language.Code),
		zap.Int("sentences", len(doc.Sentences)),
		zap.Int("words", doc.NumWords()))

	return doc, nil
}

// cache holds one constructed pipeline per language, keyed by code.
// Mirrors the one-pipeline-per-language reuse of the demo loop.
var (
	cacheMu sync.Mutex
	cache   = map[string]*Pipeline{}
)

// For returns a cached pipeline for the language code, constructing it
// with default options on first use.
func For(code string, opts ...Option) (*Pipeline, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if p, ok := cache[code]; ok {
		return p, nil
	}

	p, err := New(code, opts...)
	if err != nil {
		return nil, err
	}
	cache[code] = p

	return p, nil
}
