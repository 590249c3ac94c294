package main

import (
	"fmt"
	"strings"

	"lectio/config"
	"lectio/corpus"
	"lectio/lang"
	"lectio/pipeline"
	"lectio/render"
	"lectio/tree"
	"lectio/word"
)

// demoPipeline is the slice of pipeline behavior the demo loop needs.
type demoPipeline interface {
	Processes() []string
	Analyze(text string) (word.Doc, error)
}

func demoCommand(opts DemoOptions, ui UI) error {
	cfgPath := opts.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor

	build := func(l lang.Language) (demoPipeline, error) {
		popts := []pipeline.Option{
			pipeline.WithModelsDir(cfg.ModelsDir),
			pipeline.WithLogger(log),
		}
		if tb := cfg.Treebank(l.Code); tb != "" {
			popts = append(popts, pipeline.WithTreebank(tb))
		}

		return pipeline.New(l.Code, popts...)
	}

	return runDemo(lang.Registry(), build, corpus.Example, r, ui)
}

// runDemo walks the language registry in order. For every language it
// builds the pipeline, analyzes the canned example and shows the first
// annotated word of the first sentence. When every word of that
// sentence carries morphological features it also attempts the
// dependency tree; a sentence the parser cannot handle is reported and
// the loop moves on.
func runDemo(languages []lang.Language, build func(lang.Language) (demoPipeline, error), example func(code string) (string, error), r *render.Renderer, ui UI) error {
	for _, l := range languages {
		_, _ = fmt.Fprintf(ui.Out, "\n🏛  %s (%s)\n", l.Name, l.Code)

		text, err := example(l.Code)
		if err != nil {
			return err
		}

		p, err := build(l)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(ui.Out, "Processes: %s\n", strings.Join(p.Processes(), ", "))

		doc, err := p.Analyze(text)
		if err != nil {
			return err
		}

		if len(doc.Sentences) == 0 || len(doc.Sentences[0].Words) == 0 {
			return fmt.Errorf("no words in the %s example", l.Code)
		}

		first := doc.Sentences[0]
		r.Word(first.Words[0])

		if !first.HasFeatures() {
			continue
		}

		t, err := tree.New(first)
		if err != nil {
			_, _ = fmt.Fprintf(ui.Out, "🌳 Dependency parsing not available for %s: %v\n", l.Name, err)
			continue
		}

		_, _ = fmt.Fprintf(ui.Out, "🌳 Dependency tree:\n")
		r.Tree(t)
	}

	return nil
}
