package main

import (
	"fmt"
	"sort"

	"lectio/config"
	"lectio/corpus"
	"lectio/pipeline"
	"lectio/render"
	"lectio/stat"
	"lectio/word"
)

func analyzeCommand(opts AnalyzeOptions, code, text string, ui UI) error {
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

	if text == "" {
		text, err = corpus.Example(code)
		if err != nil {
			return err
		}
	}

	treebank := opts.Treebank
	if treebank == "" {
		treebank = cfg.Treebank(code)
	}

	popts := []pipeline.Option{
		pipeline.WithModelsDir(cfg.ModelsDir),
		pipeline.WithLogger(log),
	}
	if treebank != "" {
		popts = append(popts, pipeline.WithTreebank(treebank))
	}

	p, err := pipeline.New(code, popts...)
	if err != nil {
		return err
	}

	doc, err := p.Analyze(text)
	if err != nil {
		return err
	}
	doc.Title = opts.Title
	doc.Labels = opts.Labels

	if opts.JSON {
		jr := render.JSONRenderer{W: ui.Out}
		if err := jr.Doc(doc); err != nil {
			return err
		}
	} else {
		r := render.NewRenderer()
		r.Out = ui.Out
		r.HasColor = !opts.NoColor
		r.Format = opts.Format
		r.Doc(doc)
	}

	if opts.Stats {
		printStats(doc, ui)
	}

	if opts.Title != "" {
		if err := cacheDoc(doc, opts.DocPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(ui.Out, "Cached analysis %q in %s\n", opts.Title, opts.DocPath)
	}

	return nil
}

func printStats(doc word.Doc, ui UI) {
	h := stat.NewHandler()
	h.Aggregate(doc)
	s := h.Get()

	_, _ = fmt.Fprintf(ui.Out, "\nSentences: %d\n", s.NumSentences)
	_, _ = fmt.Fprintf(ui.Out, "Words: %d\n", s.NumWords)
	_, _ = fmt.Fprintf(ui.Out, "Words per sentence (mean): %d\n", s.WordsPerSentenceMean)
	_, _ = fmt.Fprintf(ui.Out, "Part of speech distribution:\n")

	tags := make([]string, 0, len(s.UPosDis))
	for tag := range s.UPosDis {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		_, _ = fmt.Fprintf(ui.Out, "  %8s %d\n", tag, s.UPosDis[tag])
	}
}

func cacheDoc(doc word.Doc, docPath string) error {
	repo, closeRepo, err := openDocRepository(docPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	return repo.Write(doc)
}
