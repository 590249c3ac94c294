package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lectio/render"
)

// Option structs for subcommands that have flags
type DemoOptions struct {
	NoColor bool
	Verbose bool
	Config  string
}

type AnalyzeOptions struct {
	Treebank string
	Format   string
	JSON     bool
	Stats    bool
	NoColor  bool
	Verbose  bool
	Config   string

	// Title, Labels and DocPath control caching the analysis.
	Title   string
	Labels  []string
	DocPath string
}

type TreeOptions struct {
	Treebank string
	Verbose  bool
	Config   string
}

type FetchOptions struct {
	Mirror    string
	ModelsDir string
	Config    string
}

type FindOptions struct {
	DocPath string
	Limit   int
	NoColor bool
}

type ReplOptions struct {
	Format  string
	NoColor bool
	Verbose bool
	Config  string
}

type ImportDocOptions struct {
	From string
	To   string
}

type ExportDocOptions struct {
	From string
	To   string
}

// stringSliceFlag implements flag.Value for multi-value strings
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("lectio", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseDemoArgs(args []string, ui UI) (DemoOptions, error) {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DemoOptions
	fs.BoolVar(&opts.NoColor, "no-color", false, "Show output without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.BoolVar(&opts.Verbose, "verbose", false, "Log the pipeline stages while running")
	fs.BoolVar(&opts.Verbose, "v", false, "alias for -verbose")

	fs.StringVar(&opts.Config, "config", os.Getenv("LECTIO_CONFIG"), "Path to the config file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s demo [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Run every language pipeline over its example text.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("demo command accepts no arguments")
	}

	return opts, nil
}

func parseAnalyzeArgs(args []string, ui UI) (AnalyzeOptions, string, string, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts AnalyzeOptions
	fs.StringVar(&opts.Treebank, "treebank", "", "Treebank the tagger follows (default per language)")
	fs.StringVar(&opts.Treebank, "t", "", "alias for -treebank")

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Show annotated table (table), plain text (text) or only lemmas (lemma)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.BoolVar(&opts.JSON, "json", false, "Emit the annotated doc as JSON")
	fs.BoolVar(&opts.JSON, "j", false, "alias for -json")

	fs.BoolVar(&opts.Stats, "stats", false, "Append word and part-of-speech statistics")
	fs.BoolVar(&opts.Stats, "s", false, "alias for -stats")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show output without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.BoolVar(&opts.Verbose, "verbose", false, "Log the pipeline stages while running")
	fs.BoolVar(&opts.Verbose, "v", false, "alias for -verbose")

	fs.StringVar(&opts.Config, "config", os.Getenv("LECTIO_CONFIG"), "Path to the config file")

	fs.StringVar(&opts.Title, "title", "", "Title under which the analysis is cached (needs -doc-path)")

	labels := (*stringSliceFlag)(&opts.Labels)
	fs.Var(labels, "label", "Label attached to the cached analysis, repeatable")
	fs.Var(labels, "l", "alias for -label")

	fs.StringVar(&opts.DocPath, "doc-path", os.Getenv("LECTIO_DOC_PATH"), "Docs directory or SQLite file the analysis is cached in")
	fs.StringVar(&opts.DocPath, "d", os.Getenv("LECTIO_DOC_PATH"), "alias for -doc-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s analyze [options] <lang> [text ...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Annotate a text in the given language. Without text the built-in\n")
		_, _ = fmt.Fprintf(fs.Output(), "  example of the language is analyzed.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", "", err
	}

	if fs.NArg() < 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", "", errors.New("analyze command needs a language code")
	}

	if opts.Title != "" && opts.DocPath == "" {
		return opts, "", "", errors.New("-title needs a doc path via -d or LECTIO_DOC_PATH")
	}

	code := fs.Arg(0)
	text := strings.Join(fs.Args()[1:], " ")
	return opts, code, text, nil
}

func parseTreeArgs(args []string, ui UI) (TreeOptions, string, string, error) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts TreeOptions
	fs.StringVar(&opts.Treebank, "treebank", "", "Treebank the tagger follows (default per language)")
	fs.StringVar(&opts.Treebank, "t", "", "alias for -treebank")

	fs.BoolVar(&opts.Verbose, "verbose", false, "Log the pipeline stages while running")
	fs.BoolVar(&opts.Verbose, "v", false, "alias for -verbose")

	fs.StringVar(&opts.Config, "config", os.Getenv("LECTIO_CONFIG"), "Path to the config file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s tree [options] <lang> [text ...]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Print the dependency tree of every sentence of a text. Without\n")
		_, _ = fmt.Fprintf(fs.Output(), "  text the built-in example of the language is analyzed.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", "", err
	}

	if fs.NArg() < 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", "", errors.New("tree command needs a language code")
	}

	code := fs.Arg(0)
	text := strings.Join(fs.Args()[1:], " ")
	return opts, code, text, nil
}

func parseLanguagesArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s languages\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List supported languages with their treebanks and stages.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseFetchArgs(args []string, ui UI) (FetchOptions, string, string, error) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts FetchOptions
	fs.StringVar(&opts.Mirror, "mirror", "", "Base URL lexicons are fetched from (default from config)")
	fs.StringVar(&opts.ModelsDir, "models-path", os.Getenv("LECTIO_MODELS_PATH"), "Directory fetched lexicons are installed in")
	fs.StringVar(&opts.ModelsDir, "m", os.Getenv("LECTIO_MODELS_PATH"), "alias for -models-path")
	fs.StringVar(&opts.Config, "config", os.Getenv("LECTIO_CONFIG"), "Path to the config file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s fetch [options] <lang> [treebank]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Download the lexicon artifacts of a language. Without treebank\n")
		_, _ = fmt.Fprintf(fs.Output(), "  the default treebank of the language is fetched.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", "", err
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", "", errors.New("fetch command needs a language code and an optional treebank")
	}

	code := fs.Arg(0)
	treebank := ""
	if fs.NArg() == 2 {
		treebank = fs.Arg(1)
	}

	return opts, code, treebank, nil
}

func parseFindArgs(args []string, ui UI) (FindOptions, []string, error) {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts FindOptions
	fs.StringVar(&opts.DocPath, "doc-path", os.Getenv("LECTIO_DOC_PATH"), "Path to docs directory or SQLite file")
	fs.StringVar(&opts.DocPath, "d", os.Getenv("LECTIO_DOC_PATH"), "alias for -doc-path")

	fs.IntVar(&opts.Limit, "n", 0, "Stop after this many matched sentences (0 for all)")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show matched sentences without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s find [options] <lemma> ...\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Search cached analyses for sentences containing all given lemmas.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, nil, err
	}

	if fs.NArg() < 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("find command needs at least one lemma")
	}

	if opts.DocPath == "" {
		return opts, nil, errors.New("Doc path must be specified via -d or LECTIO_DOC_PATH")
	}

	if _, err := os.Stat(opts.DocPath); err != nil {
		return opts, nil, fmt.Errorf("Doc path not found: %s", opts.DocPath)
	}

	return opts, fs.Args(), nil
}

func parseReplArgs(args []string, ui UI) (ReplOptions, error) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ReplOptions
	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Show annotated table (table), plain text (text) or only lemmas (lemma)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show output without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.BoolVar(&opts.Verbose, "verbose", false, "Log the pipeline stages while running")
	fs.BoolVar(&opts.Verbose, "v", false, "alias for -verbose")

	fs.StringVar(&opts.Config, "config", os.Getenv("LECTIO_CONFIG"), "Path to the config file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s repl [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive analysis mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	return opts, nil
}

func parseImportDocArgs(args []string, ui UI) (ImportDocOptions, error) {
	fs := flag.NewFlagSet("import-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportDocOptions
	fs.StringVar(&opts.From, "from", "", "Source directory with JSON docs")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import-doc --from <dir> --to <sqlite_file>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseExportDocArgs(args []string, ui UI) (ExportDocOptions, error) {
	fs := flag.NewFlagSet("export-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportDocOptions
	fs.StringVar(&opts.From, "from", "", "Source SQLite database file")
	fs.StringVar(&opts.To, "to", "", "Target directory for JSON docs")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export-doc --from <sqlite_file> --to <dir>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Text analysis for classical languages\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  demo        Run every language pipeline over its example text.\n")
		_, _ = fmt.Fprintf(output, "  analyze     Annotate a text in the given language.\n")
		_, _ = fmt.Fprintf(output, "  tree        Print the dependency tree of a text.\n")
		_, _ = fmt.Fprintf(output, "  languages   List supported languages.\n")
		_, _ = fmt.Fprintf(output, "  fetch       Download the lexicon artifacts of a language.\n")
		_, _ = fmt.Fprintf(output, "  find        Search cached analyses by lemma.\n")
		_, _ = fmt.Fprintf(output, "  repl        Enter interactive analysis mode.\n")
		_, _ = fmt.Fprintf(output, "  import-doc  Import analyzed docs from filesystem to SQLite.\n")
		_, _ = fmt.Fprintf(output, "  export-doc  Export analyzed docs from SQLite to filesystem.\n")
		_, _ = fmt.Fprintf(output, "  bash        Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version     Show version information.\n")
		_, _ = fmt.Fprintf(output, "  help        Show help for a command.\n")
	}
}
