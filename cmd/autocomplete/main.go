// Command autocomplete loads a vocabulary, one entry per line, and prints the
// completions of each query given as an argument or read from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pingcap/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/pavanmanishd/autocomplete"
	"github.com/pavanmanishd/autocomplete/config"
	"github.com/pavanmanishd/autocomplete/internal/logutil"
)

type options struct {
	configFile   string
	vocabFile    string
	treeArena    string
	scratchArena string
	maxMatches   int
	best         bool
	logLevel     string
	logFormat    string
	logFile      string
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configFile, "config", "c", "", "TOML config `path`")
	fs.StringVarP(&o.vocabFile, "vocab", "v", "", "Vocabulary file `path`, one entry per line")
	fs.StringVar(&o.treeArena, "tree-arena", "", "Memory reserved for the prefix tree, e.g. 32MiB")
	fs.StringVar(&o.scratchArena, "scratch-arena", "", "Memory reserved for a single query, e.g. 64KiB")
	fs.IntVarP(&o.maxMatches, "max-matches", "n", autocomplete.DefaultMaxMatches, "Maximum completions printed per query")
	fs.BoolVarP(&o.best, "best", "b", false, "Print only the highest weighted completion")
	fs.StringVar(&o.logLevel, "loglevel", "info", "Log level: {debug|info|warn|error}")
	fs.StringVar(&o.logFormat, "logfmt", "text", "Log `format`: {text|json}")
	fs.StringVarP(&o.logFile, "logfile", "L", "", "Log file `path`, leave empty to write to stderr")
}

// config merges the config file with the flags that were set explicitly.
func (o *options) config(fs *pflag.FlagSet) (*config.Config, error) {
	conf := config.NewConfig()
	if o.configFile != "" {
		if err := conf.Load(o.configFile); err != nil {
			return nil, err
		}
	}
	if fs.Changed("tree-arena") {
		conf.TreeArenaSize = o.treeArena
	}
	if fs.Changed("scratch-arena") {
		conf.ScratchArenaSize = o.scratchArena
	}
	if fs.Changed("max-matches") {
		conf.MaxMatches = o.maxMatches
	}
	if fs.Changed("loglevel") {
		conf.Log.Level = o.logLevel
	}
	if fs.Changed("logfmt") {
		conf.Log.Format = o.logFormat
	}
	if fs.Changed("logfile") {
		conf.Log.File = o.logFile
	}
	if o.vocabFile == "" {
		return nil, errors.New("--vocab is required")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func main() {
	var opts options
	fs := pflag.NewFlagSet("autocomplete", pflag.ContinueOnError)
	opts.register(fs)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "autocomplete prints completions of each query from a vocabulary file\n\nUsage:\n  autocomplete --vocab FILE [flags] [query...]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		os.Exit(2)
	}

	conf, err := opts.config(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err)
		os.Exit(2)
	}
	if err := logutil.InitLogger(&conf.Log); err != nil {
		fmt.Fprintf(os.Stderr, "fail to init logger: %s\n", err)
		os.Exit(2)
	}

	err = run(conf, opts.vocabFile, opts.best, fs.Args(), os.Stdin, os.Stdout)
	if err != nil {
		logutil.Error("autocomplete failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "autocomplete: %s\n", err)
		_ = logutil.Close()
		os.Exit(1)
	}
	_ = logutil.Close()
}

// run answers queries, or every line of in when queries is empty.
func run(conf *config.Config, vocabFile string, best bool, queries []string, in io.Reader, out io.Writer) error {
	treeSize, err := conf.TreeArenaBytes()
	if err != nil {
		return err
	}
	scratchSize, err := conf.ScratchArenaBytes()
	if err != nil {
		return err
	}

	c := autocomplete.NewCompleter(treeSize, scratchSize, autocomplete.WithMaxMatches(conf.MaxMatches))
	defer c.Release()

	f, err := os.Open(vocabFile)
	if err != nil {
		return errors.Trace(err)
	}
	defer f.Close()
	if _, err := c.Load(f); err != nil {
		return errors.Annotatef(err, "load vocabulary %s", vocabFile)
	}

	w := bufio.NewWriter(out)
	answer := func(query string) {
		if best {
			completion, _ := c.Best(query)
			fmt.Fprintf(w, "%s\t%s\n", query, completion)
			return
		}
		for _, m := range c.Complete(query) {
			fmt.Fprintf(w, "%s\t%s\t%d\n", query, m.Value, m.Weight)
		}
	}

	if len(queries) > 0 {
		for _, q := range queries {
			answer(q)
		}
	} else {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			answer(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return errors.Trace(err)
		}
	}

	stats := c.Stats()
	logutil.Info("queries answered",
		zap.Int("words", stats.Words),
		zap.Int("nodes", stats.Nodes),
		zap.Int("tree-bytes", stats.Tree.SizeInUse),
		zap.Int("scratch-peak-bytes", stats.Scratch.HighWater))
	return errors.Trace(w.Flush())
}
