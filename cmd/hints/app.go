package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aglyzov/go-hints/internal/config"
	"github.com/aglyzov/go-hints/internal/wordlist"
	"github.com/aglyzov/go-hints/radix"
)

// App answers hint queries over the configured vocabulary.
type App struct {
	cfg  *config.Config
	tree *radix.Tree
	log  zerolog.Logger
}

func newApp(cmd *cobra.Command) (*App, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Level())
	log.Logger = logger

	app := &App{
		cfg:  cfg,
		tree: radix.New(),
		log:  logger,
	}

	if err := app.load(); err != nil {
		return nil, err
	}

	return app, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// load fills the tree from the word-list files and the inline words.
func (a *App) load() error {
	for _, path := range a.cfg.Words {
		words, err := wordlist.Load(path)
		if err != nil {
			return err
		}

		a.insert(path, words)
	}

	a.insert("inline", a.cfg.Inline)

	a.log.Info().Int("words", a.tree.Len()).Msg("Vocabulary loaded")

	return nil
}

func (a *App) insert(source string, words []string) {
	skipped := 0

	for _, word := range words {
		if !radix.Accepts(word) {
			skipped++
			continue
		}
		a.tree.Insert(word)
	}

	a.log.Debug().
		Str("source", source).
		Int("read", len(words)).
		Int("skipped", skipped).
		Msg("Words inserted")
}

// Hints writes a "query: hint" line for every hint of every query.
func (a *App) Hints(w io.Writer, queries []string) error {
	for _, query := range queries {
		hints := a.tree.Search(query)

		a.log.Debug().Str("query", query).Int("hints", len(hints)).Msg("Search done")

		if a.cfg.Limit > 0 && len(hints) > a.cfg.Limit {
			hints = hints[:a.cfg.Limit]
		}

		for _, hint := range hints {
			if _, err := fmt.Fprintf(w, "%s: %s\n", query, hint); err != nil {
				return err
			}
		}
	}

	return nil
}

// Dump writes the tree structure.
func (a *App) Dump(w io.Writer) {
	a.tree.Dump(w)
}
