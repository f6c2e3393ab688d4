package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kittclouds/wordrighter/internal/bot"
	"github.com/kittclouds/wordrighter/internal/config"
	"github.com/kittclouds/wordrighter/internal/store"
	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/righter"
)

// app is everything a command needs, built from one config.
type app struct {
	cfg      *config.Config
	log      *log.Logger
	store    store.Storer
	lex      *lexicon.Lexicon
	pipeline *righter.Pipeline
	bot      *bot.Bot
}

// loadApp reads the config and the wordbook. Any failure here is fatal to
// the command.
func loadApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}

	s, err := openStore(cfg.Wordbook, cfg.Wordbook.CreateIfMissing, logger)
	if err != nil {
		return nil, err
	}

	entries, err := s.Load()
	if err != nil {
		s.Close()
		return nil, errors.Wrap(err, "load wordbook")
	}

	lex := lexicon.Build(entries)
	p := righter.New(lex)
	logger.WithFields(log.Fields{
		"backend": cfg.Wordbook.Backend,
		"path":    cfg.Wordbook.Path,
		"entries": lex.Len(),
	}).Info("wordbook loaded")

	return &app{
		cfg:      cfg,
		log:      logger,
		store:    s,
		lex:      lex,
		pipeline: p,
		bot:      bot.New(cfg.Bot, lex, p, s, logger),
	}, nil
}

func openStore(wb config.WordbookConfig, createIfMissing bool, logger *log.Logger) (store.Storer, error) {
	s, err := store.Open(store.Options{
		Backend:         wb.Backend,
		Path:            wb.Path,
		CreateIfMissing: createIfMissing,
		Log:             logger.WithField("component", "store"),
	})
	return s, errors.Wrapf(err, "open %s wordbook", wb.Backend)
}

func (a *app) Close() error {
	return a.store.Close()
}
