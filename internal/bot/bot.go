// Package bot answers chat messages: it runs commands that grow and persist
// the wordbook and otherwise replies with a corrected copy of the message.
package bot

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kittclouds/wordrighter/internal/config"
	"github.com/kittclouds/wordrighter/internal/store"
	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/righter"
)

// Command names, without the prefix.
const (
	CmdSayback  = "sayback"
	CmdStandin  = "standin"
	CmdSpare    = "spare"
	CmdPeek     = "peek"
	CmdWordbook = "wordbook"
)

// Message is one chat message seen by the bot.
type Message struct {
	Author string
	Text   string
}

// Bot wires the wordbook, the pipeline and a store together.
type Bot struct {
	name     string
	prefix   string
	lex      *lexicon.Lexicon
	pipeline *righter.Pipeline
	store    store.Storer

	persistMu sync.Mutex
	log       *log.Entry
}

// New creates a Bot. lex must be the Lexicon p reads.
func New(cfg config.BotConfig, lex *lexicon.Lexicon, p *righter.Pipeline, s store.Storer, logger *log.Logger) *Bot {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Bot{
		name:     cfg.Name,
		prefix:   cfg.Prefix,
		lex:      lex,
		pipeline: p,
		store:    s,
		log:      logger.WithField("component", "bot"),
	}
}

// Name returns the author name the bot posts under.
func (b *Bot) Name() string {
	return b.name
}

// Handle returns the bot's reply to m. ok is false when the bot stays
// silent: for its own messages and for messages with nothing to correct.
func (b *Bot) Handle(m Message) (string, bool) {
	if m.Author == b.name {
		return "", false
	}

	if cmd, args, isCmd := b.command(m.Text); isCmd {
		commandsTotal.WithLabelValues(cmd).Inc()
		b.log.WithFields(log.Fields{"command": cmd, "author": m.Author}).Debug("command")
		return b.run(cmd, args), true
	}

	corrected, changed := b.pipeline.Process(m.Text)
	if !changed {
		return "", false
	}
	repliesTotal.Inc()
	return corrected, true
}

// command splits "$standin dog : hound" into ("standin", "dog : hound").
func (b *Bot) command(text string) (string, string, bool) {
	if !strings.HasPrefix(text, b.prefix) {
		return "", "", false
	}
	rest := text[len(b.prefix):]
	name, args, _ := strings.Cut(rest, " ")
	switch name {
	case CmdSayback, CmdStandin, CmdSpare, CmdPeek, CmdWordbook:
		return name, args, true
	}
	return "", "", false
}

func (b *Bot) run(cmd, args string) string {
	switch cmd {
	case CmdSayback:
		return args
	case CmdStandin:
		return b.standinReply(args)
	case CmdSpare:
		if err := b.Spare(); err != nil {
			return fmt.Sprintf("Could not spare new words: %v", err)
		}
		return "New words spared."
	case CmdPeek:
		return b.peekReply(args)
	default:
		return b.countReply()
	}
}

func (b *Bot) standinReply(args string) string {
	phrase, r, err := ParseStandin(args)
	if err != nil {
		b.log.WithError(err).Debug("standin rejected")
		return fmt.Sprintf("Body: %s%s [WORD] : [STANDIN]", b.prefix, CmdStandin)
	}
	if !b.Standin(phrase, r) {
		existing, _ := b.lex.Get(phrase)
		return fmt.Sprintf("\"%s\" already in wordbook as \"%s\".", phrase, existing)
	}
	return fmt.Sprintf("Taking %s as %s.", phrase, r)
}

func (b *Bot) peekReply(text string) string {
	mentions, err := b.lex.Mentions(text)
	if err != nil {
		b.log.WithError(err).Warn("mention scan failed")
		return fmt.Sprintf("Could not peek: %v", err)
	}
	if len(mentions) == 0 {
		return "No wordbook words in that."
	}

	seen := make(map[string]bool)
	var keys []string
	for _, m := range mentions {
		if !seen[m.Key] {
			seen[m.Key] = true
			keys = append(keys, `"`+m.Key+`"`)
		}
	}
	sort.Strings(keys)
	return "Spotted " + strings.Join(keys, ", ") + "."
}

func (b *Bot) countReply() string {
	n := b.lex.Len()
	if n == 1 {
		return "Wordbook holds 1 entry."
	}
	return fmt.Sprintf("Wordbook holds %d entries.", n)
}

// Standin registers phrase. It is false when phrase is already a key.
func (b *Bot) Standin(phrase string, r lexicon.Replacement) bool {
	if !b.lex.Insert(phrase, r) {
		return false
	}
	b.log.WithFields(log.Fields{"phrase": phrase, "replacement": r.String()}).Info("standin taken")
	return true
}

// Spare writes the whole wordbook to the store. Entries stay in memory when
// it fails.
func (b *Bot) Spare() error {
	b.persistMu.Lock()
	defer b.persistMu.Unlock()

	snapshot := b.lex.Snapshot()
	if err := b.store.Save(snapshot); err != nil {
		persistErrors.Inc()
		b.log.WithError(err).WithField("entries", len(snapshot)).Error("spare failed")
		return errors.Wrap(err, "save wordbook")
	}
	b.log.WithField("entries", len(snapshot)).Info("wordbook spared")
	return nil
}
