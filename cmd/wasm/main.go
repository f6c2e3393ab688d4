//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"github.com/hack-pad/hackpadfs/indexeddb"
	log "github.com/sirupsen/logrus"

	"github.com/kittclouds/wordrighter/internal/bot"
	"github.com/kittclouds/wordrighter/internal/config"
	"github.com/kittclouds/wordrighter/internal/store"
	"github.com/kittclouds/wordrighter/pkg/lexicon"
	"github.com/kittclouds/wordrighter/pkg/righter"
)

// Version info
const Version = "0.3.0"

const (
	dbName       = "wordrighter"
	wordbookPath = "wordbook.json"
)

// runtime is the browser-side bot, backed by an IndexedDB wordbook.
type runtime struct {
	lex      *lexicon.Lexicon
	pipeline *righter.Pipeline
	bot      *bot.Bot
}

func main() {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{DisableColors: true})

	fs, err := indexeddb.NewFS(context.Background(), dbName, indexeddb.Options{})
	if err != nil {
		println("[WordRighter] FATAL: indexeddb:", err.Error())
		return
	}
	s := store.NewJSONStore(fs, wordbookPath, true, logger.WithField("component", "store"))
	entries, err := s.Load()
	if err != nil {
		println("[WordRighter] FATAL: load wordbook:", err.Error())
		return
	}

	lex := lexicon.Build(entries)
	p := righter.New(lex)
	rt := &runtime{lex: lex, pipeline: p, bot: bot.New(config.Default().Bot, lex, p, s, logger)}
	println("[WordRighter] WASM Ready v" + Version)

	js.Global().Set("WordRighter", js.ValueOf(map[string]interface{}{
		"version":  js.FuncOf(getVersion),
		"process":  js.FuncOf(rt.process),
		"handle":   js.FuncOf(rt.handle),
		"standin":  js.FuncOf(rt.standin),
		"mentions": js.FuncOf(rt.mentions),
		"wordbook": js.FuncOf(rt.wordbook),
		"spare":    js.FuncOf(rt.spare),
	}))

	select {}
}

func getVersion(this js.Value, args []js.Value) interface{} {
	return Version
}

// process: [text string]
// Returns: {"text": string, "changed": bool}
func (rt *runtime) process(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("requires 1 arg: text (string)")
	}
	text, changed := rt.pipeline.Process(args[0].String())
	return jsonResult(map[string]interface{}{"text": text, "changed": changed})
}

// handle: [author string, text string]
// Returns: {"reply": string, "ok": bool}
func (rt *runtime) handle(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("requires 2 args: author (string), text (string)")
	}
	reply, ok := rt.bot.Handle(bot.Message{Author: args[0].String(), Text: args[1].String()})
	return jsonResult(map[string]interface{}{"reply": reply, "ok": ok})
}

// standin: [body string] in the "phrase : replacement" form
func (rt *runtime) standin(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("requires 1 arg: body (string)")
	}
	phrase, r, err := bot.ParseStandin(args[0].String())
	if err != nil {
		return errorResult(err.Error())
	}
	if !rt.bot.Standin(phrase, r) {
		existing, _ := rt.lex.Get(phrase)
		return errorResult("already in wordbook as " + existing.String())
	}
	return successResult("taking " + phrase + " as " + r.String())
}

// mentions: [text string]
// Returns: JSON array of mentions
func (rt *runtime) mentions(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("requires 1 arg: text (string)")
	}
	found, err := rt.lex.Mentions(args[0].String())
	if err != nil {
		return errorResult(err.Error())
	}
	if found == nil {
		found = []lexicon.Mention{}
	}
	return jsonResult(found)
}

func (rt *runtime) wordbook(this js.Value, args []js.Value) interface{} {
	return jsonResult(rt.lex.Snapshot())
}

// spare persists to IndexedDB off the callback goroutine.
// Returns: Promise resolving to {"success": string}
func (rt *runtime) spare(this js.Value, args []js.Value) interface{} {
	executor := js.FuncOf(func(this js.Value, p []js.Value) interface{} {
		resolve, reject := p[0], p[1]
		go func() {
			if err := rt.bot.Spare(); err != nil {
				reject.Invoke(errorResult(err.Error()))
				return
			}
			resolve.Invoke(successResult("New words spared."))
		}()
		return nil
	})
	defer executor.Release()
	return js.Global().Get("Promise").New(executor)
}

func jsonResult(v interface{}) interface{} {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return errorResult("encode: " + err.Error())
	}
	return string(jsonBytes)
}

func errorResult(msg string) interface{} {
	return jsonResult(map[string]interface{}{"error": msg})
}

func successResult(msg string) interface{} {
	return jsonResult(map[string]interface{}{"success": msg})
}
