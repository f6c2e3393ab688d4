package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kittclouds/wordrighter/internal/bot"
)

const replPrompt = "Please enter a sentence: "

func newReplCmd(load func() (*app, error)) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Talk to the bot on the terminal; commands work as in chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			defer a.Close()
			return repl(a.bot, author, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&author, "as", "you", "author name for your lines")
	return cmd
}

// repl feeds each input line to b until EOF.
func repl(b *bot.Bot, author string, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, replPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return errors.Wrap(scanner.Err(), "read input")
		}
		if reply, ok := b.Handle(bot.Message{Author: author, Text: scanner.Text()}); ok {
			fmt.Fprintln(out, reply)
		}
	}
}
