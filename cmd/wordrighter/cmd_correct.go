package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kittclouds/wordrighter/pkg/righter"
)

func newCorrectCmd(load func() (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "correct [text...]",
		Short: "Print the corrected text of the arguments, or of each stdin line",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				text, _ := a.pipeline.Process(strings.Join(args, " "))
				fmt.Fprintln(out, text)
				return nil
			}
			return correctLines(a.pipeline, cmd.InOrStdin(), out)
		},
	}
}

func correctLines(p *righter.Pipeline, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		text, _ := p.Process(scanner.Text())
		fmt.Fprintln(out, text)
	}
	return errors.Wrap(scanner.Err(), "read input")
}
