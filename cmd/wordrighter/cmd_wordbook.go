package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kittclouds/wordrighter/internal/config"
	"github.com/kittclouds/wordrighter/internal/store"
	"github.com/kittclouds/wordrighter/pkg/lexicon"
)

func newWordbookCmd(load func() (*app, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordbook",
		Short: "Inspect the wordbook or move it between backends",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every phrase and its standin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			defer a.Close()
			return listWordbook(a.lex, cmd.OutOrStdout())
		},
	})

	var imp config.WordbookConfig
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Add the entries of another wordbook to the configured one and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			defer a.Close()

			added, skipped, err := importWordbook(a, imp)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries, %d already present\n", added, skipped)
			return nil
		},
	}
	backendFlags(importCmd, &imp)
	cmd.AddCommand(importCmd)

	var exp config.WordbookConfig
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configured wordbook to another backend, replacing its contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := exportWordbook(a, exp)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d entries to %s %s\n", n, exp.Backend, exp.Path)
			return nil
		},
	}
	backendFlags(exportCmd, &exp)
	cmd.AddCommand(exportCmd)

	return cmd
}

func backendFlags(cmd *cobra.Command, wb *config.WordbookConfig) {
	cmd.Flags().StringVar(&wb.Backend, "backend", store.BackendJSON, "other wordbook backend (json, sqlite)")
	cmd.Flags().StringVar(&wb.Path, "path", "", "other wordbook file")
	cmd.MarkFlagRequired("path")
}

func listWordbook(lex *lexicon.Lexicon, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, key := range lex.Keys() {
		r, _ := lex.Get(key)
		fmt.Fprintf(w, "%s\t%s\n", key, r)
	}
	return w.Flush()
}

// importWordbook inserts every entry of src that isn't already a key, then
// saves the configured wordbook.
func importWordbook(a *app, src config.WordbookConfig) (int, int, error) {
	s, err := openStore(src, false, a.log)
	if err != nil {
		return 0, 0, err
	}
	defer s.Close()

	entries, err := s.Load()
	if err != nil {
		return 0, 0, errors.Wrapf(err, "load %s", src.Path)
	}

	added, skipped := 0, 0
	for _, key := range sortedKeys(entries) {
		if a.bot.Standin(key, entries[key]) {
			added++
		} else {
			skipped++
		}
	}
	if err := a.bot.Spare(); err != nil {
		return added, skipped, err
	}
	return added, skipped, nil
}

// exportWordbook replaces the contents of dst with the configured wordbook.
func exportWordbook(a *app, dst config.WordbookConfig) (int, error) {
	s, err := openStore(dst, true, a.log)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	snapshot := a.lex.Snapshot()
	if err := s.Save(snapshot); err != nil {
		return 0, errors.Wrapf(err, "save %s", dst.Path)
	}
	return len(snapshot), nil
}

func sortedKeys(entries map[string]lexicon.Replacement) []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
