package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Alanissocool/plain-lang/pkg/ast"
	"github.com/Alanissocool/plain-lang/pkg/parser"
)

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <line>",
		Short: "Print the tokens of a line, and any input the tokenizer drops",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			line := strings.Join(args, " ")
			tokens, dropped := parser.Scan(line)

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"#", "Type", "Text"})
			table.SetAutoFormatHeaders(false)
			for idx, tok := range tokens {
				table.Append([]string{strconv.Itoa(idx), string(tok.Type), tok.Text})
			}
			table.Render()

			for _, d := range dropped {
				fmt.Fprintf(out, "dropped %q at offset %d\n", d.Text, d.Offset)
			}
		},
	}
}

func newParseCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line>",
		Short: "Print the syntax tree of a line as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := parser.Options{StrictLexing: state.cfg.StrictLexing}
			stmt, err := parser.ParseWithOptions(strings.Join(args, " "), opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Parse error: %v\n", err)
				return reportedError{err}
			}
			doc, err := ast.EncodeYAML(stmt)
			if err != nil {
				return state.fail(cmd, err)
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
}
