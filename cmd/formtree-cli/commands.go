package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtree/internal/cli"
)

func newOperationsCmd(session *cli.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the operation ids of the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return session.Operations(cmd.Context())
		},
	}
}

func newKeysCmd(session *cli.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <operationId>",
		Short: "Print the translation keys of an operation's form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return session.WriteKeys(cmd.Context(), args[0], format)
		},
	}
	cmd.Flags().StringP("format", "f", cli.FormatText, "Output format ("+strings.Join(cli.Formats, "|")+")")
	return cmd
}

func newExtractCmd(session *cli.Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <operationId>",
		Short: "Add missing keys to the locale's catalog file",
		Long:  `Writes every key of the operation that has no message for --locale into <catalog-dir>/<domain>.<locale>.yaml, using the field's source text or, with --interactive, the text typed at the prompt.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive, _ := cmd.Flags().GetBool("interactive")
			result, err := session.Extract(cmd.Context(), args[0], interactive)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(result.Added) == 0 {
				fmt.Fprintf(out, "%s: nothing added (%d skipped)\n", result.File, len(result.Skipped))
				return nil
			}
			fmt.Fprintf(out, "%s: %d added, %d skipped\n", result.File, len(result.Added), len(result.Skipped))
			return nil
		},
	}
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for each missing translation")
	return cmd
}

func newLocalizeCmd(session *cli.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "localize <operationId>",
		Short: "Print the operation's form model translated into --locale as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return session.Localize(cmd.Context(), args[0])
		},
	}
}

func newLintCmd(session *cli.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report unsupported x-formtree hints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			violations, err := session.Lint(cmd.Context())
			if err != nil {
				return err
			}
			for _, v := range violations {
				fmt.Fprintln(cmd.ErrOrStderr(), v)
			}
			if len(violations) > 0 {
				return errors.New("lint: unsupported hints found")
			}
			return nil
		},
	}
}
