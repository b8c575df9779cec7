package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/jsig/format"
	"github.com/dhamidi/jsig/signature"
	"github.com/spf13/cobra"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var kindName string
	var outputFormat string
	var refs bool

	cmd := &cobra.Command{
		Use:   "parse <signature>...",
		Short: "Parse signature strings given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := signature.ParseKind(kindName)
			if !ok {
				return fmt.Errorf("unknown kind: %s (expected class, method, or field)", kindName)
			}

			enc, err := format.NewEncoder(opts.outputFormat(cmd, outputFormat), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			for _, text := range args {
				sig, err := signature.Parse(kind, text)
				if err != nil {
					printGrammarError(cmd.ErrOrStderr(), err)
					return err
				}
				entry := &format.Entry{Text: text, Signature: sig}
				if refs || opts.cfg.Scan.References {
					entry.References = references(sig)
				}
				if err := enc.Encode(entry); err != nil {
					return fmt.Errorf("encode %s: %w", text, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "signature form (class, method, field)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format ("+strings.Join(format.Formats, ", ")+")")
	cmd.Flags().BoolVarP(&refs, "refs", "r", false, "list referenced classes")
	cmd.MarkFlagRequired("kind")

	return cmd
}

// printGrammarError points at the offending character of a rejected
// signature.
func printGrammarError(w io.Writer, err error) {
	var gerr *signature.GrammarError
	if !errors.As(err, &gerr) {
		return
	}
	fmt.Fprintf(w, "  %s\n  %s^ %s: %s\n", gerr.Input, caretIndent(gerr.Input, gerr.Position), gerr.Production, gerr.Message)
}

// caretIndent pads to the character at byte offset pos of input.
func caretIndent(input string, pos int) string {
	pos = max(0, min(pos, len(input)))
	return strings.Repeat(" ", utf8.RuneCountInString(input[:pos]))
}

func references(sig signature.Signature) []string {
	refs := signature.ReferencedClasses(sig)
	if refs == nil {
		refs = []string{}
	}
	return refs
}
