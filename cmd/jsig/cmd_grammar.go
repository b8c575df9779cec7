package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"

	"github.com/dhamidi/jsig/signature"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the signature grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !check {
				_, err := out.Write(signature.Grammar)
				return err
			}

			g, err := signature.LoadGrammar()
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			names := make([]string, 0, len(g))
			for name := range g {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintf(out, "ok: %d productions reachable from %s\n", len(names), signature.GrammarStart)
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "parse and verify the grammar instead of printing it")

	cmd.AddCommand(newGrammarMatchCmd())

	return cmd
}

func newGrammarMatchCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "match <signature>...",
		Short: "Check signature strings against the EBNF grammar alone",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := signature.ParseKind(kindName)
			if !ok {
				return fmt.Errorf("unknown kind: %s (expected class, method, or field)", kindName)
			}

			failed := 0
			for _, text := range args {
				conforms, err := signature.Conforms(kind, text)
				if err != nil {
					return err
				}
				status := "ok"
				if !conforms {
					status = "no match"
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", status, text)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d signatures do not match the %s grammar", failed, len(args), kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "signature form (class, method, field)")
	cmd.MarkFlagRequired("kind")

	return cmd
}

// printErrors prints each error of an ebnf error list on its own line.
func printErrors(w io.Writer, err error) {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
