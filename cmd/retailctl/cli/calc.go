package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"go-retail/internal/common/calcprotocol"
	"io"
)

func newCalcCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "calc <calculator> [field=value...]",
		Short:   "Recompute a calculator with the given inputs",
		Example: "  retailctl calc discount mrp=200 salePrice=150",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			res, err := opts.client().Calculate(cmd.Context(), args[0], inputs)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newResetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <calculator>",
		Short: "Show a calculator with every input cleared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.client().Reset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the calculators and their fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().Calculators(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range list {
				fmt.Fprintf(out, "%s (%s)\n", c.Name, c.Title)
				for _, in := range c.Inputs {
					fmt.Fprintf(out, "  %s: %s [%s]\n", in.Name, in.Label, in.Kind)
				}
			}
			return nil
		},
	}
}

// outputOrder is the display order sent by the server, followed by any
// output it did not list.
func outputOrder(res calcprotocol.CalculateResponse) []string {
	order := make([]string, 0, len(res.Outputs))
	seen := make(map[string]struct{}, len(res.Outputs))
	for _, name := range res.Order {
		if _, ok := res.Outputs[name]; ok {
			order = append(order, name)
			seen[name] = struct{}{}
		}
	}
	for _, name := range sortedKeys(res.Outputs) {
		if _, ok := seen[name]; !ok {
			order = append(order, name)
		}
	}
	return order
}

func printResult(w io.Writer, res calcprotocol.CalculateResponse) {
	for _, name := range outputOrder(res) {
		out := res.Outputs[name]
		if out.Tone != "" {
			fmt.Fprintf(w, "%s: %s (%s)\n", name, out.Text, out.Tone)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", name, out.Text)
	}
	if res.Message != "" {
		fmt.Fprintf(w, "! %s\n", res.Message)
	}
}
