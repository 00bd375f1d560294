package cli

import (
	"fmt"
	"github.com/spf13/cobra"
)

func newOrderCommand(opts *options) *cobra.Command {
	var share bool
	cmd := &cobra.Command{
		Use:     "order [product=quantity...]",
		Short:   "Build the reorder message",
		Example: `  retailctl order "Amul Butter=4" "Amul Dahi, 400g=6"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			quantities, err := parseAssignments(args)
			if err != nil {
				return err
			}
			res, err := opts.client().Order(cmd.Context(), quantities)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			if share {
				fmt.Fprintln(cmd.OutOrStdout(), res.ShareLink)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&share, "share", false, "also print the share link")
	return cmd
}
