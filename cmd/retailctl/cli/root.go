// Package cli holds the retailctl commands.
package cli

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"go-retail/pkg/calcclient"
	"go-retail/pkg/logging"
	"sort"
	"strings"
)

const defaultServer = "localhost:8080"

var ErrBadAssignment = errors.New("expected name=value")

type options struct {
	server string
}

func (o *options) client() *calcclient.Client {
	return calcclient.New(calcclient.Config{ServerAddress: o.server}, logging.NewNop())
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "retailctl",
		Short:         "Run the retail calculators and build reorder messages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "retailcalc server address")

	root.AddCommand(
		newCalcCommand(opts),
		newResetCommand(opts),
		newListCommand(opts),
		newOrderCommand(opts),
		newVersionCommand(),
	)
	return root
}

// parseAssignments reads name=value arguments. The value may be empty and may
// itself contain '='.
func parseAssignments(args []string) (map[string]string, error) {
	res := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%q: %w", arg, ErrBadAssignment)
		}
		res[strings.TrimSpace(name)] = value
	}
	return res, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
