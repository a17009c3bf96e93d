package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/near/go-account-id/internal/config"
	"github.com/near/go-account-id/pkg/accountid"
)

// ParentResult holds the ancestor chain of one account ID, from direct
// parent up to the top-level account.
type ParentResult struct {
	ID      string   `json:"id"`
	Parents []string `json:"parents"`
}

// NewParentCommand creates the parent command.
func NewParentCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parent <account-id>",
		Short: "Print the parent chain of an account ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParent(opts, cmd, args[0])
		},
	}
}

func runParent(opts *RootOptions, cmd *cobra.Command, arg string) error {
	f := opts.formatter(cmd)

	id, err := accountid.Parse(arg)
	if err != nil {
		return fmt.Errorf("cannot resolve parents of %q: %w", arg, err)
	}

	result := ParentResult{ID: id.String(), Parents: []string{}}
	for ref := id.Ref(); ; {
		parent, ok := ref.Parent()
		if !ok {
			break
		}
		result.Parents = append(result.Parents, parent.String())
		ref = parent
	}
	opts.Logger.Debug("resolved parents", "id", id.String(), "count", len(result.Parents))

	if f.Format == config.OutputFormatJSON {
		return f.JSON(result)
	}
	if len(result.Parents) == 0 {
		f.Textf("%s is a top-level account\n", result.ID)
		return nil
	}
	f.Textf("%s -> %s\n", result.ID, strings.Join(result.Parents, " -> "))
	return nil
}
