package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/near/go-account-id/internal/config"
	"github.com/near/go-account-id/pkg/accountid"
)

// ClassificationResult holds the classification of one account ID.
type ClassificationResult struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Implicit bool   `json:"implicit"`
	TopLevel bool   `json:"topLevel"`
	System   bool   `json:"system,omitempty"`
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <account-id>...",
		Short: "Report the account type of valid account IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(opts, cmd, args)
		},
	}
}

func runClassify(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	results := make([]ClassificationResult, 0, len(args))
	for _, arg := range args {
		id, err := accountid.Parse(arg)
		if err != nil {
			return fmt.Errorf("cannot classify %q: %w", arg, err)
		}

		results = append(results, ClassificationResult{
			ID:       id.String(),
			Type:     id.AccountType().String(),
			Implicit: id.IsImplicit(),
			TopLevel: id.IsTopLevel(),
			System:   id.IsSystem(),
		})
		opts.Logger.Debug("classified", "id", id.String(), "type", id.AccountType().String())
	}

	if f.Format == config.OutputFormatJSON {
		return f.JSON(results)
	}
	for _, r := range results {
		f.Textf("%s: %s\n", r.ID, r.Type)
	}
	return nil
}
