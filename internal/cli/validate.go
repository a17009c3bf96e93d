package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/near/go-account-id/internal/config"
	"github.com/near/go-account-id/pkg/accountid"
)

// ValidationResult holds the outcome for one account ID argument.
type ValidationResult struct {
	ID       string `json:"id"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <account-id>...",
		Short: "Check account IDs against the grammar",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, cmd, args)
		},
	}
}

func runValidate(opts *RootOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	results := make([]ValidationResult, 0, len(args))
	invalid := 0
	for _, arg := range args {
		result := ValidationResult{ID: arg, Valid: true}

		if err := accountid.Validate(arg); err != nil {
			invalid++
			result.Valid = false
			result.Error = err.Error()

			var parseErr *accountid.ParseError
			if errors.As(err, &parseErr) {
				result.Kind = parseErr.Kind.String()
				if parseErr.Index >= 0 {
					pos := parseErr.Index
					result.Position = &pos
				}
			}
			opts.Logger.Debug("validation failed", "id", arg, "error", err)
		}
		results = append(results, result)
	}

	if f.Format == config.OutputFormatJSON {
		if err := f.JSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				f.Textf("%s: valid\n", r.ID)
			} else {
				f.Textf("%s: %s\n", r.ID, r.Error)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d account IDs are invalid", invalid, len(args))
	}
	return nil
}
