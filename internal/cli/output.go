package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/near/go-account-id/internal/config"
)

// OutputFormatter renders command results as text lines or an indented
// JSON document.
type OutputFormatter struct {
	Format config.OutputFormat
	Writer io.Writer
}

// JSON writes v as indented JSON.
func (f *OutputFormatter) JSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Textf writes a formatted text line.
func (f *OutputFormatter) Textf(format string, args ...any) {
	fmt.Fprintf(f.Writer, format, args...)
}
