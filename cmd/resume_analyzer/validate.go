package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

func newValidateCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate <result.json>",
		Short: "Validate a result document against the analysis result schema",
		Long: `Checks a JSON document produced by "analyze --json" against the embedded result schema,
or against another schema file given with --schema.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var err error
			if schemaPath != "" {
				err = schemas.ValidateJSON(schemaPath, path)
			} else {
				var data []byte
				data, err = os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				err = schemas.ValidateResultJSON(data)
			}

			var verr *schemas.ValidationError
			switch {
			case err == nil:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", path)
				return nil
			case errors.As(err, &verr):
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed: %s\n%s", path, verr.Error())
				return fmt.Errorf("%s does not match the schema (%d errors)", path, len(verr.Errors))
			default:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to a JSON Schema file (default: embedded result schema)")
	return cmd
}
