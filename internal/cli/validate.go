package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mockview/internal/schema"
)

// ValidationResult holds the outcome of validating one or more mockup
// files.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Files  int               `json:"files"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError is one per-file validation failure.
type ValidationError struct {
	File    string `json:"file"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <mockup.yaml | dir>",
		Short: "Validate mockup documents against the schema",
		Long: `Validate YAML mockup documents against the embedded CUE schema.

Given a directory, every .yaml/.yml file directly inside it is checked.
All files are validated before reporting, so one bad file doesn't hide
errors in the others.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	files, err := mockupFiles(path)
	if err != nil {
		_ = formatter.Error(schema.ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolving mockup files", err)
	}
	formatter.VerboseLog("Validating %d mockup file(s)", len(files))

	result := ValidationResult{Valid: true, Files: len(files)}
	for _, file := range files {
		if _, err := schema.Load(file); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, validationError(file, err))
		}
	}

	if !result.Valid {
		if opts.Format == "json" {
			_ = formatter.Error(schema.ErrCodeSchema, "validation failed", result)
		} else {
			for _, ve := range result.Errors {
				fmt.Fprintf(formatter.Writer, "%s: [%s] %s\n", ve.File, ve.Code, ve.Message)
			}
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d file(s) invalid", len(result.Errors), len(files)))
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("%d file(s) valid", len(files)))
}

func validationError(file string, err error) ValidationError {
	var loadErr *schema.LoadError
	if errors.As(err, &loadErr) {
		return ValidationError{File: file, Code: loadErr.Code, Message: loadErr.Message}
	}
	return ValidationError{File: file, Code: "UNKNOWN", Message: err.Error()}
}

// mockupFiles resolves a path argument to the list of files to validate.
func mockupFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("path not found: %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	files, err := schema.FindMockupFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no mockup files found in %s", path)
	}
	return files, nil
}
