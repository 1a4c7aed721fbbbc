// Command jsf-validator validates JSON or YAML instance documents against a
// JSON Schema from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	jsf "github.com/saif-khaled/angular2-json-schema-form"
	"github.com/saif-khaled/angular2-json-schema-form/engine"
	"github.com/saif-khaled/angular2-json-schema-form/loader"
	"github.com/saif-khaled/angular2-json-schema-form/pkg/logger"
)

var version = "dev"

// Exit codes: 0 all valid, 1 validation failures, 2 schema or I/O errors.
var exitStatus int

type cliOptions struct {
	schemaPath string
	output     string
	strict     bool
	verbose    bool
	quiet      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if exitStatus == 0 {
			exitStatus = 2
		}
	}
	os.Exit(exitStatus)
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "jsf-validator [flags] <instance>...",
		Short: "Validate JSON or YAML documents against a JSON Schema",
		Long: `jsf-validator validates instance documents against a JSON Schema.

Instances may be JSON or YAML files; pass "-" to read a JSON instance
from stdin. The exit code is 0 when every instance is valid, 1 when any
instance fails validation, and 2 on schema or I/O errors.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "path to the schema file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or json")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "whole-string patterns and meta-schema checking")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-instance output, exit code only")
	_ = cmd.MarkFlagRequired("schema")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jsf-validator %s\n", version)
		},
	})

	return cmd
}

func run(cmd *cobra.Command, opts *cliOptions, args []string) error {
	if opts.verbose {
		logger.SetLevel(logger.LevelDebug)
	}
	if opts.quiet {
		logger.Disable()
	}
	if opts.output != "text" && opts.output != "json" {
		exitStatus = 2
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	schema, err := loader.LoadSchema(opts.schemaPath)
	if err != nil {
		exitStatus = 2
		return err
	}

	engineOpts := []jsf.Option{}
	if opts.strict {
		engineOpts = append(engineOpts, jsf.StrictOptions()...)
	}

	draft := jsf.DraftFromSchema(schema)
	validator, err := engine.New(draft, engineOpts...)
	if err != nil {
		exitStatus = 2
		return err
	}
	if _, err := validator.Compile(schema); err != nil {
		exitStatus = 2
		return fmt.Errorf("schema %s: %w", opts.schemaPath, err)
	}

	ctx := context.Background()
	anyInvalid := false
	for _, path := range args {
		instance, err := loadInstance(path)
		if err != nil {
			exitStatus = 2
			return err
		}

		report, err := validator.Validate(ctx, schema, instance)
		if err != nil {
			exitStatus = 2
			return fmt.Errorf("%s: %w", path, err)
		}
		if report != nil {
			anyInvalid = true
		}
		if !opts.quiet {
			if err := printResult(cmd, opts.output, path, report); err != nil {
				exitStatus = 2
				return err
			}
		}
	}

	if anyInvalid {
		exitStatus = 1
		return fmt.Errorf("validation failed")
	}
	return nil
}

func loadInstance(path string) (any, error) {
	if path == "-" {
		return loader.ReadDocument(os.Stdin)
	}
	return loader.LoadDocument(path)
}

func printResult(cmd *cobra.Command, format, path string, report jsf.ErrorReport) error {
	out := cmd.OutOrStdout()

	if format == "json" {
		payload := map[string]any{
			"instance": path,
			"valid":    report == nil,
		}
		if report != nil {
			payload["errors"] = report
		}
		enc := json.NewEncoder(out)
		return enc.Encode(payload)
	}

	if report == nil {
		fmt.Fprintf(out, "%s %s\n", color.GreenString("PASS"), path)
		return nil
	}

	fmt.Fprintf(out, "%s %s\n", color.RedString("FAIL"), path)
	for _, kw := range report.Keywords() {
		fmt.Fprintf(out, "  %s: %s\n", color.YellowString(kw), report[kw].Message)
	}
	return nil
}
