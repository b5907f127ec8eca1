package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	appservices "github.com/breakdown-dev/breakdown/internal/application/services"
	"github.com/breakdown-dev/breakdown/internal/config"
	"github.com/breakdown-dev/breakdown/internal/infrastructure/stdin"
	"github.com/breakdown-dev/breakdown/internal/infrastructure/templates"
	"github.com/breakdown-dev/breakdown/internal/output"
)

var (
	fromFile     string
	destination  string
	adaptation   string
	fromLayer    string
	profile      string
	format       string
	userVars     []string
	strictConfig bool
	checkSchema  bool
	writeOutput  bool
	stdinTimeout time.Duration
)

// runCmd executes the pipeline for one (directive, layer) pair.
var runCmd = &cobra.Command{
	Use:   "run <directive> <layer>",
	Short: "Generate a prompt for a directive/layer pair",
	Long: `Validate the directive and layer against the profile's patterns,
resolve the prompt template, schema, and output paths, assemble the
template variables, and print the rendered prompt.

Examples:
  breakdown run to project --from requirements.md
  breakdown run summary issue --from notes.md --adaptation bugs
  cat notes.md | breakdown run defect task -o defects.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&fromFile, "from", "f", "", "Input file path (drives fromLayer inference)")
	runCmd.Flags().StringVarP(&destination, "destination", "o", "", "Output file name (default: auto-generated)")
	runCmd.Flags().StringVarP(&adaptation, "adaptation", "a", "", "Prompt variant suffix")
	runCmd.Flags().StringVarP(&fromLayer, "input", "i", "", "Explicit source layer (overrides inference)")
	runCmd.Flags().StringVarP(&profile, "profile", "p", "", "Configuration profile (default: breakdown)")
	runCmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, yaml")
	runCmd.Flags().StringArrayVar(&userVars, "uv", nil, "Custom variable name=value (name must start with uv-)")
	runCmd.Flags().BoolVar(&strictConfig, "strict", false, "Fail when no configuration file exists")
	runCmd.Flags().BoolVar(&checkSchema, "check-schema", false, "Compile-check the resolved schema file")
	runCmd.Flags().BoolVarP(&writeOutput, "write", "w", false, "Write the rendered prompt to the resolved output path")
	runCmd.Flags().DurationVar(&stdinTimeout, "stdin-timeout", 30*time.Second, "Timeout for reading piped stdin")
}

func runPipeline(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputText, err := stdin.Read(os.Stdin, stdin.Options{Timeout: stdinTimeout})
	if err != nil {
		return err
	}

	uv, err := parseUserVars(userVars)
	if err != nil {
		return err
	}

	pipeline := appservices.NewPipeline()
	result, err := pipeline.Run(appservices.Request{
		Args:          args,
		Profile:       profile,
		Config:        cfg,
		FromFile:      fromFile,
		FromLayer:     fromLayer,
		Adaptation:    adaptation,
		Destination:   destination,
		InputText:     inputText,
		UserVariables: uv,
	})
	if err != nil {
		var pipeErr *appservices.PipelineError
		if errors.As(err, &pipeErr) {
			for _, e := range pipeErr.Errors {
				fmt.Fprintf(os.Stderr, "  - %s\n", e)
			}
			return fmt.Errorf("pipeline failed with %d error(s)", len(pipeErr.Errors))
		}
		return err
	}

	slog.Debug("pipeline succeeded",
		"prompt", result.PromptPath,
		"schema", result.SchemaPath,
		"output", result.OutputPath,
		"variables", len(result.Variables))

	if checkSchema {
		if err := templates.CheckSchema(result.SchemaPath); err != nil {
			return err
		}
		slog.Debug("schema compiled", "path", result.SchemaPath)
	}

	if writeOutput {
		if err := os.MkdirAll(filepath.Dir(result.OutputPath), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(result.OutputPath, []byte(result.Prompt), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		slog.Info("wrote output", "path", result.OutputPath)
	}

	formatter, err := output.NewFormatter(format, os.Stdout)
	if err != nil {
		return err
	}
	return formatter.Format(result)
}

// loadConfig loads the profile configuration. Outside strict mode a
// missing file falls back to the built-in defaults.
func loadConfig() (*config.AppConfig, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadProfile(config.DefaultConfigDir, profile)
	if err != nil {
		var notFound *config.ConfigurationNotFoundError
		if errors.As(err, &notFound) && !strictConfig {
			slog.Debug("no configuration file, using defaults", "profile", notFound.Profile)
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// parseUserVars splits repeated name=value flags into a map.
func parseUserVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --uv value %q (expected name=value)", pair)
		}
		vars[name] = value
	}
	return vars, nil
}
